package apperrors

import (
	"net/http"

	"tripplanner_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Message string    `json:"message"`
}

// HandleError writes an AppError as a JSON response.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= http.StatusInternalServerError {
		logger.CtxWithError(c.Request.Context(), "server error", err, "path", c.Request.URL.Path)
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err, Message: err.Message})
}

// HandleAny maps an arbitrary error onto the response, wrapping unknown
// errors as internal.
func HandleAny(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}
	HandleError(c, appErr)
}
