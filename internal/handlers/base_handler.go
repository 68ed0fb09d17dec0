package handlers

import (
	"strconv"

	"tripplanner_backend/internal/apperrors"
	"tripplanner_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// BindAndValidate decodes the JSON body into dst and runs struct validation.
// On failure it writes the error response and returns false.
func BindAndValidate(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		apperrors.HandleError(c, apperrors.ValidationError(err.Error()))
		return false
	}

	if fieldErrors := validator.Validate(dst); fieldErrors != nil {
		apperrors.HandleError(c, apperrors.ValidationError(fieldErrors))
		return false
	}
	return true
}

// ParamUint parses a numeric path parameter. On failure it writes a 400 and
// returns false.
func ParamUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError(name+" must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}
