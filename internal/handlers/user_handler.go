package handlers

import (
	"net/http"

	"tripplanner_backend/internal/apperrors"
	"tripplanner_backend/internal/services"
	"tripplanner_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser handles GET /users/:userId.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := ParamUint(c, "userId")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		apperrors.HandleAny(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /users/:userId.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := ParamUint(c, "userId")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !BindAndValidate(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(userID, &req)
	if err != nil {
		apperrors.HandleAny(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

// UpdateRoles handles POST /users/:userId/updateRole.
func (h *UserHandler) UpdateRoles(c *gin.Context) {
	userID, ok := ParamUint(c, "userId")
	if !ok {
		return
	}

	var req dto.UpdateRolesRequest
	if !BindAndValidate(c, &req) {
		return
	}

	user, err := h.userService.UpdateRoles(userID, req.Roles)
	if err != nil {
		apperrors.HandleAny(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User roles updated successfully",
		"user":    user,
	})
}

// GetUserPlans handles GET /users/:userId/plans.
func (h *UserHandler) GetUserPlans(c *gin.Context) {
	userID, ok := ParamUint(c, "userId")
	if !ok {
		return
	}

	plans, err := h.userService.GetUserPlans(userID)
	if err != nil {
		apperrors.HandleAny(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}
