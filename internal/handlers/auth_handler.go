package handlers

import (
	"net/http"

	"tripplanner_backend/internal/apperrors"
	"tripplanner_backend/internal/services"
	"tripplanner_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !BindAndValidate(c, &req) {
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		apperrors.HandleAny(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully. Please check your email to confirm your account.",
		"user":    user,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !BindAndValidate(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		apperrors.HandleAny(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ConfirmEmail handles GET /auth/confirm-email?token=...
func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("token is required"))
		return
	}

	user, err := h.authService.ConfirmEmail(token)
	if err != nil {
		apperrors.HandleAny(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email confirmed successfully",
		"user":    user,
	})
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		apperrors.HandleAny(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.Password); err != nil {
		apperrors.HandleAny(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully"})
}

// Protected answers GET /protected; reachable only through AuthMiddleware.
func (h *AuthHandler) Protected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "This is a protected route"})
}

// SellerDashboard answers GET /seller-dashboard; requires the SELLER role.
func (h *AuthHandler) SellerDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the seller dashboard"})
}
