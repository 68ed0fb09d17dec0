package routes

import (
	"net/http"

	"tripplanner_backend/internal/handlers"
	"tripplanner_backend/internal/middleware"
	"tripplanner_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/confirm-email", h.Auth.ConfirmEmail)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}

	api.GET("/protected", middleware.AuthMiddleware(), h.Auth.Protected)
	api.GET("/seller-dashboard",
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.RoleSeller),
		h.Auth.SellerDashboard,
	)

	users := api.Group("/users", middleware.AuthMiddleware())
	{
		users.GET("/:userId", h.User.GetUser)
		users.PUT("/:userId", h.User.UpdateUser)
		users.POST("/:userId/updateRole", h.User.UpdateRoles)
		users.GET("/:userId/plans", h.User.GetUserPlans)
	}

	plans := api.Group("/plans")
	{
		plans.GET("", h.Plan.GetPlans)
		plans.GET("/:planId", h.Plan.GetPlan)
		plans.POST("", middleware.AuthMiddleware(), h.Plan.CreatePlan)
		plans.PUT("/:planId", middleware.AuthMiddleware(), h.Plan.UpdatePlan)
	}
}
