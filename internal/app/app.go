package app

import (
	"context"
	"fmt"
	"time"

	"tripplanner_backend/internal/auth"
	"tripplanner_backend/internal/config"
	"tripplanner_backend/internal/database"
	"tripplanner_backend/internal/handlers"
	"tripplanner_backend/internal/logger"
	"tripplanner_backend/internal/middleware"
	"tripplanner_backend/internal/pkg/email"
	"tripplanner_backend/internal/repositories"
	"tripplanner_backend/internal/routes"
	"tripplanner_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type appServices struct {
	auth services.AuthService
	user services.UserService
	plan services.PlanService
}

// Run wires the application together and starts the HTTP server.
func Run() error {
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	auth.Init(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	db, err := database.NewPostgres(cfg.Database.DSN)
	if err != nil {
		return err
	}

	mongoClient, itineraries, err := database.NewMongo(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error("failed to disconnect mongodb", "error", err.Error())
		}
	}()

	svcs := initializeServices(cfg, db, itineraries)
	appHandlers := initializeHandlers(svcs)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	routes.RegisterRoutes(r, appHandlers)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return r.Run(addr)
}

func initializeServices(cfg *config.Config, db *gorm.DB, itineraries *mongo.Collection) *appServices {
	userRepo := repositories.NewUserRepository(db)
	planRepo := repositories.NewPlanRepository(db)
	itineraryRepo := repositories.NewItineraryRepository(itineraries)

	mailer := email.NewSMTPSender(cfg.Email)

	return &appServices{
		auth: services.NewAuthService(userRepo, mailer),
		user: services.NewUserService(userRepo, planRepo),
		plan: services.NewPlanService(planRepo, itineraryRepo, userRepo),
	}
}

func initializeHandlers(svcs *appServices) *handlers.AppHandlers {
	return &handlers.AppHandlers{
		Auth: handlers.NewAuthHandler(svcs.auth),
		User: handlers.NewUserHandler(svcs.user),
		Plan: handlers.NewPlanHandler(svcs.plan),
	}
}
