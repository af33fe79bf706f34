package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-devconnect-backend/config"
	gqldelivery "go-devconnect-backend/internal/delivery/graphql"
	v1 "go-devconnect-backend/internal/delivery/http/v1"
	"go-devconnect-backend/internal/repository/postgres"
	"go-devconnect-backend/internal/usecase"
	"go-devconnect-backend/pkg/cache"
	"go-devconnect-backend/pkg/database"
	"go-devconnect-backend/pkg/logger"
	"go-devconnect-backend/pkg/token"

	"github.com/go-playground/validator/v10"
)

// @title           DevConnect Backend API
// @version         1.0
// @description     Social-profile backend: REST + GraphQL over users and profiles.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting devconnect backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, GitHub proxy cache)
	redisClient, err := cache.NewClient(cache.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	if err != nil {
		logger.Log.Warn("Redis unavailable, GitHub responses will not be cached", "error", err)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	userUC := usecase.NewUserUsecase(userRepo, tokens, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, userRepo, validate)
	githubUC := usecase.NewGithubUsecase(nil, redisClient, cfg.GithubToken, time.Duration(cfg.GithubCacheSeconds)*time.Second)

	// 7. Setup GraphQL Schema
	schema, err := gqldelivery.NewSchema(gqldelivery.SchemaDeps{
		Users:    userRepo,
		Profiles: profileRepo,
	})
	if err != nil {
		logger.Log.Error("Failed to build GraphQL schema", "error", err)
		os.Exit(1)
	}

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:    userUC,
		ProfileUC: profileUC,
		GithubUC:  githubUC,
		Schema:    schema,
		Tokens:    tokens,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
