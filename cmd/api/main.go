package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio/internal/api"
	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/content"
	"portfolio/internal/database"
	"portfolio/internal/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	cfg := config.MustLoad()

	logger := logging.NewLogger(cfg.API.Env)
	slog.SetDefault(logger)

	if cfg.API.Env != "dev" && cfg.API.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	logger.Info("database connection ready", slog.String("path", cfg.Database.Path))

	if err := database.Migrate(db); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}
	logger.Info("database migrated")

	repo := content.NewRepository(db)

	authService, err := auth.NewService(repo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	if err != nil {
		log.Fatalf("init auth service: %v", err)
	}

	router := api.NewRouter(cfg, logger)
	api.RegisterRoutes(router, repo, authService, cfg, logger)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening", slog.String("address", address))

	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}
