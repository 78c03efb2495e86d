package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"portfolio/internal/api/middleware"
	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/content"
)

// RegisterRoutes wires the public read endpoints and the token-gated write
// endpoints onto the router.
func RegisterRoutes(
	router *gin.Engine,
	repo *content.Repository,
	authService *auth.Service,
	cfg *config.Config,
	logger *slog.Logger,
) {
	authHandler := NewAuthHandler(authService, logger)
	portfolioHandler := NewPortfolioHandler(repo, logger)
	uploadHandler := NewUploadHandler(cfg.Upload, logger)
	requireAuth := middleware.RequireAuth(authService)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/verify", requireAuth, authHandler.Verify)
	}

	portfolioGroup := router.Group("/portfolio")
	{
		portfolioGroup.GET("/about", portfolioHandler.GetAbout)
		portfolioGroup.GET("/work", portfolioHandler.ListWork)
		portfolioGroup.GET("/publications", portfolioHandler.ListPublications)
		portfolioGroup.GET("/contact", portfolioHandler.GetContact)
		portfolioGroup.GET("/all", portfolioHandler.GetAll)

		portfolioGroup.PUT("/about", requireAuth, portfolioHandler.UpdateAbout)
		portfolioGroup.PUT("/contact", requireAuth, portfolioHandler.UpdateContact)

		portfolioGroup.POST("/work", requireAuth, portfolioHandler.CreateWork)
		portfolioGroup.PUT("/work/:id", requireAuth, portfolioHandler.UpdateWork)
		portfolioGroup.DELETE("/work/:id", requireAuth, portfolioHandler.DeleteWork)

		portfolioGroup.POST("/publications", requireAuth, portfolioHandler.CreatePublication)
		portfolioGroup.PUT("/publications/:id", requireAuth, portfolioHandler.UpdatePublication)
		portfolioGroup.DELETE("/publications/:id", requireAuth, portfolioHandler.DeletePublication)

		portfolioGroup.POST("/upload", requireAuth, uploadHandler.UploadImage)
	}
}
