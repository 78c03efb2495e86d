package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolio/internal/api/middleware"
	"portfolio/internal/config"
	"portfolio/internal/metrics"
)

// NewRouter builds the Gin engine with the shared middleware chain, the
// liveness and metrics endpoints, and static serving of uploaded images.
func NewRouter(cfg *config.Config, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.CorrelationID(),
		middleware.RequestLogger(logger),
		metrics.GinMiddleware(),
		middleware.CORS(cfg.CORS.Origins()),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.Static("/uploads", cfg.Upload.Dir)

	return router
}
