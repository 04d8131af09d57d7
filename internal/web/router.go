package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cloud-inquiry-balance-web/internal/config"
	"github.com/cloud-inquiry-balance-web/internal/web/handler"
	"github.com/cloud-inquiry-balance-web/internal/web/middleware"
	"github.com/gin-gonic/gin"
)

// setupRouter configures page routes, API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	corsConfig config.CORSConfig,
	pageHandler *handler.PageHandler,
	inquiryHandler *handler.InquiryHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// Server-rendered screen
	r.GET("/", pageHandler.Index)
	r.POST("/inquiry", pageHandler.Inquire)
	r.GET("/reset", pageHandler.Reset)

	// API v1 endpoints
	v1 := r.Group("/api/v1", middleware.CORS(corsConfig))
	{
		v1.POST("/inquiry", inquiryHandler.Inquire)
		v1.POST("/inquiry/view", inquiryHandler.InquireView)
		v1.GET("/health", inquiryHandler.Health)

		// group middleware only runs on a matched route; CORS answers preflights before this handler
		v1.OPTIONS("/*path", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
	}

	// Liveness of this process, independent of the backend
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
