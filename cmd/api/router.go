package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	contentHandler "mediaportal-backend/internal/domains/content/handler"
	"mediaportal-backend/internal/shared/middleware"
	"mediaportal-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// 405 instead of 404 for known paths hit with the wrong verb
	router.HandleMethodNotAllowed = true
	router.NoMethod(contentHandler.MethodNotAllowed())

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(nil),
	)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", healthCheckHandler(c))

		setupUploadRoutes(api, c)
		setupContentRoutes(api, c)
	}

	return router
}

// ========================================
// UPLOAD ROUTES
// ========================================
func setupUploadRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/upload",
		middleware.AuthMiddleware(c.JWTManager),
		middleware.AdminMiddleware(),
		c.MediaHandler.Upload,
	)
}

// ========================================
// CONTENT ROUTES
// ========================================
// One loop registers all four kinds; the handlers are the same generic code
// bound to different schemas. Reads are public, every mutation requires an
// admin token - the client-side admin flag is never trusted.
func setupContentRoutes(api *gin.RouterGroup, c *container.Container) {
	adminOnly := []gin.HandlerFunc{
		middleware.AuthMiddleware(c.JWTManager),
		middleware.AdminMiddleware(),
	}

	for _, h := range c.ContentHandlers {
		kind := h.Schema().Kind
		group := api.Group("/" + kind)
		{
			group.GET("", h.List)
			group.GET("/:id", h.GetByID)
			group.POST("", append(adminOnly, h.Create)...)
			group.PUT("/:id", append(adminOnly, h.Update)...)
			group.DELETE("/:id", append(adminOnly, h.Delete)...)
		}

		// Multipart submit-with-attachments endpoints for the admin editor
		adminGroup := api.Group("/admin/" + kind)
		adminGroup.Use(adminOnly...)
		{
			adminGroup.POST("", h.Submit)
			adminGroup.PUT("/:id", h.Submit)
		}
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		// Check object storage
		storageStatus := "ok"
		if appCtx.Storage == nil {
			storageStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Storage.HealthCheck(ctx); err != nil {
				storageStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
			"storage":  storageStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
