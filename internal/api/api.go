package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/moodbites/backend/internal/service"
)

// RegisterRoutes mounts the JSON API and health check on router.
// Extra middleware (rate limiting) applies to the /api group only.
func RegisterRoutes(router *gin.Engine, recipes service.IRecipeService, ping Pinger, apiMiddleware ...gin.HandlerFunc) {
	router.GET("/health", HealthCheck(ping))

	v1 := router.Group("/api")
	v1.Use(apiMiddleware...)
	NewRecipeHandler(recipes).RegisterRoutes(v1)
}
