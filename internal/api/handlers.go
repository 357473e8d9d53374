package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/moodbites/backend/internal/types"
)

// Pinger reports whether the backing store is reachable
type Pinger func(ctx context.Context) error

// HealthCheck returns the health status of the API
func HealthCheck(ping Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, types.HealthResponse{Status: "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, types.HealthResponse{Status: "healthy"})
	}
}
