package router

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pageza/moodbites/backend/internal/api"
	"github.com/pageza/moodbites/backend/internal/metrics"
	"github.com/pageza/moodbites/backend/internal/middleware"
	"github.com/pageza/moodbites/backend/internal/service"
	"github.com/pageza/moodbites/backend/internal/web"
)

// Deps are the collaborators the router wires together
type Deps struct {
	Recipes     service.IRecipeService
	Ping        api.Pinger
	CORSOrigins []string

	// TrustedProxies may set X-Forwarded-For; nil trusts none
	TrustedProxies []string

	// RateLimiter is optional; nil disables limiting on /api
	RateLimiter *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(deps Deps) (*gin.Engine, error) {
	router := gin.New()

	// Route on the escaped path so a mood containing "/" stays one parameter.
	router.UseRawPath = true
	router.UnescapePathValues = true

	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	router.Use(middleware.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(metrics.Middleware())
	router.Use(middleware.CORS(deps.CORSOrigins))

	var apiMiddleware []gin.HandlerFunc
	if deps.RateLimiter != nil {
		apiMiddleware = append(apiMiddleware, deps.RateLimiter.RateLimitMiddleware())
	}
	api.RegisterRoutes(router, deps.Recipes, deps.Ping, apiMiddleware...)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	if err := web.Register(router); err != nil {
		return nil, err
	}
	return router, nil
}
