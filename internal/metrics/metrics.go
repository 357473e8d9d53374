// Package metrics exposes Prometheus collectors for the HTTP API and the recipe store.
//
// Metrics are served in Prometheus text format at /metrics:
//
//	curl http://localhost:3000/metrics
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes for RecipeLookups
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	// HTTPRequestsTotal counts requests by method, matched route and status
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodbites_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration observes request latency
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "moodbites_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
	}, []string{"method", "route"})

	// RecipeLookups counts recipe-for-mood lookups by outcome
	RecipeLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodbites_recipe_lookups_total",
		Help: "Recipe lookups by outcome (found, not_found, error)",
	}, []string{"outcome"})

	// SeededRecipes counts recipes inserted by the seeding routine
	SeededRecipes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "moodbites_seeded_recipes_total",
		Help: "Recipes inserted by seeding",
	})
)

// Middleware records request count and latency per matched route
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
