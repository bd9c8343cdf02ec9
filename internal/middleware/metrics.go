package middleware

import (
	"time"

	"github.com/SscSPs/fx_rates_service/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// unmatchedRoute labels requests that did not hit a registered route (static assets, 404s).
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latency per registered route.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
