package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/folyotek/folyo-erp/pkg/metrics"
)

// MetricsMiddleware records request counts and latency per route. Uses the
// route pattern, not the raw path, so ids do not explode label cardinality.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Method(), path, status).Observe(time.Since(start).Seconds())
		return err
	}
}
