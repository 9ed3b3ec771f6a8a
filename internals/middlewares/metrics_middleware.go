package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"grahafitness_backend/internals/helpers/metrics"
)

// MetricsMiddleware mencatat in-flight, jumlah & durasi request per route.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		metrics.IncInFlight()
		start := time.Now()

		err := c.Next()

		metrics.DecInFlight()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		path := c.Route().Path
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTP(c.Method(), path, status, time.Since(start))
		return err
	}
}

// MetricsHandler: endpoint /metrics (format Prometheus).
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
}
