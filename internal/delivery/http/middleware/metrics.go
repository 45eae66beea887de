package middleware

import (
	"strconv"
	"time"

	"portfolio/internal/observability"

	"github.com/gofiber/fiber/v3"
)

// Metrics records request counts and latency labelled by route pattern, so
// /api/skills/1 and /api/skills/2 share a series.
func Metrics() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		}
		status := c.Response().StatusCode()
		if err != nil {
			status = statusFromError(err)
		}

		observability.HttpRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		observability.HttpRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

func statusFromError(err error) int {
	status, _, _ := normalizeError(err)
	return status
}
