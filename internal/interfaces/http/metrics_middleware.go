package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsutar/coldstrg-sub001/pkg/metrics"
)

// MetricsMiddleware observa la latencia de cada request en el histograma
// Prometheus, etiquetada por método, ruta registrada y status. Se usa la ruta
// del router (con :params) y no el path crudo para acotar la cardinalidad.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		metrics.RequestDuration.
			WithLabelValues(c.Method(), route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}
