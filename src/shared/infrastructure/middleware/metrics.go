package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JosueLm7/PanaderiaDelicia/src/shared/infrastructure/metrics"
)

// MetricsMiddleware cuenta las peticiones y mide su latencia por ruta
func MetricsMiddleware(m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		handler := ctx.FullPath()
		if handler == "" {
			handler = "not_found"
		}

		status := strconv.Itoa(ctx.Writer.Status())
		m.Requests.WithLabelValues(handler, status).Inc()
		m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
	}
}
