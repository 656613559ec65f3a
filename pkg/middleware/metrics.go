package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mergington/activity-registry/pkg/logger"
	"github.com/mergington/activity-registry/pkg/telemetry"
)

// Metrics records request count and duration per route. Routes are
// labelled by their registered pattern, not the raw path, to keep
// cardinality bounded.
func Metrics() gin.HandlerFunc {
	requests, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "http_requests_total",
		Description: "Total number of HTTP requests",
		Unit:        "1",
	})
	if err != nil {
		logger.Warn("failed to register request counter", zap.Error(err))
	}

	duration, err := telemetry.NewHistogram(telemetry.MetricOpts{
		Name:        "http_request_duration_seconds",
		Description: "HTTP request duration in seconds",
		Unit:        "s",
	})
	if err != nil {
		logger.Warn("failed to register request duration histogram", zap.Error(err))
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		ctx := c.Request.Context()
		if requests != nil {
			requests.Inc(ctx,
				telemetry.MethodAttr(c.Request.Method),
				telemetry.PathAttr(route),
				telemetry.StatusAttr(c.Writer.Status()),
			)
		}
		if duration != nil {
			duration.Record(ctx, time.Since(start).Seconds(),
				telemetry.MethodAttr(c.Request.Method),
				telemetry.PathAttr(route),
				telemetry.StatusAttr(c.Writer.Status()),
			)
		}
	}
}
