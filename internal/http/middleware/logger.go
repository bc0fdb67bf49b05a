package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"billingapi/internal/config"
	"billingapi/internal/logger"
)

// Logger writes one "http_request" entry per request with request_id, method,
// path, status and latency in milliseconds. Server errors are logged at warn.
func Logger(log *zap.Logger) fiber.Handler {
	log = log.With(zap.String("component", "http"))

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := responseStatus(c, err)
		fields := []zap.Field{
			zap.String("request_id", RequestIDFrom(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		}
		if status >= fiber.StatusInternalServerError {
			log.Warn("http_request", fields...)
		} else {
			log.Info("http_request", fields...)
		}

		return err
	}
}

// LoggerWithWriter is Logger writing JSON lines to w with timestamps in loc.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return Logger(logger.NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, loc, w))
}
