package logger

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

// MiddlewareConfig controls request logging behavior.
type MiddlewareConfig struct {
	Debug bool
}

// GinMiddleware logs each request with correlation identifiers and safe fields.
func GinMiddleware(cfg MiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := ensureRequestID(c)

		ctx := WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			zap.String("request_id", requestID),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.Last().Error()))
		}

		log := zap.L()
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("http request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("http request", fields...)
		case cfg.Debug:
			log.Debug("http request", fields...)
		default:
			log.Info("http request", fields...)
		}
	}
}

func ensureRequestID(c *gin.Context) string {
	requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Writer.Header().Set(requestIDHeader, requestID)
	return requestID
}
