package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"go-news/pkg/log"
	"go-news/pkg/msg"
)

// locationParams are the route params that identify a weather location.
var locationParams = []string{"state", "city"}

// SetupRequestLogger registers the request logging middleware with custom log output.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			// health checks and swagger assets are noise
			return strings.Contains(path, "/health") || strings.Contains(path, "/swagger/")
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := requestFields(c, v)
			if v.Error == nil {
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID), fields...)
			} else {
				log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error), fields...)
			}
			return nil
		},
	}))
}

// requestFields adds the resolved location slugs, when the route has them, so weather
// lookups can be traced per state and city.
func requestFields(c echo.Context, v echomw.RequestLoggerValues) []zap.Field {
	fields := []zap.Field{
		zap.String("method", v.Method),
		zap.String("uri", v.URI),
		zap.Int("status", v.Status),
		zap.Duration("latency", v.Latency),
		zap.String("request_id", v.RequestID),
	}
	for _, name := range locationParams {
		if value := c.Param(name); value != "" {
			fields = append(fields, zap.String(name, value))
		}
	}
	if v.Error != nil {
		fields = append(fields, zap.Error(v.Error))
	}
	return fields
}
