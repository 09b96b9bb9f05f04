package http

import (
	"go-news/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses.
// URLs handed to the logger already have sensitive query parameters redacted.
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a 2xx response
	LogResponseSuccess(method, url string, httpStatus int, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or a non-2xx response
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string)               {}
func (noopLogger) LogResponseSuccess(string, string, int, int64)              {}
func (noopLogger) LogResponseError(string, string, int, string, int64, error) {}

// ZapLogger writes outbound HTTP traffic to the application log.
type ZapLogger struct {
	Name string
}

func (l ZapLogger) LogRequest(method, url string, _ map[string]string) {
	log.Debug("outbound request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url))
}

func (l ZapLogger) LogResponseSuccess(method, url string, httpStatus int, latency int64) {
	log.Debug("outbound response",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l ZapLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("outbound request failed",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response_body", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}
