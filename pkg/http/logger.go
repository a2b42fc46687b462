package http

import (
	"go.uber.org/zap"

	"weather-widget/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}
func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
}
func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapLogger writes outbound calls through the application logger. Bodies are
// only logged at debug level.
type ZapLogger struct {
	// Name identifies the upstream in every entry, e.g. "geocoding".
	Name string
}

func (l ZapLogger) LogRequest(method, url string, _ map[string]string, body string) {
	log.Debug("Outbound request",
		zap.String("upstream", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", body))
}

func (l ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64) {
	log.Debug("Outbound request succeeded",
		zap.String("upstream", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response_body", responseBody))
}

func (l ZapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("Outbound request failed",
		zap.String("upstream", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response_body", responseBody),
		zap.Error(err))
}
