package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const loggerContextKey contextKey = "logger"

// Logger stores a request-scoped logger (carrying the request ID) in context
// and logs each request with its status and duration once it completes.
func Logger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLogger := log.With().
				Str("request_id", GetRequestID(r)).
				Logger()
			ctx := context.WithValue(r.Context(), loggerContextKey, reqLogger)

			// Wrap response writer to capture status code
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r.WithContext(ctx))

			reqLogger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Int("status", wrapped.statusCode).
				Dur("duration", time.Since(start)).
				Msg("request completed")
		})
	}
}

// GetLogger returns the request-scoped logger, or a no-op logger when the
// middleware did not run (e.g. direct handler tests).
func GetLogger(ctx context.Context) zerolog.Logger {
	if l, ok := ctx.Value(loggerContextKey).(zerolog.Logger); ok {
		return l
	}
	return zerolog.Nop()
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
