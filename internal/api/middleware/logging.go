package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// responseWriter wraps http.ResponseWriter to capture the status code
// written by the handler so we can log it after the fact.
type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.status = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// RequestLogger returns a middleware that emits a structured zap log line
// for every HTTP request, including the correlation ID. Panics are logged
// and re-raised so Recoverer still sees them; http.ErrAbortHandler is logged
// as an abort rather than a failure.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				fields := []zap.Field{
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Duration("latency", time.Since(start)),
					zap.String("correlation_id", GetCorrelationID(r.Context())),
					zap.String("remote_addr", r.RemoteAddr),
				}
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						logger.Info("http request aborted", fields...)
					} else {
						logger.Error("http request panicked", append(fields, zap.Any("panic", rvr))...)
					}
					panic(rvr)
				}
				logger.Info("http request", append(fields, zap.Int("status", wrapped.status))...)
			}()

			next.ServeHTTP(wrapped, r)
		})
	}
}
