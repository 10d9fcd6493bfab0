package middleware

import (
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/ricirt/notification-pattern/internal/response"
)

const tooManyRequestsType = "https://tools.ietf.org/html/rfc6585#section-4"

// Allower decides whether a request may proceed. *ratelimiter.Limiter
// implements it.
type Allower interface {
	Allow() bool
}

// RateLimit rejects requests with a 429 problem body once the limiter runs
// dry. onLimited may be nil.
func RateLimit(limiter Allower, logger *zap.Logger, onLimited func()) func(http.Handler) http.Handler {
	if onLimited == nil {
		onLimited = func() {}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			onLimited()
			logger.Warn("rate limit exceeded",
				zap.String("path", r.URL.Path),
				zap.String("correlation_id", GetCorrelationID(r.Context())),
			)

			d := response.StatusProblem(http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests), tooManyRequestsType)
			w.Header().Set("Content-Type", d.ContentType())
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(d.Status)
			_ = json.NewEncoder(w).Encode(d)
		})
	}
}
