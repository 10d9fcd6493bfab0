package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ricirt/notification-pattern/internal/api/handler"
	apimw "github.com/ricirt/notification-pattern/internal/api/middleware"
)

// Deps bundles what the router needs from main.
type Deps struct {
	Operator  handler.Operator
	Limiter   apimw.Allower
	OnLimited func()
	Gatherer  prometheus.Gatherer
	Logger    *zap.Logger
}

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer) // recover panics, return 500; re-panics http.ErrAbortHandler
	r.Use(chimw.RealIP)    // trust X-Forwarded-For / X-Real-IP
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(d.Logger))

	// --- handler instances ---
	dh := handler.NewDomainRequestHandler(d.Operator, d.Logger)
	hh := handler.NewHealthHandler()

	// --- routes ---
	r.Get("/health", hh.Health)
	r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(apimw.RateLimit(d.Limiter, d.Logger, d.OnLimited))
		r.Get("/domain-request/{date}/{valid}", dh.Get)
	})

	return r
}
