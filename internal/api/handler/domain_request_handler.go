package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apimw "github.com/ricirt/notification-pattern/internal/api/middleware"
	"github.com/ricirt/notification-pattern/internal/domain"
	"github.com/ricirt/notification-pattern/internal/response"
)

// Notifications for route parameters that cannot be parsed.
var (
	InvalidDate  = domain.NewError("Request.InvalidDate", "Date must be a calendar date in yyyy-MM-dd format")
	InvalidValid = domain.NewError("Request.InvalidValid", "Valid must be true or false")
)

// Operator runs the sample operation. *service.OperationService implements it.
type Operator interface {
	Operation(ctx context.Context, date time.Time, valid bool) (domain.Outcome, error)
}

// DomainRequestHandler exposes the sample operation over HTTP.
type DomainRequestHandler struct {
	svc    Operator
	logger *zap.Logger
}

func NewDomainRequestHandler(svc Operator, logger *zap.Logger) *DomainRequestHandler {
	return &DomainRequestHandler{svc: svc, logger: logger}
}

// Get handles GET /domain-request/{date}/{valid}
//
// @Summary  Run the sample operation
// @Tags     domain
// @Produce  json
// @Param    date   path      string  true  "Operation date (yyyy-MM-dd)"
// @Param    valid  path      bool    true  "Whether the operation is valid"
// @Success  200    {object}  response.Details
// @Failure  400    {object}  response.Details
// @Router   /domain-request/{date}/{valid} [get]
func (h *DomainRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	var params []domain.Notification
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		params = append(params, InvalidDate)
	}
	valid, ok := parseValid(chi.URLParam(r, "valid"))
	if !ok {
		params = append(params, InvalidValid)
	}
	if len(params) != 0 {
		respondDetails(w, response.ToResponse(domain.NotifyAll(params...)))
		return
	}

	outcome, err := h.svc.Operation(r.Context(), date, valid)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			h.logger.Debug("request cancelled",
				zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
				zap.Error(err),
			)
			// No outcome was produced: drop the connection without a body.
			panic(http.ErrAbortHandler)
		}
		h.logger.Error("operation failed",
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.Error(err),
		)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	respondDetails(w, response.ToResponse(outcome))
}

// parseDate accepts a calendar date and, leniently, an RFC 3339 timestamp
// whose time of day is ignored downstream.
func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

// parseValid accepts only the literals true and false, in any letter case.
func parseValid(s string) (bool, bool) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	}
	return false, false
}
