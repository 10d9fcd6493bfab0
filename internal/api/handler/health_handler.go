package handler

import (
	"net/http"

	"github.com/ricirt/notification-pattern/internal/domain"
	"github.com/ricirt/notification-pattern/internal/response"
)

// HealthHandler serves the liveness probe endpoint.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Health handles GET /health with a plain success body.
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  response.Details
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondDetails(w, response.ToResponse(domain.Success()))
}
