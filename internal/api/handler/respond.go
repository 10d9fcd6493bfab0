package handler

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/ricirt/notification-pattern/internal/response"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondDetails writes a success or problem body with the status and
// content type it carries.
func respondDetails(w http.ResponseWriter, d response.Details) {
	w.Header().Set("Content-Type", d.ContentType())
	w.WriteHeader(d.Status)
	_ = json.NewEncoder(w).Encode(d)
}
