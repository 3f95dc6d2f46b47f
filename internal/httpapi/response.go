package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/huyche/email-service/pkg/validator"
)

// envelope is the uniform response shape of the API.
type envelope struct {
	Code    int    `json:"code"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

func respond(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Code: status, Data: data, Message: message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, nil, message)
}

// respondValidation answers 400 with per-field messages.
func respondValidation(w http.ResponseWriter, ve validator.ValidationErrors) {
	fields := make(map[string][]string, len(ve.Fields()))
	for _, field := range ve.Fields() {
		fields[field] = ve.Get(field)
	}
	respond(w, http.StatusBadRequest, map[string]any{"errors": fields}, "Validation failed")
}
