package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/huyche/email-service/internal/email"
	"github.com/huyche/email-service/internal/email/templates"
	"github.com/huyche/email-service/pkg/logger"
	"github.com/huyche/email-service/pkg/validator"
)

type handler struct {
	svc *email.Service
	log *slog.Logger
}

func (h *handler) banner(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, "Email Service API is running!", "Success")
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, "Success")
}

func (h *handler) send(w http.ResponseWriter, r *http.Request) {
	var req email.SendRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.validate(w, validateSend(req)) {
		return
	}

	result := h.svc.Send(r.Context(), req)
	respond(w, http.StatusOK, result, result.Message)
}

func (h *handler) sendBulk(w http.ResponseWriter, r *http.Request) {
	var req email.BulkRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.validate(w, validateBulk(req)) {
		return
	}

	result := h.svc.SendBulk(r.Context(), req)
	respond(w, http.StatusOK, result,
		fmt.Sprintf("Bulk emails processed: %d sent, %d failed", result.Sent, result.Failed))
}

func (h *handler) sendTemplate(w http.ResponseWriter, r *http.Request) {
	var req email.TemplateRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.validate(w, validateTemplate(req)) {
		return
	}

	result, err := h.svc.SendTemplate(r.Context(), req)
	if err != nil {
		if errors.Is(err, templates.ErrTemplateNotFound) {
			respondError(w, http.StatusBadRequest,
				fmt.Sprintf("Email template '%s' not found", req.Template))
			return
		}
		h.log.ErrorContext(r.Context(), "template send failed", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to send template email")
		return
	}
	respond(w, http.StatusOK, result, result.Message)
}

func (h *handler) sendPortfolio(w http.ResponseWriter, r *http.Request) {
	var req email.PortfolioRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.validate(w, validatePortfolio(req)) {
		return
	}

	result, err := h.svc.SendPortfolioResponse(r.Context(), req)
	if err != nil {
		h.log.ErrorContext(r.Context(), "portfolio send failed", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to send email: Portfolio email delivery failed")
		return
	}
	respond(w, http.StatusOK, result, result.Message)
}

func (h *handler) sendWelcome(w http.ResponseWriter, r *http.Request) {
	var req email.WelcomeRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.validate(w, validateWelcome(req)) {
		return
	}

	result, err := h.svc.SendWelcome(r.Context(), req)
	if err != nil {
		h.log.ErrorContext(r.Context(), "welcome send failed", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to send email: Welcome email delivery failed")
		return
	}
	respond(w, http.StatusOK, result, result.Message)
}

func (h *handler) testConnection(w http.ResponseWriter, r *http.Request) {
	result := h.svc.TestConnection(r.Context())
	respond(w, http.StatusOK, result, result.Message)
}

func (h *handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]any{"templates": h.svc.Templates()}, "Success")
}

// validate writes the 400 response on failure and reports whether to proceed.
func (h *handler) validate(w http.ResponseWriter, err error) bool {
	if err == nil {
		return true
	}
	if ve := validator.ExtractValidationErrors(err); ve != nil {
		respondValidation(w, ve)
		return false
	}
	respondError(w, http.StatusBadRequest, err.Error())
	return false
}
