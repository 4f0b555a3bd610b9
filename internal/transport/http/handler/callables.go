package handler

import (
	"net/http"

	"github.com/focus-functions/internal/application/email"
	"github.com/focus-functions/internal/domain"
)

// EmailHandler exposes the email callables.
type EmailHandler struct {
	svc email.Service
}

func NewEmailHandler(svc email.Service) *EmailHandler {
	return &EmailHandler{svc: svc}
}

func (h *EmailHandler) SendOTPEmail(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCallable[domain.SendOTPEmailRequest](r)
	if err != nil {
		writeCallableError(w, err)
		return
	}
	res, err := h.svc.SendOTPEmail(r.Context(), req)
	if err != nil {
		writeCallableError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ResultEnvelope{Result: res})
}

func (h *EmailHandler) SendWelcomeEmail(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCallable[domain.SendWelcomeEmailRequest](r)
	if err != nil {
		writeCallableError(w, err)
		return
	}
	res, err := h.svc.SendWelcomeEmail(r.Context(), req)
	if err != nil {
		writeCallableError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ResultEnvelope{Result: res})
}
