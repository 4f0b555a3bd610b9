package handler

import (
	"net/http"

	"github.com/focus-functions/internal/application/sweep"
)

// TaskHandler exposes scheduled tasks for manual triggering.
type TaskHandler struct {
	sweeper sweep.Service
}

func NewTaskHandler(sweeper sweep.Service) *TaskHandler {
	return &TaskHandler{sweeper: sweeper}
}

func (h *TaskHandler) CleanupExpiredOTPs(w http.ResponseWriter, r *http.Request) {
	res, err := h.sweeper.Run(r.Context())
	if err != nil {
		writeCallableError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ResultEnvelope{Result: res})
}
