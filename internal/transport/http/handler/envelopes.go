package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/focus-functions/internal/domain"
)

// MessageEnvelope is the plain response wrapper used by health checks.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
}

// callableRequest is the callable protocol request body: {"data": {...}}.
type callableRequest[T any] struct {
	Data T `json:"data"`
}

// ResultEnvelope wraps a successful callable response.
type ResultEnvelope struct {
	Result any `json:"result"`
}

// ErrorBody is the structured error reported to callers.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorEnvelope wraps a failed callable response.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.InvalidArgument, domain.FailedPrecondition:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeCallableError reports err as {"error": {code, message}}. Errors that are
// not CallableErrors are reported as internal without leaking their text.
func writeCallableError(w http.ResponseWriter, err error) {
	var ce *domain.CallableError
	if !errors.As(err, &ce) {
		ce = domain.NewCallableError(domain.Internal, "internal error", err)
	}
	writeJSON(w, statusFor(ce.Kind), ErrorEnvelope{Error: ErrorBody{Code: ce.Kind.Code(), Message: ce.Message}})
}

// decodeCallable reads a callable body into T. A malformed body is an invalid argument.
func decodeCallable[T any](r *http.Request) (T, error) {
	var req callableRequest[T]
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req.Data, domain.NewCallableError(domain.InvalidArgument, "invalid request body", err)
	}
	return req.Data, nil
}
