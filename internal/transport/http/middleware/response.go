package middleware

import (
	"encoding/json"
	"net/http"
)

// writeCallableError writes {"error": {"code": ..., "message": ...}} with the given status.
func writeCallableError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]map[string]string{
		"error": {"code": code, "message": msg},
	})
}
