// Package respond writes the envelope every endpoint shares:
// {success, message, <entity field>, count?, error?}.
package respond

import (
	"encoding/json"
	"net/http"
)

// OK writes a success envelope. Extra carries the entity-specific fields
// ("animal", "inventoryItems", "count", ...).
func OK(w http.ResponseWriter, status int, message string, extra map[string]any) {
	body := map[string]any{
		"success": true,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	writeJSON(w, status, body)
}

// Error writes a failure envelope without detail (400/401/403/404).
func Error(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

// Internal writes the 500 envelope, carrying the error's message when there
// is one. This is the only place the raw error text reaches the wire.
func Internal(w http.ResponseWriter, message string, err error) {
	body := map[string]any{
		"success": false,
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
