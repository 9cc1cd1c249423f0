package api

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the single-message error envelope used for 404s and
// internal failures: {"error": "<message>"}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeErrorList writes the aggregated error envelope used for validation
// failures: {"error": ["<field.path>: <message>", ...]}.
func writeErrorList(w http.ResponseWriter, status int, messages []string) {
	writeJSON(w, status, map[string][]string{"error": messages})
}
