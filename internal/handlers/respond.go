package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// writeStatus writes the success shape {"status": ...}.
func writeStatus(w http.ResponseWriter, code int, status string) {
	writeJSON(w, code, map[string]string{"status": status})
}

// writeError writes the failure shape {"error": ...}.
func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// internalError logs the cause server-side and returns a generic body.
func internalError(w http.ResponseWriter, op string, err error) {
	log.Error().Err(err).Str("op", op).Msg("internal error")
	writeError(w, http.StatusInternalServerError, "internal server error")
}
