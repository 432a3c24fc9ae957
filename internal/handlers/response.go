package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// jsonResponse writes data as JSON with the given status.
func jsonResponse(w http.ResponseWriter, logger *zap.SugaredLogger, status int, data any) {
	if data == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorw("error encoding response", "error", err)
	}
}

// jsonError writes {"error": message}.
func jsonError(w http.ResponseWriter, logger *zap.SugaredLogger, status int, message string) {
	jsonResponse(w, logger, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
