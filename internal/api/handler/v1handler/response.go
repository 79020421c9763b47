package v1handler

import (
	"encoding/json"
	"net/http"
	"smartdomain/pkg/logger"

	"go.uber.org/zap"
)

// envelope wraps every API response.
type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Debug(r.Context(), "could not write response", zap.Error(err))
	}
}

func (h Handler) writeData(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeJSON(w, r, status, envelope{Success: true, Data: data})
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, r, res.StatusCode, envelope{Success: false, Error: &res.Response})
}
