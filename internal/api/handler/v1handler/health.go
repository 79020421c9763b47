package v1handler

import (
	"net/http"
	"smartdomain/pkg/logger"
	"time"

	"go.uber.org/zap"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Database  string    `json:"database,omitempty"`
}

// Health reports that the process is serving requests.
func (h Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC(),
		Service:   serviceName,
		Version:   h.options.Version,
	})
}

// HealthV1 also checks the database connection.
func (h Handler) HealthV1(w http.ResponseWriter, r *http.Request) {
	res := healthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC(),
		Service:   serviceName,
		Version:   h.options.Version,
		Database:  "connected",
	}

	if h.deps.Database != nil {
		if err := h.deps.Database.Ping(r.Context()); err != nil {
			logger.Error(r.Context(), "database health check failed", zap.Error(err))
			res.Status = "unhealthy"
			res.Database = "disconnected"
			writeJSON(w, r, http.StatusServiceUnavailable, res)

			return
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
