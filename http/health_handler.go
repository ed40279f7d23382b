package http

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const readyTimeout = 2 * time.Second

// Pinger reports whether the backends behind the service are reachable.
type Pinger interface {
	Ready(ctx context.Context) error
}

type HealthHandler struct {
	service string
	version string
	backend Pinger
	logger  *zap.Logger
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func NewHealthHandler(serviceName, version string, backend Pinger, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{service: serviceName, version: version, backend: backend, logger: logger}
}

// Health answers as long as the process is serving.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, healthResponse{Status: "healthy", Service: h.service, Version: h.version})
}

// Ready fails with 503 when the cache or the history store is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.backend.Ready(ctx); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, healthResponse{Status: "ready", Service: h.service, Version: h.version})
}
