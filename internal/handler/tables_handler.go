package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Tables   int    `json:"tables"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(r.Context()); err != nil {
		h.Logger.Warn("health check failed", zap.Error(err))
		writeJSON(w, HealthResponse{Status: "ERROR", Database: "disconnected"}, http.StatusServiceUnavailable)
		return
	}

	count, err := h.TablesService.GetCountTablesDB(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, HealthResponse{Status: "OK", Database: "connected", Tables: count}, http.StatusOK)
}
