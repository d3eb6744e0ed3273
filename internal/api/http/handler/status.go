package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
)

// StatusService reports service health and totals.
type StatusService interface {
	Status(ctx context.Context) model.Status
	Stats(ctx context.Context) (model.Stats, error)
}

type Status struct {
	statusService StatusService
	logger        *logger.Logger
}

func NewStatus(statusService StatusService, logger *logger.Logger) *Status {
	return &Status{
		statusService: statusService,
		logger:        logger,
	}
}

// Status handles GET /status.
func (h *Status) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.statusService.Status(r.Context()))
}

// Stats handles GET /stats.
func (h *Status) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statusService.Stats(r.Context())
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, stats)
}
