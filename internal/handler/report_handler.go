package handler

import (
	"encoding/json"
	"net/http"

	"screenwell/wellness-agent/internal/service"

	"go.uber.org/zap"
)

// ReportHandler serves tracking reports and agent status as plain JSON.
// Rendering is the consumer's concern.
type ReportHandler struct {
	service *service.TrackingService
	logger  *zap.Logger
}

// NewReportHandler creates a report handler
func NewReportHandler(service *service.TrackingService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger,
	}
}

// GetReport returns the latest session report
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rep, ok := h.service.LatestReport()
	if !ok {
		http.Error(w, "No completed session yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		h.logger.Error("Failed to encode report", zap.Error(err))
	}
}

// GetStatus returns the current tracking status
func (h *ReportHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.service.Status()); err != nil {
		h.logger.Error("Failed to encode status", zap.Error(err))
	}
}
