package handlers

import (
	"net/http"

	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

// DashboardHandler serves the read-only aggregates behind the dashboard and
// analytics pages.
type DashboardHandler struct {
	StatsUC *usecase.StatsUseCase
	Logger  logger.Logger
}

func NewDashboardHandler(uc *usecase.StatsUseCase, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{StatsUC: uc, Logger: log}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsUC.Dashboard(r.Context())
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) StageDistribution(w http.ResponseWriter, r *http.Request) {
	dist, err := h.StatsUC.StageDistribution(r.Context())
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dist)
}

func (h *DashboardHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.StatsUC.RecentActivity(r.Context())
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

func (h *DashboardHandler) ConvertAnalytics(w http.ResponseWriter, r *http.Request) {
	out, err := h.StatsUC.ConvertAnalytics(r.Context())
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *DashboardHandler) VoiceCallAnalytics(w http.ResponseWriter, r *http.Request) {
	out, err := h.StatsUC.VoiceCallAnalytics(r.Context())
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
