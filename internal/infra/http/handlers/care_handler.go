package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

// CareHandler covers health scores and the alerts raised from them.
type CareHandler struct {
	HealthUC *usecase.HealthScoreUseCase
	AlertUC  *usecase.AlertUseCase
	Logger   logger.Logger
}

func NewCareHandler(health *usecase.HealthScoreUseCase, alerts *usecase.AlertUseCase, log logger.Logger) *CareHandler {
	return &CareHandler{HealthUC: health, AlertUC: alerts, Logger: log}
}

func (h *CareHandler) ListHealthScores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.HealthUC.List(r.Context())
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, scores)
}

func (h *CareHandler) GetHealthScore(w http.ResponseWriter, r *http.Request) {
	score, err := h.HealthUC.GetByConvert(r.Context(), chi.URLParam(r, "convertID"))
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, score)
}

func (h *CareHandler) RecalculateHealthScore(w http.ResponseWriter, r *http.Request) {
	score, err := h.HealthUC.Recalculate(r.Context(), chi.URLParam(r, "convertID"))
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, score)
}

// ListAlerts (GET /api/alerts?status=&severity=)
func (h *CareHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	alerts, err := h.AlertUC.List(r.Context(), usecase.AlertFilter{
		Status:   q.Get("status"),
		Severity: q.Get("severity"),
	})
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (h *CareHandler) GetAlert(w http.ResponseWriter, r *http.Request) {
	alert, err := h.AlertUC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, alert)
}

func (h *CareHandler) UpdateAlert(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateAlertInput
	if !decode(w, r, &input) {
		return
	}

	alert, err := h.AlertUC.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, alert)
}
