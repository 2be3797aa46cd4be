package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/infra/http/middleware"
	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

const resetTimeout = 5 * time.Minute

type DemoHandler struct {
	ResetUC *usecase.ResetDemoUseCase
	StatsUC *usecase.StatsUseCase
	Input   usecase.SeedDemoInput
	Logger  logger.Logger
}

type resetResponse struct {
	Status             string         `json:"status"`
	Message            string         `json:"message"`
	CollectionsCleared int            `json:"collections_cleared"`
	RecordsRemoved     int64          `json:"records_removed"`
	Seeded             map[string]int `json:"seeded"`
	Timestamp          time.Time      `json:"timestamp"`
}

func NewDemoHandler(reset *usecase.ResetDemoUseCase, stats *usecase.StatsUseCase, input usecase.SeedDemoInput, log logger.Logger) *DemoHandler {
	return &DemoHandler{ResetUC: reset, StatsUC: stats, Input: input, Logger: log}
}

// Info (GET /api/demo/info) is public and includes the demo login.
func (h *DemoHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, usecase.NewDemoInfo(h.Input))
}

func (h *DemoHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.StatsUC.DemoStats(r.Context()))
}

// Reset (POST /api/demo/reset) wipes and reseeds the tenant. It runs to the end
// even if the client goes away, otherwise the shared tenant would stay empty.
func (h *DemoHandler) Reset(w http.ResponseWriter, r *http.Request) {
	log := h.Logger.WithField("ip", middleware.ClientIP(r))
	log.Info("demo reset requested")

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), resetTimeout)
	defer cancel()

	out, err := h.ResetUC.Execute(ctx, h.Input)
	middleware.RecordDemoReset("api", err)
	if err != nil {
		handleError(w, log, err)
		return
	}
	middleware.RecordSeededRecords(out.Seed.Counts)

	writeJSON(w, http.StatusOK, resetResponse{
		Status:             "success",
		Message:            "Demo data reset successfully",
		CollectionsCleared: out.CollectionsCleared,
		RecordsRemoved:     out.RecordsRemoved,
		Seeded:             out.Seed.Counts,
		Timestamp:          out.Timestamp,
	})
}
