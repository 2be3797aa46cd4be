package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/xavierca1/evangelism-crm/internal/infra/http/middleware"
	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

const resetTimeout = 5 * time.Minute

type Resetter interface {
	Execute(ctx context.Context, input usecase.SeedDemoInput) (*usecase.ResetDemoOutput, error)
}

// ResetWorker wipes and reseeds the demo tenant on a cron schedule. A run that
// is still going when the next one fires makes the next one skip.
type ResetWorker struct {
	resetter Resetter
	input    usecase.SeedDemoInput
	schedule cron.Schedule
	spec     string
	logger   logger.Logger
}

// NewResetWorker accepts standard five-field specs and descriptors like "@every 6h".
func NewResetWorker(resetter Resetter, input usecase.SeedDemoInput, spec string, log logger.Logger) (*ResetWorker, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid reset schedule %q: %w", spec, err)
	}
	return &ResetWorker{
		resetter: resetter,
		input:    input,
		schedule: schedule,
		spec:     spec,
		logger:   log.WithField("worker", "demo_reset"),
	}, nil
}

func (w *ResetWorker) Start(ctx context.Context) {
	c := cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(w.schedule, cron.FuncJob(func() { w.RunOnce(ctx) }))
	c.Start()

	w.logger.WithFields(map[string]interface{}{
		"schedule": w.spec,
		"next_run": w.schedule.Next(time.Now()).Format(time.RFC3339),
	}).Info("demo reset worker started")

	<-ctx.Done()
	<-c.Stop().Done()
	w.logger.Info("demo reset worker stopped")
}

// RunOnce performs one reset.
func (w *ResetWorker) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, resetTimeout)
	defer cancel()

	out, err := w.resetter.Execute(ctx, w.input)
	middleware.RecordDemoReset("schedule", err)
	if err != nil {
		w.logger.WithField("error", err.Error()).Error("scheduled demo reset failed")
		return
	}
	middleware.RecordSeededRecords(out.Seed.Counts)

	w.logger.WithFields(map[string]interface{}{
		"collections_cleared": out.CollectionsCleared,
		"records_removed":     out.RecordsRemoved,
		"records_seeded":      out.Seed.Total(),
	}).Info("scheduled demo reset completed")
}
