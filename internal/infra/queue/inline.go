package queue

import (
	"context"
	"sync"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

const inlineCallTimeout = 30 * time.Second

// InlineDispatcher runs call jobs on a goroutine when no broker is configured.
type InlineDispatcher struct {
	Runner CallRunner
	Logger logger.Logger

	wg sync.WaitGroup
}

func NewInlineDispatcher(runner CallRunner, log logger.Logger) *InlineDispatcher {
	return &InlineDispatcher{Runner: runner, Logger: log}
}

// DispatchCall returns immediately. The job outlives the request, so it gets
// its own context.
func (d *InlineDispatcher) DispatchCall(_ context.Context, job usecase.CallJob) error {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), inlineCallTimeout)
		defer cancel()

		if err := d.Runner.RunCallJob(ctx, job); err != nil {
			d.Logger.WithFields(map[string]interface{}{
				"call_id": job.CallID,
				"error":   err.Error(),
			}).Error("inline voice call failed")
		}
	}()
	return nil
}

// Wait blocks until every dispatched job has finished.
func (d *InlineDispatcher) Wait() {
	d.wg.Wait()
}
