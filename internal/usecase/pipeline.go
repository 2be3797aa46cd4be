package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

// Pipeline runs named stages strictly in order. It stops at the first failure and
// does not undo earlier stages: a reset is expected to repair partial data.
type Pipeline struct {
	stages []Stage
	logger logger.Logger
}

type Stage struct {
	Name string
	Fn   func(context.Context) error
}

func NewPipeline(log logger.Logger) *Pipeline {
	return &Pipeline{
		stages: []Stage{},
		logger: log,
	}
}

func (p *Pipeline) AddStage(name string, fn func(context.Context) error) {
	p.stages = append(p.stages, Stage{name, fn})
}

func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Execute returns the completed stage names. On failure the error is a *StageError.
func (p *Pipeline) Execute(ctx context.Context) ([]string, error) {
	completed := make([]string, 0, len(p.stages))

	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return completed, &StageError{Stage: stage.Name, Completed: completed, Err: err}
		}

		start := time.Now()
		if err := stage.Fn(ctx); err != nil {
			p.logger.WithFields(map[string]interface{}{
				"stage":     stage.Name,
				"completed": len(completed),
				"error":     err.Error(),
			}).Error("pipeline stage failed")
			return completed, &StageError{Stage: stage.Name, Completed: completed, Err: err}
		}

		p.logger.WithFields(map[string]interface{}{
			"stage":       stage.Name,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("pipeline stage done")
		completed = append(completed, stage.Name)
	}

	return completed, nil
}
