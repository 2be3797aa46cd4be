package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

func TestPipeline_RunsInOrder(t *testing.T) {
	var ran []string
	p := NewPipeline(logger.NewTestLogger(t))
	for _, name := range []string{"a", "b", "c"} {
		name := name
		p.AddStage(name, func(context.Context) error {
			ran = append(ran, name)
			return nil
		})
	}

	done, err := p.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ran)
	assert.Equal(t, ran, done)
	assert.Equal(t, []string{"a", "b", "c"}, p.Stages())
}

func TestPipeline_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	called := false

	p := NewPipeline(logger.NewTestLogger(t))
	p.AddStage("first", func(context.Context) error { return nil })
	p.AddStage("second", func(context.Context) error { return boom })
	p.AddStage("third", func(context.Context) error { called = true; return nil })

	done, err := p.Execute(context.Background())
	assert.False(t, called)
	assert.Equal(t, []string{"first"}, done)

	var se *StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "second", se.Stage)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "stage 'second' failed after [first]")
}

func TestPipeline_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(logger.NewTestLogger(t))
	p.AddStage("never", func(context.Context) error { t.Fatal("stage ran"); return nil })

	_, err := p.Execute(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
