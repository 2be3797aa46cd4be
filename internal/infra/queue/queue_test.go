package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, msg)
	return args.Error(0)
}

type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) RunCallJob(ctx context.Context, job usecase.CallJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

var testJob = usecase.CallJob{CallID: "call-1", ConvertID: "convert-1", ClientID: "demo-church-lagos"}

func TestProducerPublishesPersistentJob(t *testing.T) {
	pub := new(MockPublisher)
	pub.On("PublishWithContext", mock.Anything, ExchangeName, RoutingKey, mock.MatchedBy(func(msg amqp.Publishing) bool {
		var job usecase.CallJob
		return json.Unmarshal(msg.Body, &job) == nil &&
			job == testJob &&
			msg.DeliveryMode == amqp.Persistent &&
			msg.MessageId == "call-1"
	})).Return(nil)

	err := NewProducer(pub).DispatchCall(context.Background(), testJob)

	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestProducerWrapsPublishError(t *testing.T) {
	pub := new(MockPublisher)
	pub.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(amqp.ErrClosed)

	err := NewProducer(pub).DispatchCall(context.Background(), testJob)

	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestWorkerHandle(t *testing.T) {
	body, _ := json.Marshal(testJob)

	tests := []struct {
		name        string
		body        []byte
		redelivered bool
		runErr      error
		want        outcome
	}{
		{"success", body, false, nil, ack},
		{"malformed", []byte("{"), false, nil, reject},
		{"missing call id", []byte(`{"convert_id":"x"}`), false, nil, reject},
		{"transient failure retried once", body, false, errors.New("store down"), requeue},
		{"second failure dead-lettered", body, true, errors.New("store down"), reject},
		{"domain error not retried", body, false, usecase.NewNotFound("voice call"), reject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := new(MockRunner)
			runner.On("RunCallJob", mock.Anything, testJob).Return(tt.runErr).Maybe()
			w := &Worker{Runner: runner, Logger: logger.NewTestLogger(t)}

			assert.Equal(t, tt.want, w.handle(context.Background(), tt.body, tt.redelivered))
		})
	}
}

type countingRunner struct {
	mu   sync.Mutex
	jobs []usecase.CallJob
}

func (r *countingRunner) RunCallJob(_ context.Context, job usecase.CallJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, job)
	return nil
}

func TestInlineDispatcher(t *testing.T) {
	runner := &countingRunner{}
	d := NewInlineDispatcher(runner, logger.NewTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, d.DispatchCall(ctx, testJob))
	cancel()
	d.Wait()

	assert.Equal(t, []usecase.CallJob{testJob}, runner.jobs)
}
