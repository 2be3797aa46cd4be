package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

// CallRunner places one dispatched call.
type CallRunner interface {
	RunCallJob(ctx context.Context, job usecase.CallJob) error
}

type Worker struct {
	Channel *amqp.Channel
	Runner  CallRunner
	Logger  logger.Logger
}

func NewWorker(ch *amqp.Channel, runner CallRunner, log logger.Logger) *Worker {
	return &Worker{
		Channel: ch,
		Runner:  runner,
		Logger:  log,
	}
}

type outcome int

const (
	ack outcome = iota
	requeue
	reject
)

// Start consumes queueName until ctx is canceled or the channel closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	if err := w.Channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	msgs, err := w.Channel.Consume(
		queueName,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	w.Logger.WithField("queue", queueName).Info("voice call worker started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			switch w.handle(ctx, d.Body, d.Redelivered) {
			case ack:
				d.Ack(false)
			case requeue:
				d.Nack(false, true)
			default:
				d.Nack(false, false)
			}
		}
	}
}

// handle retries a failed job once; a malformed body or a second failure goes
// to the dead letter queue.
func (w *Worker) handle(ctx context.Context, body []byte, redelivered bool) outcome {
	var job usecase.CallJob
	if err := json.Unmarshal(body, &job); err != nil || job.CallID == "" {
		w.Logger.Warn("malformed call job, rejecting")
		return reject
	}

	log := w.Logger.WithFields(map[string]interface{}{
		"call_id":    job.CallID,
		"convert_id": job.ConvertID,
	})

	if err := w.Runner.RunCallJob(ctx, job); err != nil {
		log.WithField("error", err.Error()).Error("voice call failed")
		if usecase.IsDomainError(err) || redelivered {
			return reject
		}
		return requeue
	}

	log.Info("voice call completed")
	return ack
}
