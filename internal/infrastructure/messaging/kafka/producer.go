// Package kafka publishes analysis lifecycle events.  Publishing is
// advisory: it happens after a report is finalized, off the request critical
// path, and a broker failure never affects the returned report.
package kafka

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/turtacn/ExitReady-Intelligence/internal/config"
	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ExitReady-Intelligence/pkg/errors"
)

var ErrProducerClosed = errors.New(errors.ErrCodeInternal, "producer closed")

// AnalysisCompletedEvent is the payload published after every successful
// analysis.
type AnalysisCompletedEvent struct {
	CorrelationID string    `json:"correlation_id"`
	CompanyName   string    `json:"company_name"`
	OverallScore  float64   `json:"overall_score"`
	RiskLevel     string    `json:"risk_level"`
	SourcePath    string    `json:"source_path"`
	CompletedAt   time.Time `json:"completed_at"`
}

// writerInterface abstracts kafka.Writer so tests can substitute a fake.
type writerInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes events to the configured topic.
type Producer struct {
	writer writerInterface
	topic  string
	logger logging.Logger
	closed atomic.Bool
}

// NewProducer builds a producer from configuration.
func NewProducer(cfg *config.KafkaConfig, log logging.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: cfg.WriteTimeout,
		BatchSize:    cfg.BatchSize,
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{writer: writer, topic: cfg.Topic, logger: log}
}

// newProducerWithWriter wires a custom writer; used by tests.
func newProducerWithWriter(w writerInterface, topic string, log logging.Logger) *Producer {
	return &Producer{writer: w, topic: topic, logger: log}
}

// PublishAnalysisCompleted publishes one event, keyed by correlation id so
// events for the same analysis land on the same partition.
func (p *Producer) PublishAnalysisCompleted(ctx context.Context, ev AnalysisCompletedEvent) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode analysis event")
	}

	msg := kafka.Message{
		Key:   []byte(ev.CorrelationID),
		Value: payload,
		Time:  ev.CompletedAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte("analysis.completed")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, errors.ErrCodeExternalService, "failed to publish analysis event")
	}

	p.logger.Debug("analysis event published",
		logging.String("correlation_id", ev.CorrelationID),
		logging.String("topic", p.topic))
	return nil
}

// Close flushes buffered messages and releases the writer.  Safe to call
// more than once.
func (p *Producer) Close() error {
	if p.closed.Swap(true) {
		return nil
	}
	return p.writer.Close()
}
