package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dhima/looking-glass/internal/logging"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// LogEvent is the message emitted to Kafka after a daily log changes.
type LogEvent struct {
	EventID    string         `json:"event_id"`
	Type       string         `json:"type"`
	LogID      string         `json:"log_id"`
	Record     map[string]any `json:"record,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher emits log change events to Kafka.
type Publisher struct {
	writer messageWriter
	topic  string
	logger logging.Logger
}

// NewPublisher builds an asynchronous kafka-go writer for topic. Delivery
// failures are reported through the logger, never to the caller.
func NewPublisher(brokers []string, topic string, logger logging.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one kafka broker is required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	logger = logger.With(zap.String("component", "kafka_publisher"), zap.String("topic", topic))

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		WriteTimeout:           10 * time.Second,
		Async:                  true,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("failed to deliver log events", zap.Int("messages", len(messages)), zap.Error(err))
			}
		},
	}
	return newPublisherWithWriter(writer, topic, logger), nil
}

func newPublisherWithWriter(w messageWriter, topic string, logger logging.Logger) *Publisher {
	return &Publisher{writer: w, topic: topic, logger: logger}
}

// Publish enqueues the event keyed by log id so changes to one log stay ordered.
func (p *Publisher) Publish(ctx context.Context, e LogEvent) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal log event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(e.LogID),
		Value: value,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s for log %s: %w", e.Type, e.LogID, err)
	}

	p.logger.Debug("log event enqueued", zap.String("event_id", e.EventID), zap.String("type", e.Type))
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
