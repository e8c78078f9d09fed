// Package events publishes article review events to downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"remediation-portal/internal/domain"
	"remediation-portal/internal/logger"
	"remediation-portal/internal/metrics"
)

// Publisher delivers article events.
type Publisher interface {
	Publish(ctx context.Context, event domain.ArticleEvent) error
	Close() error
}

// MessageWriter is the subset of *kafka.Writer used by KafkaPublisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events as JSON messages keyed by article id, so every
// event for one article lands on the same partition in order.
type KafkaPublisher struct {
	writer MessageWriter
}

// NewKafkaPublisher creates a publisher writing to topic on the given brokers.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return NewKafkaPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	})
}

// NewKafkaPublisherWithWriter creates a publisher over an existing writer.
func NewKafkaPublisherWithWriter(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// Publish writes one event.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.ArticleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.ArticleID),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.ArticleEvent) error { return nil }
func (NopPublisher) Close() error                                        { return nil }

// Emit publishes an event and logs a failure instead of returning it.
func Emit(ctx context.Context, p Publisher, event domain.ArticleEvent) {
	if err := p.Publish(ctx, event); err != nil {
		metrics.EventPublishFailures.WithLabelValues(string(event.Type)).Inc()
		logger.WithArticleID(event.ArticleID).Error("Failed to publish article event",
			slog.String("request_id", event.RequestID),
			slog.String("type", string(event.Type)),
			slog.String("error", err.Error()),
		)
	}
}
