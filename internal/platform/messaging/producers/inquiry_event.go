package producers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cloud-inquiry-balance-web/internal/config"
	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/cloud-inquiry-balance-web/internal/platform/correlation"
	"github.com/segmentio/kafka-go"
)

// InquiryEventProducer writes inquiry outcome events to Kafka
type InquiryEventProducer struct {
	logger *slog.Logger
	writer KafkaWriter // Interface for testability
	topic  string
}

// NewEventPublisher returns a Kafka producer when the stream is enabled and a no-op publisher otherwise
func NewEventPublisher(ctx context.Context, logger *slog.Logger, cfg *config.KafkaConfig) (EventPublisher, error) {
	if !cfg.Enabled {
		logger.Info("Kafka is disabled, inquiry events will not be published")
		return NoopPublisher{}, nil
	}
	producer, err := NewInquiryEventProducer(ctx, logger, cfg)
	if err != nil {
		return nil, err
	}
	return producer, nil
}

// NewInquiryEventProducer dials the broker, ensures the topic exists and builds an async writer
func NewInquiryEventProducer(ctx context.Context, logger *slog.Logger, cfg *config.KafkaConfig) (*InquiryEventProducer, error) {
	if cfg.InquiryTopic == "" {
		return nil, fmt.Errorf("kafka inquiry topic is not configured")
	}

	var dialer kafka.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", cfg.Brokers)
	if err != nil {
		return nil, fmt.Errorf("failed to dial kafka for inquiry event producer: %w", err)
	}
	defer conn.Close()

	err = ensureTopic(conn, cfg.InquiryTopic, cfg.NumPartitions, cfg.ReplicationFactor, topicReadBackoff, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure topic %s exists: %w", cfg.InquiryTopic, err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers),
		Topic:        cfg.InquiryTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true, // the user never waits on the event stream
		WriteTimeout: cfg.WriteTimeout,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("Failed to write inquiry events", "topic", cfg.InquiryTopic, "error", err, "count", len(messages))
			} else {
				logger.Debug("Wrote inquiry events", "topic", cfg.InquiryTopic, "count", len(messages))
			}
		},
	}

	return &InquiryEventProducer{
		logger: logger,
		writer: writer,
		topic:  cfg.InquiryTopic,
	}, nil
}

// PublishInquiryEvent writes one event keyed by the masked account number
func (p *InquiryEventProducer) PublishInquiryEvent(ctx context.Context, event *inquiry.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal inquiry event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.AccountMasked),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-source", Value: []byte(event.Source)},
		},
	}
	if event.CorrelationID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: correlation.Header, Value: []byte(event.CorrelationID)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish inquiry event",
			"topic", p.topic,
			"event_id", event.EventID,
			"error", err,
		)
		return fmt.Errorf("failed to publish inquiry event to %s: %w", p.topic, err)
	}

	p.logger.Debug("Published inquiry event",
		"topic", p.topic,
		"event_id", event.EventID,
		"outcome", string(event.Outcome),
	)
	return nil
}

// Close flushes pending events and closes the writer
func (p *InquiryEventProducer) Close() error {
	p.logger.Info("Closing inquiry event producer", "topic", p.topic)
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer for topic %s: %w", p.topic, err)
	}
	return nil
}

// NoopPublisher drops every event
type NoopPublisher struct{}

func (NoopPublisher) PublishInquiryEvent(context.Context, *inquiry.Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
