package consumers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/cloud-inquiry-balance-web/internal/config"
	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/segmentio/kafka-go"
)

// EventHandler receives one decoded inquiry event
type EventHandler func(ctx context.Context, event *inquiry.Event) error

// KafkaReader wraps kafka.Reader methods for testing
type KafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventConsumer reads inquiry outcome events from Kafka
type EventConsumer struct {
	reader     KafkaReader
	logger     *slog.Logger
	retryDelay time.Duration
}

// NewEventConsumer creates a consumer on the inquiry topic using the configured group
func NewEventConsumer(logger *slog.Logger, cfg *config.KafkaConfig) *EventConsumer {
	return &EventConsumer{
		logger: logger,
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     []string{cfg.Brokers},
			Topic:       cfg.InquiryTopic,
			GroupID:     cfg.ConsumerGroup,
			MaxWait:     time.Second,
			StartOffset: kafka.LastOffset,
		}),
		retryDelay: time.Second,
	}
}

// Consume blocks, handing each event to handler until ctx is done.
// Offsets are committed only after handler succeeds; undecodable messages are committed and skipped.
func (c *EventConsumer) Consume(ctx context.Context, handler EventHandler) error {
	c.logger.Info("Consuming inquiry events")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.logger.Info("Context canceled, stopping consumer")
				return nil
			}
			c.logger.Error("Failed to fetch message from Kafka", "error", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.retryDelay):
			}
			continue
		}

		logger := c.logger.With("topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)

		var event inquiry.Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Warn("Skipping undecodable inquiry event", "error", err)
			c.commit(ctx, logger, msg)
			continue
		}

		if err := handler(ctx, &event); err != nil {
			logger.Error("Failed to handle inquiry event, will not commit offset", "event_id", event.EventID, "error", err)
			continue
		}

		c.commit(ctx, logger, msg)
	}
}

func (c *EventConsumer) commit(ctx context.Context, logger *slog.Logger, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		logger.Error("Failed to commit message", "error", err)
		return
	}
	logger.Debug("Message committed")
}

func (c *EventConsumer) Close() error {
	if c.reader != nil {
		return c.reader.Close()
	}
	return nil
}
