package producers

import (
	"context"

	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/segmentio/kafka-go"
)

// EventPublisher publishes inquiry outcome events
type EventPublisher interface {
	PublishInquiryEvent(ctx context.Context, event *inquiry.Event) error
	Close() error
}

// KafkaWriter wraps kafka.Writer methods for testing
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// topicAdmin is the part of *kafka.Conn used to manage topics
type topicAdmin interface {
	ReadPartitions(topics ...string) ([]kafka.Partition, error)
	CreateTopics(topics ...kafka.TopicConfig) error
}
