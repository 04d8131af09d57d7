package producers

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTopicAdmin struct {
	mock.Mock
}

func (m *MockTopicAdmin) ReadPartitions(topics ...string) ([]kafka.Partition, error) {
	args := m.Called(topics)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kafka.Partition), args.Error(1)
}

func (m *MockTopicAdmin) CreateTopics(topics ...kafka.TopicConfig) error {
	args := m.Called(topics)
	return args.Error(0)
}

func TestEnsureTopic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	topic := "balance_inquiries"

	t.Run("ExistingTopicIsLeftAlone", func(t *testing.T) {
		admin := new(MockTopicAdmin)
		admin.On("ReadPartitions", []string{topic}).Return([]kafka.Partition{{Topic: topic, ID: 0}}, nil).Once()

		require.NoError(t, ensureTopic(admin, topic, 3, 1, 0, logger))
		admin.AssertNotCalled(t, "CreateTopics", mock.Anything)
		admin.AssertExpectations(t)
	})

	t.Run("MissingTopicIsCreatedWithDefaults", func(t *testing.T) {
		admin := new(MockTopicAdmin)
		admin.On("ReadPartitions", []string{topic}).Return([]kafka.Partition{}, nil).Once()
		admin.On("CreateTopics", []kafka.TopicConfig{{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}}).Return(nil).Once()

		require.NoError(t, ensureTopic(admin, topic, 0, 0, 0, logger))
		admin.AssertExpectations(t)
	})

	t.Run("ReadErrorsAreRetriedThenTopicCreated", func(t *testing.T) {
		admin := new(MockTopicAdmin)
		admin.On("ReadPartitions", []string{topic}).Return(nil, errors.New("unknown topic")).Times(topicReadAttempts)
		admin.On("CreateTopics", mock.Anything).Return(nil).Once()

		require.NoError(t, ensureTopic(admin, topic, 2, 1, 0, logger))
		admin.AssertNumberOfCalls(t, "ReadPartitions", topicReadAttempts)
		admin.AssertExpectations(t)
	})

	t.Run("CreateFailure", func(t *testing.T) {
		admin := new(MockTopicAdmin)
		createErr := errors.New("not authorized")
		admin.On("ReadPartitions", []string{topic}).Return([]kafka.Partition{}, nil).Once()
		admin.On("CreateTopics", mock.Anything).Return(createErr).Once()

		err := ensureTopic(admin, topic, 1, 1, 0, logger)
		require.Error(t, err)
		assert.ErrorIs(t, err, createErr)
	})
}
