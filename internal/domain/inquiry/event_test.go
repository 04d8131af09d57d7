package inquiry

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		resp := &Response{
			Account:  Account{AccountNumber: "000000001", Status: AccountStatusDormant},
			Customer: &Customer{CIF: "CIF1"},
		}

		event := NewEvent("web", "*****0001", "corr-1", resp, nil, 1500*time.Millisecond)

		_, err := uuid.Parse(event.EventID)
		require.NoError(t, err)
		assert.Equal(t, "web", event.Source)
		assert.Equal(t, "*****0001", event.AccountMasked)
		assert.Equal(t, OutcomeSuccess, event.Outcome)
		assert.Equal(t, "DORMANT", event.AccountStatus)
		assert.True(t, event.HasCustomer)
		assert.Empty(t, event.ResponseCode)
		assert.Equal(t, "corr-1", event.CorrelationID)
		assert.Equal(t, int64(1500), event.LatencyMs)
		assert.False(t, event.OccurredAt.IsZero())
	})

	t.Run("Failure", func(t *testing.T) {
		event := NewEvent("cli", "*****9999", "", nil, &APIError{ResponseCode: "404", ResponseMessage: "Account not found"}, 0)

		assert.Equal(t, OutcomeFailure, event.Outcome)
		assert.Equal(t, "404", event.ResponseCode)
		assert.Equal(t, "Account not found", event.ResponseMessage)
		assert.Empty(t, event.AccountStatus)
		assert.False(t, event.HasCustomer)
	})

	t.Run("PlainErrorBecomesClientError", func(t *testing.T) {
		event := NewEvent("cli", "", "", nil, errors.New("boom"), 0)
		assert.Equal(t, CodeClient, event.ResponseCode)
	})

	t.Run("EventIDsAreUnique", func(t *testing.T) {
		a := NewEvent("web", "", "", nil, nil, 0)
		b := NewEvent("web", "", "", nil, nil, 0)
		assert.NotEqual(t, a.EventID, b.EventID)
	})
}
