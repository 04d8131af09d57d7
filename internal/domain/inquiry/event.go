package inquiry

import (
	"time"

	"github.com/google/uuid"
)

// Outcome tells whether an inquiry produced account data
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Event records the outcome of one inquiry. It never carries the full account number
// or any customer data.
type Event struct {
	EventID         string    `json:"event_id"`
	Source          string    `json:"source"`
	AccountMasked   string    `json:"account_masked"`
	Outcome         Outcome   `json:"outcome"`
	AccountStatus   string    `json:"account_status,omitempty"`
	HasCustomer     bool      `json:"has_customer"`
	ResponseCode    string    `json:"response_code,omitempty"`
	ResponseMessage string    `json:"response_message,omitempty"`
	CorrelationID   string    `json:"correlation_id,omitempty"`
	LatencyMs       int64     `json:"latency_ms"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// NewEvent builds the event for a finished inquiry. maskedAccount must already be masked.
func NewEvent(source, maskedAccount, correlationID string, resp *Response, err error, latency time.Duration) *Event {
	event := &Event{
		EventID:       uuid.NewString(),
		Source:        source,
		AccountMasked: maskedAccount,
		CorrelationID: correlationID,
		LatencyMs:     latency.Milliseconds(),
		OccurredAt:    time.Now().UTC(),
	}

	if err != nil {
		apiErr := AsAPIError(err)
		event.Outcome = OutcomeFailure
		event.ResponseCode = apiErr.ResponseCode
		event.ResponseMessage = apiErr.ResponseMessage
		return event
	}

	event.Outcome = OutcomeSuccess
	if resp != nil {
		event.AccountStatus = string(resp.Account.Status)
		event.HasCustomer = resp.Customer != nil
	}
	return event
}
