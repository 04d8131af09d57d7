// Package publishing decorates an inquiry.Inquirer so every finished inquiry emits an outcome event.
package publishing

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/cloud-inquiry-balance-web/internal/platform/correlation"
	"github.com/cloud-inquiry-balance-web/internal/platform/messaging/producers"
)

// Inquirer forwards calls to next and publishes the outcome of each balance inquiry.
// A failed publish is logged and never alters the inquiry result.
type Inquirer struct {
	next      inquiry.Inquirer
	publisher producers.EventPublisher
	source    string
	logger    *slog.Logger
}

var _ inquiry.Inquirer = (*Inquirer)(nil)

// New wraps next. source names the front that issued the inquiry, e.g. "web" or "cli".
func New(next inquiry.Inquirer, publisher producers.EventPublisher, source string, logger *slog.Logger) *Inquirer {
	return &Inquirer{
		next:      next,
		publisher: publisher,
		source:    source,
		logger:    logger,
	}
}

func (i *Inquirer) InquiryBalance(ctx context.Context, accountNumber string) (*inquiry.Response, error) {
	start := time.Now()
	resp, err := i.next.InquiryBalance(ctx, accountNumber)

	event := inquiry.NewEvent(
		i.source,
		inquiry.MaskAccountNumber(accountNumber),
		correlation.FromContext(ctx),
		resp,
		err,
		time.Since(start),
	)

	// the request context may already be cancelled; the event still describes a real outcome
	if pubErr := i.publisher.PublishInquiryEvent(context.WithoutCancel(ctx), event); pubErr != nil {
		i.logger.Warn("Failed to publish inquiry event", "event_id", event.EventID, "error", pubErr)
	}

	return resp, err
}

func (i *Inquirer) HealthCheck(ctx context.Context) (inquiry.HealthStatus, error) {
	return i.next.HealthCheck(ctx)
}
