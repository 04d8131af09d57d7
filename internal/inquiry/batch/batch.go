// Package batch runs independent balance inquiries on a bounded worker pool.
package batch

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/cloud-inquiry-balance-web/internal/config"
	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/panjf2000/ants/v2"
)

// Result is the outcome of one inquiry in a batch.
// Exactly one of Response and Err is set.
type Result struct {
	Account  string
	Response *inquiry.Response
	Err      *inquiry.APIError
}

// Service fans inquiries out to a fixed-size pool
type Service struct {
	inquirer inquiry.Inquirer
	pool     *ants.Pool
	logger   *slog.Logger
}

// NewService creates a batch service with cfg.Size workers
func NewService(inquirer inquiry.Inquirer, cfg config.WorkerPoolConfig, logger *slog.Logger) (*Service, error) {
	pool, err := ants.NewPool(cfg.Size)
	if err != nil {
		return nil, err
	}

	return &Service{
		inquirer: inquirer,
		pool:     pool,
		logger:   logger,
	}, nil
}

// InquireAll runs one inquiry per account and returns results in input order.
// Each inquiry is independent; a failure never stops the others.
func (s *Service) InquireAll(ctx context.Context, accounts []string) []Result {
	results := make([]Result, len(accounts))
	var wg sync.WaitGroup

	s.logger.Info("Submitting batch to worker pool", "count", len(accounts), "capacity", s.pool.Cap())

	for i, raw := range accounts {
		account := strings.TrimSpace(raw)
		results[i].Account = account

		if account == "" {
			results[i].Err = inquiry.NewValidationError(inquiry.MessageAccountRequired)
			continue
		}

		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			results[i] = s.inquire(ctx, account)
		})
		if err != nil {
			wg.Done()
			s.logger.Error("Failed to submit inquiry to worker pool",
				"account", inquiry.MaskAccountNumber(account),
				"error", err,
			)
			results[i].Err = inquiry.NewClientError(err)
		}
	}

	wg.Wait()
	return results
}

func (s *Service) inquire(ctx context.Context, account string) Result {
	resp, err := s.inquirer.InquiryBalance(ctx, account)
	if err != nil {
		return Result{Account: account, Err: inquiry.AsAPIError(err)}
	}
	return Result{Account: account, Response: resp}
}

// Shutdown releases the worker pool
func (s *Service) Shutdown() {
	s.logger.Info("Shutting down worker pool", "running_workers", s.pool.Running())
	s.pool.Release()
}
