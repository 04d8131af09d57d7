package service

import (
	"context"
	"strings"

	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
)

// InquiryService defines the operations behind the inquiry screen and API
type InquiryService interface {
	// Inquire trims accountNumber and runs one inquiry.
	// Returns a validation APIError without calling the backend when the input is blank.
	Inquire(ctx context.Context, accountNumber string) (*inquiry.Response, error)

	// Health returns the backend health payload
	Health(ctx context.Context) (inquiry.HealthStatus, error)
}

// InquiryServiceImpl implements the InquiryService interface
type InquiryServiceImpl struct {
	inquirer inquiry.Inquirer
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(inquirer inquiry.Inquirer) InquiryService {
	return &InquiryServiceImpl{
		inquirer: inquirer,
	}
}

func (s *InquiryServiceImpl) Inquire(ctx context.Context, accountNumber string) (*inquiry.Response, error) {
	account := strings.TrimSpace(accountNumber)
	if account == "" {
		return nil, inquiry.NewValidationError(inquiry.MessageAccountRequired)
	}

	resp, err := s.inquirer.InquiryBalance(ctx, account)
	if err != nil {
		return nil, inquiry.AsAPIError(err)
	}
	return resp, nil
}

func (s *InquiryServiceImpl) Health(ctx context.Context) (inquiry.HealthStatus, error) {
	status, err := s.inquirer.HealthCheck(ctx)
	if err != nil {
		return nil, inquiry.AsAPIError(err)
	}
	return status, nil
}
