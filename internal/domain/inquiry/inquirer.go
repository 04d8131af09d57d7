package inquiry

import "context"

// HealthStatus is the backend health payload; its shape is not constrained
type HealthStatus map[string]any

// Inquirer performs balance inquiries against the backend.
// Every returned error is an *APIError.
type Inquirer interface {
	// InquiryBalance sends one inquiry for accountNumber. No validation is done on the input.
	InquiryBalance(ctx context.Context, accountNumber string) (*Response, error)

	// HealthCheck queries the backend health endpoint
	HealthCheck(ctx context.Context) (HealthStatus, error)
}
