package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInquirer struct {
	mock.Mock
}

func (m *MockInquirer) InquiryBalance(ctx context.Context, accountNumber string) (*inquiry.Response, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inquiry.Response), args.Error(1)
}

func (m *MockInquirer) HealthCheck(ctx context.Context) (inquiry.HealthStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(inquiry.HealthStatus), args.Error(1)
}

func TestInquiryService_Inquire(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockInquirer := new(MockInquirer)
		svc := NewInquiryService(mockInquirer)

		resp := &inquiry.Response{Account: inquiry.Account{AccountNumber: "000000001"}}
		mockInquirer.On("InquiryBalance", mock.Anything, "000000001").Return(resp, nil).Once()

		got, err := svc.Inquire(context.Background(), " 000000001\t")

		require.NoError(t, err)
		assert.Equal(t, resp, got)
		mockInquirer.AssertExpectations(t)
	})

	t.Run("BlankInputIsRejected", func(t *testing.T) {
		mockInquirer := new(MockInquirer)
		svc := NewInquiryService(mockInquirer)

		got, err := svc.Inquire(context.Background(), "   ")

		assert.Nil(t, got)
		var apiErr *inquiry.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "400", apiErr.ResponseCode)
		assert.Equal(t, "Account number required", apiErr.ResponseMessage)
		mockInquirer.AssertNotCalled(t, "InquiryBalance", mock.Anything, mock.Anything)
	})

	t.Run("ServerErrorIsPassedThrough", func(t *testing.T) {
		mockInquirer := new(MockInquirer)
		svc := NewInquiryService(mockInquirer)

		apiErr := &inquiry.APIError{ResponseCode: "404", ResponseMessage: "Account not found"}
		mockInquirer.On("InquiryBalance", mock.Anything, "999999999").Return(nil, apiErr).Once()

		_, err := svc.Inquire(context.Background(), "999999999")
		assert.Same(t, apiErr, err)
	})

	t.Run("PlainErrorIsNormalized", func(t *testing.T) {
		mockInquirer := new(MockInquirer)
		svc := NewInquiryService(mockInquirer)
		mockInquirer.On("InquiryBalance", mock.Anything, "000000001").Return(nil, errors.New("boom")).Once()

		_, err := svc.Inquire(context.Background(), "000000001")

		var apiErr *inquiry.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "500", apiErr.ResponseCode)
	})
}

func TestInquiryService_Health(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockInquirer := new(MockInquirer)
		svc := NewInquiryService(mockInquirer)
		mockInquirer.On("HealthCheck", mock.Anything).Return(inquiry.HealthStatus{"status": "UP"}, nil).Once()

		status, err := svc.Health(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "UP", status["status"])
	})

	t.Run("Failure", func(t *testing.T) {
		mockInquirer := new(MockInquirer)
		svc := NewInquiryService(mockInquirer)
		mockInquirer.On("HealthCheck", mock.Anything).Return(nil, inquiry.NewUnavailableError()).Once()

		_, err := svc.Health(context.Background())

		var apiErr *inquiry.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, inquiry.CodeUnavailable, apiErr.ResponseCode)
	})
}
