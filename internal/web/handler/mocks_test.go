package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) Inquire(ctx context.Context, accountNumber string) (*inquiry.Response, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inquiry.Response), args.Error(1)
}

func (m *MockInquiryService) Health(ctx context.Context) (inquiry.HealthStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(inquiry.HealthStatus), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func sampleResponse(withCustomer bool) *inquiry.Response {
	resp := &inquiry.Response{
		Account: inquiry.Account{
			AccountNumber:       "000000001",
			AccountName:         "Budi Santoso",
			Status:              inquiry.AccountStatusActive,
			AvailableBalance:    decimal.RequireFromString("1500000"),
			HoldBalance:         decimal.RequireFromString("250000"),
			Currency:            "IDR",
			AccountType:         "SAVINGS",
			BranchCode:          "001",
			OpenDate:            inquiry.NewDate(2020, 1, 15),
			LastTransactionDate: inquiry.NewDate(2024, 3, 15),
		},
	}
	if withCustomer {
		resp.Customer = &inquiry.Customer{
			CIF:             "CIF000001",
			FullName:        "Budi Santoso",
			CustomerType:    "INDIVIDUAL",
			KYCStatus:       inquiry.KYCStatusVerified,
			Email:           "budi@example.com",
			Mobile:          "+6281234567890",
			Address:         inquiry.Address{Street: "Jl. Sudirman 1", City: "Jakarta", Province: "DKI Jakarta", PostalCode: "10220", Country: "Indonesia"},
			CustomerSegment: "RETAIL",
			RiskRating:      inquiry.RiskRatingLow,
		}
	}
	return resp
}
