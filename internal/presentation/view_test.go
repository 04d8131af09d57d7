package presentation

import (
	"testing"
	"time"

	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResponse() *inquiry.Response {
	dob := inquiry.NewDate(1990, time.May, 20)
	return &inquiry.Response{
		Account: inquiry.Account{
			AccountNumber:       "000000001",
			AccountName:         "Budi Santoso",
			Status:              inquiry.AccountStatusActive,
			AvailableBalance:    decimal.NewFromInt(1500000),
			HoldBalance:         decimal.NewFromInt(250000),
			Currency:            "IDR",
			AccountType:         "SAVINGS",
			BranchCode:          "JKT001",
			OpenDate:            inquiry.NewDate(2019, time.July, 1),
			LastTransactionDate: inquiry.NewDate(2024, time.March, 15),
		},
		Customer: &inquiry.Customer{
			CIF:          "CIF0001",
			FullName:     "Budi Santoso",
			CustomerType: "INDIVIDUAL",
			KYCStatus:    inquiry.KYCStatusPending,
			Email:        "budi@example.com",
			Mobile:       "+628123456789",
			Phone:        "+62215550000",
			Address: inquiry.Address{
				Street:     "Jl. Sudirman 1",
				City:       "Jakarta",
				Province:   "DKI Jakarta",
				PostalCode: "10210",
				Country:    "Indonesia",
			},
			CustomerSegment: "PRIORITY",
			RiskRating:      inquiry.RiskRatingHigh,
			DateOfBirth:     &dob,
		},
	}
}

func TestBuildView(t *testing.T) {
	t.Run("FullPayload", func(t *testing.T) {
		view := BuildView(sampleResponse(), DefaultCurrency)
		require.NotNil(t, view)

		assert.Equal(t, "*****0001", view.Account.MaskedNumber)
		assert.Equal(t, CategorySuccess, view.Account.StatusCategory)
		assert.Equal(t, "Rp 1.500.000,00", view.Account.AvailableBalance)
		assert.True(t, view.Account.HasHold)
		assert.Equal(t, "Rp 250.000,00", view.Account.HoldBalance)
		assert.Contains(t, view.Account.LastTransactionDate, "Maret")

		require.True(t, view.HasCustomer)
		require.NotNil(t, view.Customer)
		assert.Equal(t, CategoryWarning, view.Customer.KYCCategory)
		assert.Equal(t, CategoryDestructive, view.Customer.RiskCategory)
		assert.Equal(t, "Jakarta, DKI Jakarta", view.Customer.CityProvince)
		assert.True(t, view.Customer.ShowPhone)
		assert.True(t, view.Customer.HasDateOfBirth)
		assert.Contains(t, view.Customer.DateOfBirth, "1990")
	})

	t.Run("NullCustomerSelectsAbsentBranch", func(t *testing.T) {
		resp := sampleResponse()
		resp.Customer = nil

		view := BuildView(resp, DefaultCurrency)
		require.NotNil(t, view)
		assert.Equal(t, CategorySuccess, view.Account.StatusCategory)
		assert.False(t, view.HasCustomer)
		assert.Nil(t, view.Customer)
	})

	t.Run("NoHoldAndOptionalFieldsAbsent", func(t *testing.T) {
		resp := sampleResponse()
		resp.Account.HoldBalance = decimal.Zero
		resp.Account.LastTransactionDate = inquiry.Date{}
		resp.Customer.Phone = resp.Customer.Mobile
		resp.Customer.DateOfBirth = nil

		view := BuildView(resp, DefaultCurrency)
		assert.False(t, view.Account.HasHold)
		assert.Empty(t, view.Account.HoldBalance)
		assert.Equal(t, "-", view.Account.LastTransactionDate)
		assert.False(t, view.Customer.ShowPhone, "phone equal to mobile is not repeated")
		assert.False(t, view.Customer.HasDateOfBirth)
	})

	t.Run("MissingCurrencyUsesDefault", func(t *testing.T) {
		resp := sampleResponse()
		resp.Account.Currency = ""

		view := BuildView(resp, "USD")
		assert.Equal(t, "USD", view.Account.Currency)
		assert.Equal(t, "US$ 1.500.000,00", view.Account.AvailableBalance)
	})

	t.Run("NilResponse", func(t *testing.T) {
		assert.Nil(t, BuildView(nil, DefaultCurrency))
	})
}

func TestBuildErrorView(t *testing.T) {
	t.Run("UsesServerMessage", func(t *testing.T) {
		view := BuildErrorView(&inquiry.APIError{ResponseCode: "404", ResponseMessage: "Account not found"})
		assert.Equal(t, "Error 404", view.Title)
		assert.Equal(t, "Account not found", view.Message)
	})

	t.Run("FallsBackWhenMessageEmpty", func(t *testing.T) {
		view := BuildErrorView(&inquiry.APIError{ResponseCode: "500"})
		assert.Equal(t, FallbackErrorMessage, view.Message)
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, BuildErrorView(nil))
	})
}
