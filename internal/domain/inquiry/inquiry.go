// Package inquiry defines the balance inquiry contract shared by the client and the renderers.
// Values are request-scoped: they are decoded from one backend response and discarded with it.
package inquiry

import (
	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle status of an account
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
	AccountStatusDormant  AccountStatus = "DORMANT"
	AccountStatusBlocked  AccountStatus = "BLOCKED"
)

// KYCStatus is the Know-Your-Customer verification state of a customer profile
type KYCStatus string

const (
	KYCStatusVerified KYCStatus = "VERIFIED"
	KYCStatusPending  KYCStatus = "PENDING"
	KYCStatusExpired  KYCStatus = "EXPIRED"
)

// RiskRating is the customer risk classification
type RiskRating string

const (
	RiskRatingLow    RiskRating = "LOW"
	RiskRatingMedium RiskRating = "MEDIUM"
	RiskRatingHigh   RiskRating = "HIGH"
)

// Request is the body sent to POST /api/v1/inquiry
type Request struct {
	Account string `json:"account"`
}

// Response is the success payload of POST /api/v1/inquiry.
// Customer is nil when the account exists but no profile could be retrieved.
type Response struct {
	Account  Account   `json:"account"`
	Customer *Customer `json:"customer"`
}

// Account holds balance and lifecycle data of one account
type Account struct {
	AccountNumber       string          `json:"account_number"`
	AccountName         string          `json:"account_name"`
	Status              AccountStatus   `json:"status"`
	AvailableBalance    decimal.Decimal `json:"available_balance"`
	HoldBalance         decimal.Decimal `json:"hold_balance"` // zero means no hold
	Currency            string          `json:"currency"`
	AccountType         string          `json:"account_type"`
	BranchCode          string          `json:"branch_code"`
	OpenDate            Date            `json:"open_date"`
	LastTransactionDate Date            `json:"last_transaction_date"`
}

// HasHold reports whether part of the balance is reserved
func (a Account) HasHold() bool {
	return a.HoldBalance.IsPositive()
}

// Customer is the profile attached to an account, identified by its CIF
type Customer struct {
	CIF             string     `json:"cif"`
	FullName        string     `json:"full_name"`
	CustomerType    string     `json:"customer_type"`
	KYCStatus       KYCStatus  `json:"kyc_status"`
	Email           string     `json:"email"`
	Mobile          string     `json:"mobile"`
	Phone           string     `json:"phone,omitempty"`
	Address         Address    `json:"address"`
	CustomerSegment string     `json:"customer_segment"`
	RiskRating      RiskRating `json:"risk_rating"`
	DateOfBirth     *Date      `json:"date_of_birth,omitempty"`
}

// Address is the postal address of a customer
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Validate checks the structural contract of a decoded success payload.
// Enum values and balance totals are left to the server.
func (r *Response) Validate() error {
	if r.Account.AccountNumber == "" {
		return ErrMalformedResponse{Reason: "account.account_number is missing"}
	}
	if r.Account.HoldBalance.IsNegative() {
		return ErrMalformedResponse{Reason: "account.hold_balance must not be negative"}
	}
	return nil
}

// ErrMalformedResponse indicates a 2xx payload that does not match the inquiry contract
type ErrMalformedResponse struct {
	Reason string
}

func (e ErrMalformedResponse) Error() string {
	return "malformed inquiry response: " + e.Reason
}
