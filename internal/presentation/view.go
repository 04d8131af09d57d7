package presentation

import (
	"strings"

	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
)

// CustomerUnavailableMessage is shown when the account has no retrievable customer profile
const CustomerUnavailableMessage = "Unable to retrieve customer profile information"

// FallbackErrorMessage is shown when an error carries no message of its own
const FallbackErrorMessage = "An error occurred while fetching account data"

// InquiryView is the display-ready form of a successful inquiry
type InquiryView struct {
	Account     AccountView   `json:"account"`
	Customer    *CustomerView `json:"customer"`
	HasCustomer bool          `json:"has_customer"`
}

// AccountView holds formatted account fields
type AccountView struct {
	Number              string   `json:"number"`
	MaskedNumber        string   `json:"masked_number"`
	Name                string   `json:"name"`
	Status              string   `json:"status"`
	StatusCategory      Category `json:"status_category"`
	AvailableBalance    string   `json:"available_balance"`
	HoldBalance         string   `json:"hold_balance,omitempty"`
	HasHold             bool     `json:"has_hold"`
	Currency            string   `json:"currency"`
	AccountType         string   `json:"account_type"`
	BranchCode          string   `json:"branch_code"`
	OpenDate            string   `json:"open_date"`
	LastTransactionDate string   `json:"last_transaction_date"`
}

// CustomerView holds formatted customer fields. Optional values come with a Has/Show flag.
type CustomerView struct {
	CIF            string   `json:"cif"`
	FullName       string   `json:"full_name"`
	CustomerType   string   `json:"customer_type"`
	KYCStatus      string   `json:"kyc_status"`
	KYCCategory    Category `json:"kyc_category"`
	Email          string   `json:"email"`
	Mobile         string   `json:"mobile"`
	Phone          string   `json:"phone,omitempty"`
	ShowPhone      bool     `json:"show_phone"`
	Street         string   `json:"street"`
	CityProvince   string   `json:"city_province"`
	PostalCode     string   `json:"postal_code"`
	Country        string   `json:"country"`
	Segment        string   `json:"segment"`
	RiskRating     string   `json:"risk_rating"`
	RiskCategory   Category `json:"risk_category"`
	DateOfBirth    string   `json:"date_of_birth,omitempty"`
	HasDateOfBirth bool     `json:"has_date_of_birth"`
}

// ErrorView is the display form of an APIError
type ErrorView struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// BuildView maps a response to its display form.
// defaultCurrency is used when the account carries no currency code.
func BuildView(resp *inquiry.Response, defaultCurrency string) *InquiryView {
	if resp == nil {
		return nil
	}

	acc := resp.Account
	currency := acc.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	view := &InquiryView{
		Account: AccountView{
			Number:              acc.AccountNumber,
			MaskedNumber:        MaskAccountNumber(acc.AccountNumber),
			Name:                acc.AccountName,
			Status:              string(acc.Status),
			StatusCategory:      StatusCategory(string(acc.Status)),
			AvailableBalance:    FormatCurrency(acc.AvailableBalance, currency),
			HasHold:             acc.HasHold(),
			Currency:            currency,
			AccountType:         acc.AccountType,
			BranchCode:          acc.BranchCode,
			OpenDate:            FormatDate(&acc.OpenDate),
			LastTransactionDate: FormatDate(&acc.LastTransactionDate),
		},
	}
	if view.Account.HasHold {
		view.Account.HoldBalance = FormatCurrency(acc.HoldBalance, currency)
	}

	if resp.Customer != nil {
		view.Customer = buildCustomerView(resp.Customer)
		view.HasCustomer = true
	}

	return view
}

func buildCustomerView(c *inquiry.Customer) *CustomerView {
	cv := &CustomerView{
		CIF:          c.CIF,
		FullName:     c.FullName,
		CustomerType: c.CustomerType,
		KYCStatus:    string(c.KYCStatus),
		KYCCategory:  KYCCategory(string(c.KYCStatus)),
		Email:        c.Email,
		Mobile:       c.Mobile,
		Street:       c.Address.Street,
		CityProvince: joinNonEmpty(", ", c.Address.City, c.Address.Province),
		PostalCode:   c.Address.PostalCode,
		Country:      c.Address.Country,
		Segment:      c.CustomerSegment,
		RiskRating:   string(c.RiskRating),
		RiskCategory: RiskCategory(string(c.RiskRating)),
	}

	// phone often repeats the mobile number; only show a distinct one
	if c.Phone != "" && c.Phone != c.Mobile {
		cv.Phone = c.Phone
		cv.ShowPhone = true
	}

	if c.DateOfBirth != nil && !c.DateOfBirth.IsZero() {
		cv.DateOfBirth = FormatDate(c.DateOfBirth)
		cv.HasDateOfBirth = true
	}

	return cv
}

// BuildErrorView maps an APIError to its display form
func BuildErrorView(err *inquiry.APIError) *ErrorView {
	if err == nil {
		return nil
	}

	message := err.ResponseMessage
	if message == "" {
		message = FallbackErrorMessage
	}

	return &ErrorView{
		Code:    err.ResponseCode,
		Title:   strings.TrimSpace("Error " + err.ResponseCode),
		Message: message,
		Detail:  err.Detail,
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
