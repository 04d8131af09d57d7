package presentation

import (
	"strings"

	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/go-playground/locales/id"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a payload carries no currency code
const DefaultCurrency = "IDR"

// DatePlaceholder is shown for absent dates
const DatePlaceholder = "-"

// symbols as rendered by the id-ID locale; other codes go through the accounting locale table
var idSymbols = map[string]string{
	"IDR": "Rp",
	"USD": "US$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "JP¥",
	"AUD": "AU$",
	"SGD": "SGD",
}

var indonesian = id.New()

// FormatCurrency renders amount with Indonesian grouping and exactly two fraction digits,
// e.g. "Rp 1.500.000,00". Unknown codes are shown as their own symbol.
func FormatCurrency(amount decimal.Decimal, currencyCode string) string {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if code == "" {
		code = DefaultCurrency
	}

	ac := accounting.Accounting{
		Symbol:         currencySymbol(code),
		Precision:      2,
		Thousand:       ".",
		Decimal:        ",",
		Format:         "%s %v",
		FormatNegative: "-%s %v",
		FormatZero:     "%s %v",
	}
	return ac.FormatMoneyDecimal(amount)
}

func currencySymbol(code string) string {
	if s, ok := idSymbols[code]; ok {
		return s
	}
	if lc, ok := accounting.LocaleInfo[code]; ok && lc.ComSymbol != "" {
		return lc.ComSymbol
	}
	return code
}

// FormatDate renders a long Indonesian date such as "15 Maret 2024", or "-" when absent
func FormatDate(d *inquiry.Date) string {
	if d == nil || d.IsZero() {
		return DatePlaceholder
	}
	return indonesian.FmtDateLong(d.Time)
}

// MaskAccountNumber keeps the last four characters and replaces the rest with '*'.
// Inputs shorter than four characters are returned unchanged.
func MaskAccountNumber(accountNumber string) string {
	return inquiry.MaskAccountNumber(accountNumber)
}
