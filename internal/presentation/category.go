// Package presentation derives display values from inquiry payloads.
// Every function here is pure and total: unknown inputs map to a fallback, never to an error.
package presentation

import "github.com/cloud-inquiry-balance-web/internal/domain/inquiry"

// Category is the visual variant a badge is rendered with
type Category string

const (
	CategorySuccess     Category = "success"
	CategorySecondary   Category = "secondary"
	CategoryWarning     Category = "warning"
	CategoryDestructive Category = "destructive"
	CategoryDefault     Category = "default"
)

var statusCategories = map[inquiry.AccountStatus]Category{
	inquiry.AccountStatusActive:   CategorySuccess,
	inquiry.AccountStatusInactive: CategorySecondary,
	inquiry.AccountStatusDormant:  CategoryWarning,
	inquiry.AccountStatusBlocked:  CategoryDestructive,
}

var kycCategories = map[inquiry.KYCStatus]Category{
	inquiry.KYCStatusVerified: CategorySuccess,
	inquiry.KYCStatusPending:  CategoryWarning,
	inquiry.KYCStatusExpired:  CategoryDestructive,
}

// StatusCategory maps an account status to its badge category
func StatusCategory(status string) Category {
	if c, ok := statusCategories[inquiry.AccountStatus(status)]; ok {
		return c
	}
	return CategoryDefault
}

// KYCCategory maps a KYC status to its badge category
func KYCCategory(status string) Category {
	if c, ok := kycCategories[inquiry.KYCStatus(status)]; ok {
		return c
	}
	return CategoryDefault
}

// RiskCategory maps a risk rating to its badge category.
// Anything that is not LOW or MEDIUM is shown as high risk.
func RiskCategory(rating string) Category {
	switch inquiry.RiskRating(rating) {
	case inquiry.RiskRatingLow:
		return CategorySuccess
	case inquiry.RiskRatingMedium:
		return CategoryWarning
	default:
		return CategoryDestructive
	}
}
