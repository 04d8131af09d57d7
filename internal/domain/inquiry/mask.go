package inquiry

import "strings"

// MaskAccountNumber keeps the last four characters and replaces the rest with '*'.
// Inputs shorter than four characters are returned unchanged.
func MaskAccountNumber(accountNumber string) string {
	runes := []rune(accountNumber)
	if len(runes) < 4 {
		return accountNumber
	}
	hidden := len(runes) - 4
	return strings.Repeat("*", hidden) + string(runes[hidden:])
}
