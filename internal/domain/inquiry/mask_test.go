package inquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskAccountNumber(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"000000001", "*****0001"},
		{"1234", "1234"},
		{"123", "123"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskAccountNumber(tc.input))
		})
	}
}
