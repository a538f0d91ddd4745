package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bomberos-cl/runkit/pkg/sanitizer"
)

func TestMaskRUN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"api format", "12345678-5", "**.***.678-5"},
		{"display format", "12.345.678-5", "**.***.678-5"},
		{"seven digit body", "7654321-6", "*.***.321-6"},
		{"check K", "12.345.670-k", "**.***.670-K"},
		{"short body stays visible", "123-6", "123-6"},
		{"malformed is fully masked", "1K23", "****"},
		{"empty", "", ""},
		{"single char", "5", "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.MaskRUN(tt.input))
		})
	}
}

func TestMaskRUN_DoesNotValidate(t *testing.T) {
	t.Parallel()

	// A wrong check digit is still masked the same way; masking is not
	// validation.
	assert.Equal(t, "**.***.678-9", sanitizer.MaskRUN("12.345.678-9"))
}
