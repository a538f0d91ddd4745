package run_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomberos-cl/runkit/pkg/run"
)

func TestComputeCheckDigit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		body     string
		expected string
	}{
		{"12345678", "5"},
		{"76543210", "3"},
		{"11111111", "1"},
		{"22222222", "2"},
		{"7654321", "6"},
		{"1000000", "9"},
		{"10000000", "8"},
		{"12345670", "K"}, // result 10
		{"12345675", "0"}, // result 11
		{"6", "K"},
		{"0", "0"},
		{"00000000", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			t.Parallel()
			got, err := run.ComputeCheckDigit(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestComputeCheckDigit_InvalidBody(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", "12a4", "1234567K", "12.345", " 123"} {
		_, err := run.ComputeCheckDigit(body)
		assert.ErrorIs(t, err, run.ErrInvalidBody, "body %q", body)
	}
}

func TestComputeCheckDigit_LeadingZerosDoNotMatter(t *testing.T) {
	t.Parallel()

	a, err := run.ComputeCheckDigit("12345678")
	require.NoError(t, err)
	b, err := run.ComputeCheckDigit("00012345678")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
