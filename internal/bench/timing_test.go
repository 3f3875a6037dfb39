package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRealTime(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		expected    float64
		expectError bool
	}{
		{
			name:     "full real user sys block",
			output:   "real\t0m0.106s\nuser\t0m0.106s\nsys\t0m0.000s",
			expected: 0.106,
		},
		{
			name:     "minutes are converted to seconds",
			output:   "real\t2m3.500s\nuser\t1m59.000s\nsys\t0m0.120s",
			expected: 123.5,
		},
		{
			name:     "tolerates surrounding diagnostics",
			output:   "circuit loaded\nassignment table filled\n\nreal\t1m5.250s\nuser\t1m4.000s\nsys\t0m0.900s\n",
			expected: 65.25,
		},
		{
			name:     "case and whitespace tolerant",
			output:   "  REAL   1m0.000s  ",
			expected: 60,
		},
		{
			name:     "integer seconds",
			output:   "real\t0m5s",
			expected: 5,
		},
		{
			name:        "missing real line",
			output:      "user\t0m0.106s\nsys\t0m0.000s",
			expectError: true,
		},
		{
			name:        "malformed real line",
			output:      "real\tquite fast",
			expectError: true,
		},
		{
			name:        "empty output",
			output:      "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seconds, err := ParseRealTime(tt.output)

			if tt.expectError {
				require.ErrorIs(t, err, ErrMalformedTiming)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.expected, seconds, 1e-9)
		})
	}
}
