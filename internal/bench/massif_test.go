package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMassifReport = `--------------------------------------------------------------------------------
  n        time(i)         total(B)   useful-heap(B) extra-heap(B)    stacks(B)
--------------------------------------------------------------------------------
  0              0                0                0             0            0
  1         43,709           75,344           73,235         2,109            0
  2         93,218          152,896          148,313         4,583            0
 67      1,234,567          153,464          150,000         3,464            0
--------------------------------------------------------------------------------
`

func TestParseMassifReport(t *testing.T) {
	tests := []struct {
		name          string
		report        string
		expectedTotal int64
		expectedErr   error
	}{
		{
			name:          "sums total(B) across all data rows",
			report:        sampleMassifReport,
			expectedTotal: 381704,
		},
		{
			name: "single row",
			report: `  n        time(i)         total(B)   useful-heap(B) extra-heap(B)    stacks(B)
 67      1,234,567          153,464          150,000         3,464            0
`,
			expectedTotal: 153464,
		},
		{
			name: "pre-existing total label row is not double counted",
			report: sampleMassifReport +
				"Total     1,371,494       35,162,448          371,548        10,156            0\n",
			expectedTotal: 381704,
		},
		{
			name: "header only",
			report: `--------------------------------------------------------------------------------
  n        time(i)         total(B)   useful-heap(B) extra-heap(B)    stacks(B)
--------------------------------------------------------------------------------
`,
			expectedErr: ErrEmptyReport,
		},
		{
			name:        "empty input",
			report:      "",
			expectedErr: ErrEmptyReport,
		},
		{
			name: "narrow rows are skipped",
			report: `  1   2
  3   4   5
`,
			expectedErr: ErrEmptyReport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := ParseMassifReport(tt.report)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, total)
		})
	}
}

func TestParseMassifReportDeterministic(t *testing.T) {
	first, err := ParseMassifReport(sampleMassifReport)
	require.NoError(t, err)

	second, err := ParseMassifReport(sampleMassifReport)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBytesToGigabytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected float64
	}{
		{name: "zero", bytes: 0, expected: 0},
		{name: "decimal divisor", bytes: 35162448, expected: 0.035162448},
		{name: "one gigabyte", bytes: 1_000_000_000, expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, BytesToGigabytes(tt.bytes), 1e-9)
		})
	}
}
