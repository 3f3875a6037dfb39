package bench

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrEmptyReport is returned when a heap report contains no data rows.
// An empty table means the profiling run produced no snapshots, which
// is never a legitimate zero.
var ErrEmptyReport = errors.New("heap report contains no data rows")

// massifRowPattern identifies the snapshot rows of an ms_print table
// structurally: a leading snapshot index followed by a numeric column.
// Header, separator and "Total" label lines never match, so summing the
// matched rows cannot double count.
var massifRowPattern = regexp.MustCompile(`^\s*\d+\s+[\d,]+`)

// massifColumns is the column count of a snapshot row:
// n, time(i), total(B), useful-heap(B), extra-heap(B), stacks(B).
const massifColumns = 6

// totalBytesColumn is the index of the total(B) column.
const totalBytesColumn = 2

// ParseMassifReport sums the total(B) column across every snapshot row
// of an ms_print report and returns the aggregate byte count. Thousands
// separators are stripped before conversion.
func ParseMassifReport(report string) (int64, error) {
	var total int64
	rows := 0

	for _, line := range strings.Split(report, "\n") {
		if !massifRowPattern.MatchString(line) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < massifColumns {
			continue
		}

		value, err := strconv.ParseInt(strings.ReplaceAll(fields[totalBytesColumn], ",", ""), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse total(B) in row %q: %w", strings.TrimSpace(line), err)
		}

		total += value
		rows++
	}

	if rows == 0 {
		return 0, ErrEmptyReport
	}

	return total, nil
}

// BytesToGigabytes converts a byte count to gigabytes using the decimal
// divisor 10^9. Full float64 precision is kept; rounding happens only
// at display formatting.
func BytesToGigabytes(bytes int64) float64 {
	return float64(bytes) / 1e9
}
