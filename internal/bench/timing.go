package bench

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformedTiming is returned when command output lacks a parseable
// "real" duration line.
var ErrMalformedTiming = errors.New("timing output has no parseable real line")

// realLinePattern matches the shell time builtin's elapsed line, e.g.
// "real\t0m0.106s". The user and sys lines are not consumed; they stay
// in the raw output for human inspection.
var realLinePattern = regexp.MustCompile(`(?mi)^\s*real\s+(\d+)m(\d+(?:\.\d+)?)s\s*$`)

// ParseRealTime extracts the wall-clock duration from a real/user/sys
// timing block and returns it in seconds.
func ParseRealTime(output string) (float64, error) {
	match := realLinePattern.FindStringSubmatch(output)
	if match == nil {
		return 0, fmt.Errorf("%w: expected \"real <minutes>m<seconds>s\"", ErrMalformedTiming)
	}

	minutes, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: minutes %q: %v", ErrMalformedTiming, match[1], err)
	}

	seconds, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: seconds %q: %v", ErrMalformedTiming, match[2], err)
	}

	return float64(minutes)*60 + seconds, nil
}
