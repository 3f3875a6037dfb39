package bench

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// IncompleteResultsError reports which slots were still unpopulated
// when results were requested. The operator recovers by running the
// missing measurements.
type IncompleteResultsError struct {
	Missing []Slot
}

func (e *IncompleteResultsError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, slot := range e.Missing {
		names = append(names, slot.String())
	}

	return fmt.Sprintf("benchmark results are incomplete, missing: %s", strings.Join(names, ", "))
}

// RenderResults formats the collected measurements grouped by target.
// It fails without producing any output while a slot is empty, and
// repeated calls over an unchanged state render identical text.
func RenderResults(state *State) (string, error) {
	if missing := state.Missing(); len(missing) > 0 {
		return "", &IncompleteResultsError{Missing: missing}
	}

	snapshot := state.Snapshot()
	heading := color.New(color.FgBlue, color.Bold).SprintFunc()

	var b strings.Builder
	fmt.Fprintln(&b, heading("Benchmark Results"))
	fmt.Fprintln(&b, "=================")
	fmt.Fprintln(&b, "1. Assigner:")
	fmt.Fprintf(&b, "   Memory: %s\n", formatMeasurement(snapshot[AssignerMemory]))
	fmt.Fprintf(&b, "   Time:   %s\n", formatMeasurement(snapshot[AssignerTime]))
	fmt.Fprintln(&b, "2. Proof:")
	fmt.Fprintf(&b, "   Memory: %s\n", formatMeasurement(snapshot[ProofMemory]))
	fmt.Fprintf(&b, "   Time:   %s\n", formatMeasurement(snapshot[ProofTime]))

	return b.String(), nil
}

func formatMeasurement(m Measurement) string {
	return fmt.Sprintf("%.2f %s", m.Value, m.Unit)
}
