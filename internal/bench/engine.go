package bench

import (
	"context"
	"fmt"

	"github.com/kballard/go-shellquote"
	"github.com/sirupsen/logrus"

	"github.com/btc-fan/zkbench/internal/config"
)

// Massif output file names, written into the configured massif
// directory. Per-target names keep re-runs from clobbering each other's
// reports.
const (
	assignerMassifFile = "assigner_memory_bench"
	proofMassifFile    = "proof_memory_bench"
)

// Engine orchestrates the external profiling commands and accumulates
// their parsed metrics into a session State. All operations are
// synchronous and sequential; the four measurements are independent and
// may run in any order.
type Engine struct {
	cfg    *config.Config
	tc     *config.Toolchain
	runner Runner
	state  *State
	log    logrus.FieldLogger
}

// NewEngine creates an engine with an empty state. One engine spans one
// benchmark session.
func NewEngine(cfg *config.Config, tc *config.Toolchain, runner Runner, log logrus.FieldLogger) *Engine {
	return &Engine{
		cfg:    cfg,
		tc:     tc,
		runner: runner,
		state:  NewState(),
		log:    log.WithField("component", "engine"),
	}
}

// State exposes the session's slot state for inspection.
func (e *Engine) State() *State {
	return e.state
}

// MeasureAssignerMemory profiles the assigner's heap under massif and
// records the aggregate allocation.
func (e *Engine) MeasureAssignerMemory(ctx context.Context) error {
	return e.measureMemory(ctx, AssignerMemory, assignerMassifFile, e.tc.Assigner, e.assignerArgs())
}

// MeasureProofMemory profiles the proof generator's heap under massif
// and records the aggregate allocation.
func (e *Engine) MeasureProofMemory(ctx context.Context) error {
	return e.measureMemory(ctx, ProofMemory, proofMassifFile, e.tc.ProofGenerator, e.proofArgs())
}

// MeasureAssignerTime times an assigner run and records the elapsed
// wall-clock seconds.
func (e *Engine) MeasureAssignerTime(ctx context.Context) error {
	return e.measureTime(ctx, AssignerTime, e.tc.Assigner, e.assignerArgs())
}

// MeasureProofTime times a proof generator run and records the elapsed
// wall-clock seconds.
func (e *Engine) MeasureProofTime(ctx context.Context) error {
	return e.measureTime(ctx, ProofTime, e.tc.ProofGenerator, e.proofArgs())
}

// Results renders the collected measurements, failing with
// *IncompleteResultsError while any slot is still empty.
func (e *Engine) Results() (string, error) {
	return RenderResults(e.state)
}

func (e *Engine) assignerArgs() []string {
	return []string{
		"-b", e.cfg.CircuitIRPath(),
		"-p", e.cfg.InputPath(),
		"-c", e.cfg.CircuitPath(),
		"-t", e.cfg.AssignmentPath(),
		"-e", e.cfg.Curve,
	}
}

func (e *Engine) proofArgs() []string {
	return []string{
		"--circuit", e.cfg.CircuitPath(),
		"--assignment", e.cfg.AssignmentPath(),
		"--proof", e.cfg.ProofPath(),
	}
}

func (e *Engine) measureMemory(ctx context.Context, slot Slot, reportFile, target string, args []string) error {
	log := e.log.WithField("slot", slot.String())

	valgrindArgs := append([]string{
		"--tool=massif",
		"--massif-out-file=" + reportFile,
		target,
	}, args...)

	log.Debug("running heap profiler")
	if _, err := e.runner.Run(ctx, e.cfg.MassifDir, e.tc.Valgrind, valgrindArgs...); err != nil {
		return fmt.Errorf("failed to profile %s heap: %w", target, err)
	}

	report, err := e.runner.Run(ctx, e.cfg.MassifDir, e.tc.MsPrint, reportFile)
	if err != nil {
		return fmt.Errorf("failed to format massif report %s: %w", reportFile, err)
	}

	totalBytes, err := ParseMassifReport(report)
	if err != nil {
		return fmt.Errorf("failed to parse massif report %s: %w", reportFile, err)
	}

	e.record(slot, Measurement{Value: BytesToGigabytes(totalBytes), Unit: Gigabytes})
	log.WithField("total_bytes", totalBytes).Info("heap allocation measured")

	return nil
}

func (e *Engine) measureTime(ctx context.Context, slot Slot, target string, args []string) error {
	log := e.log.WithField("slot", slot.String())

	// The time builtin reports on the shell's stderr, which Run folds
	// into the captured output.
	script := "time " + shellquote.Join(append([]string{target}, args...)...)

	log.Debug("running timed execution")
	output, err := e.runner.Run(ctx, e.cfg.MassifDir, e.tc.TimeShell, "-c", script)
	if err != nil {
		return fmt.Errorf("failed to time %s: %w", target, err)
	}

	seconds, err := ParseRealTime(output)
	if err != nil {
		return fmt.Errorf("failed to parse %s timing output: %w", target, err)
	}

	e.record(slot, Measurement{Value: seconds, Unit: Seconds})
	log.WithField("seconds", seconds).Info("execution time measured")

	return nil
}

func (e *Engine) record(slot Slot, m Measurement) {
	if _, ok := e.state.Get(slot); ok {
		e.log.WithField("slot", slot.String()).Debug("overwriting previous measurement")
	}

	e.state.Record(slot, m)
}
