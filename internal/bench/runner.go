// Package bench implements the benchmark orchestration and metrics
// extraction engine: it invokes the external profiling commands, parses
// their textual output into numbers and accumulates the four result
// slots of a benchmark session.
package bench

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// ExecutionError is returned when an external command cannot be located
// or exits non-zero. Output carries whatever the command wrote before
// failing so the caller can still log or inspect it; the profiled
// binaries legitimately write diagnostics to stderr.
type ExecutionError struct {
	Command string
	Output  string
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Runner executes an external command to completion and returns its
// combined stdout and stderr.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

type execRunner struct {
	log logrus.FieldLogger
}

// NewRunner creates a Runner backed by os/exec.
func NewRunner(log logrus.FieldLogger) Runner {
	return &execRunner{
		log: log.WithField("component", "runner"),
	}
}

// Run executes name with args in dir and blocks until the process
// exits. There is deliberately no timeout and no retry: profiling runs
// finish on their own, and a failure means a misconfigured toolchain
// the operator has to see, not transient load.
func (r *execRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	r.log.WithFields(logrus.Fields{
		"command": cmd.String(),
		"dir":     dir,
	}).Debug("executing command")

	output, err := cmd.CombinedOutput()
	text := string(output)

	if err != nil {
		return text, &ExecutionError{
			Command: strings.Join(append([]string{name}, args...), " "),
			Output:  text,
			Err:     err,
		}
	}

	return text, nil
}
