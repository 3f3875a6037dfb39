package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrToolchainExecutableEmpty is returned when a toolchain entry is
// explicitly set to an empty string.
var ErrToolchainExecutableEmpty = errors.New("toolchain executable must not be empty")

// Toolchain names the external executables the benchmark drives. The
// defaults assume everything is on PATH; a YAML file can override any
// entry, e.g. to point at a containerized valgrind wrapper.
type Toolchain struct {
	Valgrind       string `yaml:"valgrind"`
	MsPrint        string `yaml:"ms_print"`
	TimeShell      string `yaml:"time_shell"`
	Assigner       string `yaml:"assigner"`
	ProofGenerator string `yaml:"proof_generator"`
}

// DefaultToolchain returns the stock toolchain executable names.
func DefaultToolchain() *Toolchain {
	return &Toolchain{
		Valgrind:       "valgrind",
		MsPrint:        "ms_print",
		TimeShell:      "bash",
		Assigner:       "assigner",
		ProofGenerator: "proof-generator-single-threaded",
	}
}

// LoadToolchain reads the toolchain descriptor from path, falling back
// to defaults when the file does not exist. Entries absent from the file
// keep their default values.
func LoadToolchain(path string) (*Toolchain, error) {
	tc := DefaultToolchain()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return tc, nil
		}
		return nil, fmt.Errorf("failed to read toolchain file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, tc); err != nil {
		return nil, fmt.Errorf("failed to parse toolchain file %s: %w", path, err)
	}

	if err := tc.validate(); err != nil {
		return nil, fmt.Errorf("invalid toolchain file %s: %w", path, err)
	}

	return tc, nil
}

func (t *Toolchain) validate() error {
	entries := map[string]string{
		"valgrind":        t.Valgrind,
		"ms_print":        t.MsPrint,
		"time_shell":      t.TimeShell,
		"assigner":        t.Assigner,
		"proof_generator": t.ProofGenerator,
	}

	for name, value := range entries {
		if value == "" {
			return fmt.Errorf("%w: %s", ErrToolchainExecutableEmpty, name)
		}
	}

	return nil
}
