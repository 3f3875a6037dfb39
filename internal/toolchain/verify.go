// Package toolchain checks the zkLLVM build artifacts the benchmark
// targets depend on.
package toolchain

import (
	"fmt"
	"os"
	"strings"

	"github.com/btc-fan/zkbench/internal/config"
)

// MissingArtifactsError lists required build artifacts that were not
// found on disk.
type MissingArtifactsError struct {
	Paths []string
}

func (e *MissingArtifactsError) Error() string {
	return fmt.Sprintf("missing required build artifacts: %s", strings.Join(e.Paths, ", "))
}

// VerifyBuild checks that the compiled circuit IR, circuit, assignment
// table and input file all exist under the template tree. The failure
// lists every missing artifact so the operator can fix the build in one
// pass.
func VerifyBuild(cfg *config.Config) error {
	required := []string{
		cfg.CircuitIRPath(),
		cfg.CircuitPath(),
		cfg.AssignmentPath(),
		cfg.InputPath(),
	}

	var missing []string
	for _, path := range required {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		return &MissingArtifactsError{Paths: missing}
	}

	return nil
}
