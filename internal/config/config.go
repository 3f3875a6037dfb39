// Package config handles configuration loading and management
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the benchmark configuration loaded from environment variables.
type Config struct {
	TemplatePath  string
	Curve         string
	MassifDir     string
	ToolchainFile string
}

// Load reads configuration from environment variables and .env file.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	templatePath, err := filepath.Abs(getEnv("ZKLLVM_TEMPLATE_PATH", "../zkllvm-template"))
	if err != nil {
		return nil, fmt.Errorf("invalid ZKLLVM_TEMPLATE_PATH: %w", err)
	}

	cfg := &Config{
		TemplatePath:  templatePath,
		Curve:         getEnv("ZKBENCH_CURVE", "pallas"),
		MassifDir:     getEnv("ZKBENCH_MASSIF_DIR", "."),
		ToolchainFile: getEnv("ZKBENCH_TOOLCHAIN", "zkbench.yaml"),
	}

	return cfg, nil
}

// BuildDir returns the template build directory.
func (c *Config) BuildDir() string {
	return filepath.Join(c.TemplatePath, "build")
}

// BuildSrcDir returns the directory holding the compiled circuit artifacts.
func (c *Config) BuildSrcDir() string {
	return filepath.Join(c.TemplatePath, "build", "src")
}

// CircuitIRPath returns the compiled circuit IR (template.ll).
func (c *Config) CircuitIRPath() string {
	return filepath.Join(c.BuildSrcDir(), "template.ll")
}

// CircuitPath returns the compiled circuit (template.crct).
func (c *Config) CircuitPath() string {
	return filepath.Join(c.BuildSrcDir(), "template.crct")
}

// AssignmentPath returns the assignment table (template.tbl).
func (c *Config) AssignmentPath() string {
	return filepath.Join(c.BuildSrcDir(), "template.tbl")
}

// InputPath returns the circuit input file.
func (c *Config) InputPath() string {
	return filepath.Join(c.TemplatePath, "src", "main-input.json")
}

// ProofPath returns where the proof generator writes its proof.
func (c *Config) ProofPath() string {
	return filepath.Join(c.BuildDir(), "proof.bin")
}

func (c *Config) String() string {
	return fmt.Sprintf(`Current Configuration:
======================
Template Path:  %s
Curve:          %s
Massif Dir:     %s
Toolchain File: %s
Circuit IR:     %s
Circuit:        %s
Assignment:     %s
Input:          %s`,
		c.TemplatePath,
		c.Curve,
		c.MassifDir,
		c.ToolchainFile,
		c.CircuitIRPath(),
		c.CircuitPath(),
		c.AssignmentPath(),
		c.InputPath(),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
