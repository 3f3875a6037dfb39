package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ZKLLVM_TEMPLATE_PATH", "")
	t.Setenv("ZKBENCH_CURVE", "")
	t.Setenv("ZKBENCH_MASSIF_DIR", "")
	t.Setenv("ZKBENCH_TOOLCHAIN", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(cfg.TemplatePath))
	assert.Equal(t, "pallas", cfg.Curve)
	assert.Equal(t, ".", cfg.MassifDir)
	assert.Equal(t, "zkbench.yaml", cfg.ToolchainFile)
}

func TestLoadFromEnvironment(t *testing.T) {
	template := t.TempDir()
	t.Setenv("ZKLLVM_TEMPLATE_PATH", template)
	t.Setenv("ZKBENCH_CURVE", "bls12381")
	t.Setenv("ZKBENCH_MASSIF_DIR", "/tmp/massif")
	t.Setenv("ZKBENCH_TOOLCHAIN", "custom.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, template, cfg.TemplatePath)
	assert.Equal(t, "bls12381", cfg.Curve)
	assert.Equal(t, "/tmp/massif", cfg.MassifDir)
	assert.Equal(t, "custom.yaml", cfg.ToolchainFile)
}

func TestConfigDerivedPaths(t *testing.T) {
	cfg := &Config{TemplatePath: "/opt/zkllvm-template"}

	assert.Equal(t, "/opt/zkllvm-template/build", cfg.BuildDir())
	assert.Equal(t, "/opt/zkllvm-template/build/src", cfg.BuildSrcDir())
	assert.Equal(t, "/opt/zkllvm-template/build/src/template.ll", cfg.CircuitIRPath())
	assert.Equal(t, "/opt/zkllvm-template/build/src/template.crct", cfg.CircuitPath())
	assert.Equal(t, "/opt/zkllvm-template/build/src/template.tbl", cfg.AssignmentPath())
	assert.Equal(t, "/opt/zkllvm-template/src/main-input.json", cfg.InputPath())
	assert.Equal(t, "/opt/zkllvm-template/build/proof.bin", cfg.ProofPath())
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		TemplatePath:  "/opt/zkllvm-template",
		Curve:         "pallas",
		MassifDir:     ".",
		ToolchainFile: "zkbench.yaml",
	}

	s := cfg.String()
	assert.Contains(t, s, "/opt/zkllvm-template")
	assert.Contains(t, s, "pallas")
	assert.Contains(t, s, "zkbench.yaml")
	assert.Contains(t, s, "template.crct")
}
