package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/btc-fan/zkbench/internal/config"
	"github.com/btc-fan/zkbench/internal/toolchain"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the zkLLVM template build artifacts exist",
	Long: `Checks that the compiled circuit IR, circuit, assignment table and
input file are present under the configured template directory.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := toolchain.VerifyBuild(cfg); err != nil {
			return fmt.Errorf("build verification failed: %w", err)
		}

		color.Green("✅ All build artifacts present.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
