package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/btc-fan/zkbench/internal/toolchain"
)

var (
	runSkipVerify bool
	runVerbose    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full benchmark suite and display results",
	Long: `Runs the full benchmark suite in one session:
- Verify the template build artifacts
- Measure assigner and proof generator heap allocation under massif
- Measure assigner and proof generator execution time
- Display the collected results

Measurements run sequentially. Slot state lives only for this process,
so the one-shot path always performs all four measurements.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		logger := Logger
		if runVerbose {
			logger = newLogger(true)
		}

		engine, cfg, err := newEngine(logger)
		if err != nil {
			return err
		}

		if !runSkipVerify {
			if err := toolchain.VerifyBuild(cfg); err != nil {
				return fmt.Errorf("build verification failed: %w", err)
			}
			color.Green("✅ Build artifacts verified")
		}

		ctx := context.Background()

		steps := []struct {
			name string
			op   func(context.Context) error
		}{
			{"assigner heap allocation", engine.MeasureAssignerMemory},
			{"assigner execution time", engine.MeasureAssignerTime},
			{"proof generation heap allocation", engine.MeasureProofMemory},
			{"proof generation execution time", engine.MeasureProofTime},
		}

		for _, step := range steps {
			fmt.Printf("⏱  Measuring %s...\n", step.name)
			if err := step.op(ctx); err != nil {
				return fmt.Errorf("failed to measure %s: %w", step.name, err)
			}
		}

		results, err := engine.Results()
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Print(results)
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runSkipVerify, "skip-verify", false, "Skip the build artifact check")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(runCmd)
}
