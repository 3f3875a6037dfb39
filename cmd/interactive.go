package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/btc-fan/zkbench/internal/bench"
	"github.com/btc-fan/zkbench/internal/config"
	"github.com/btc-fan/zkbench/internal/toolchain"
	"github.com/btc-fan/zkbench/pkg/interactive"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive menu mode",
	Long:  `Launches the interactive benchmark menu for zkbench.`,
	Run: func(_ *cobra.Command, _ []string) {
		RunInteractive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// RunInteractive drives the benchmark menu loop. One engine serves the
// whole session so slots accumulate across menu actions; state is gone
// when the process exits.
func RunInteractive() {
	fmt.Println("zkbench - Interactive Mode")
	fmt.Println("==========================")
	fmt.Println()

	engine, cfg, err := newEngine(Logger)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	measure := func(name string, op func(context.Context) error) func() error {
		return func() error {
			if err := op(ctx); err != nil {
				fmt.Printf("\n❌ Error: %v\n", err)
			} else {
				fmt.Printf("\n✅ %s measured.\n", name)
			}
			interactive.PauseForEnter()
			return nil
		}
	}

	for {
		options := []interactive.MenuOption{
			{
				Name:        "Verify Build",
				Description: "Check that the zkLLVM template build artifacts exist",
				Action: func() error {
					if err := toolchain.VerifyBuild(cfg); err != nil {
						fmt.Printf("\n❌ Error: %v\n", err)
					} else {
						fmt.Println("\n✅ All build artifacts present.")
					}
					interactive.PauseForEnter()
					return nil
				},
			},
			{
				Name:        "Measure Assigner Heap Allocation",
				Description: "Profile the assigner under valgrind massif",
				Action:      measure("Assigner heap allocation", engine.MeasureAssignerMemory),
			},
			{
				Name:        "Measure Proof Generation Heap Allocation",
				Description: "Profile the proof generator under valgrind massif",
				Action:      measure("Proof generation heap allocation", engine.MeasureProofMemory),
			},
			{
				Name:        "Measure Assigner Execution Time",
				Description: "Time an assigner run",
				Action:      measure("Assigner execution time", engine.MeasureAssignerTime),
			},
			{
				Name:        "Measure Proof Generation Execution Time",
				Description: "Time a proof generator run",
				Action:      measure("Proof generation execution time", engine.MeasureProofTime),
			},
			{
				Name:        "Display Results",
				Description: "Show collected results (requires all four measurements)",
				Action: func() error {
					results, err := engine.Results()
					if err != nil {
						fmt.Printf("\n❌ Error: %v\n", err)
					} else {
						fmt.Println()
						fmt.Print(results)
					}
					interactive.PauseForEnter()
					return nil
				},
			},
			{
				Name:        "Show Config",
				Description: "Display current environment configuration",
				Action: func() error {
					fmt.Println()
					fmt.Println(cfg.String())
					interactive.PauseForEnter()
					return nil
				},
			},
		}

		if err := interactive.ShowMenu(options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}

		fmt.Println()
	}
}

// newEngine loads configuration and wires up a benchmark engine.
func newEngine(logger *logrus.Logger) (*bench.Engine, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	tc, err := config.LoadToolchain(cfg.ToolchainFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load toolchain config: %w", err)
	}

	runner := bench.NewRunner(logger)

	return bench.NewEngine(cfg, tc, runner, logger), cfg, nil
}
