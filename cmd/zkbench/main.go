// Package main is the entry point for the zkbench application
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/btc-fan/zkbench/cmd"
)

const (
	envFlag      = "--env"
	envFlagEqual = "--env="
)

func main() {
	envFile, runMenu := parseArgs()

	if runMenu {
		// Load env file before anything reads configuration
		if err := loadEnvFile(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading env file: %v\n", err)
			os.Exit(1)
		}
		cmd.InitLogger()
		cmd.RunInteractive()
	} else {
		// Arguments provided - run cobra CLI
		cmd.Execute()
	}
}

// parseArgs decides between menu and CLI mode and extracts the --env
// flag. Only --env arguments keep the menu mode; any other argument is
// a cobra invocation.
func parseArgs() (envFile string, runMenu bool) {
	runMenu = true

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == envFlag:
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: --env flag requires a value")
				os.Exit(1)
			}
			i++
			envFile = args[i]
		case strings.HasPrefix(args[i], envFlagEqual):
			envFile = args[i][len(envFlagEqual):]
		default:
			runMenu = false
		}
	}

	return envFile, runMenu
}

// loadEnvFile loads the specified environment file
func loadEnvFile(file string) error {
	if file == "" {
		file = ".env"
	}

	if err := godotenv.Load(file); err != nil {
		// A missing default .env file is fine
		if file == ".env" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load env file '%s': %w", file, err)
	}

	return nil
}
