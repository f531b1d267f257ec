package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/memsim/sim/scenario"
)

var (
	scenarioPath    string // Scenario file (.yaml, .yml or .toml); empty runs the built-in demo
	latencyOverride int64  // Global store latency override (in ticks); negative keeps the scenario's
	logLevel        string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "memsim",
	Short: "Discrete-event simulator for agents sharing versioned artifacts through caches",
}

// runCmd executes a scenario and prints its trace and metrics
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a memory simulation scenario",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if err := runScenario(cmd.OutOrStdout(), scenarioPath, latencyOverride); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// loadScenario returns the scenario at path, or the built-in demo when path is empty.
func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		logrus.Infof("No scenario file given, running built-in demo")
		return scenario.Default(), nil
	}
	return scenario.Load(path)
}

// runScenario loads, builds and runs a scenario, writing the report to w.
func runScenario(w io.Writer, path string, latency int64) error {
	sc, err := loadScenario(path)
	if err != nil {
		return err
	}
	if latency >= 0 {
		logrus.Warnf("Overriding scenario latency %d with %d", sc.Latency, latency)
		sc.Latency = latency
	}

	s, err := sc.Build()
	if err != nil {
		return err
	}
	res, err := s.Run()
	if err != nil {
		return fmt.Errorf("running scenario %q: %w", sc.Name, err)
	}
	return WriteReport(w, sc, res)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario file (.yaml, .yml, .toml); empty runs the built-in demo")
	runCmd.Flags().Int64Var(&latencyOverride, "latency", -1, "Override the global store latency (in ticks); negative keeps the scenario value")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
