package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/procsim/procsim/sim"
)

var (
	// CLI flags
	logLevel     string // Log verbosity level
	configPath   string // Path to the YAML trajectory definition
	indent       int    // Indentation for trajectory printing
	verbose      bool   // Include link identities when printing
	replications int    // Number of independent replications to run
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "procsim",
	Short: "Step-chain substrate for discrete-event process simulation",
}

// loadChain parses and validates the trajectory definition, exiting on any
// configuration error so nothing invalid reaches a running simulation.
func loadChain() (*sim.TrajectoryConfig, *sim.Chain) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)

	if configPath == "" {
		logrus.Fatalf("Trajectory config not provided. Use --config.")
	}
	cfg, err := sim.LoadTrajectoryConfig(configPath)
	if err != nil {
		logrus.Fatalf("Loading trajectory config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid trajectory config: %v", err)
	}
	return cfg, cfg.Build()
}

// printCmd renders the configured trajectory as indented text
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Render the trajectory as indented text",
	Run: func(cmd *cobra.Command, args []string) {
		_, chain := loadChain()
		chain.Print(os.Stdout, indent, verbose)
	},
}

// runCmd walks independent replications of the trajectory and folds their
// elapsed costs with the configured combine operator
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run independent replications of the trajectory",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, chain := loadChain()

		totals, err := sim.RunReplications(context.Background(), chain, replications, func(rep int) *sim.Arrival {
			return sim.NewArrival(fmt.Sprintf("arrival_%d", rep))
		})
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		for rep, total := range totals {
			logrus.Infof("Replication %d: elapsed %.3f", rep, total)
		}

		op, err := cfg.CombineOp()
		if err != nil {
			logrus.Fatalf("Combine operator: %v", err)
		}
		fmt.Printf("Combined elapsed cost over %d replications: %.3f\n",
			replications, combineTotals(op, totals))
	},
}

// combineTotals folds the per-replication totals with op, left to right.
func combineTotals(op sim.BinaryOp, totals []float64) float64 {
	combined := totals[0]
	for _, t := range totals[1:] {
		combined = op(combined, t)
	}
	return combined
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log verbosity level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML trajectory definition")

	printCmd.Flags().IntVar(&indent, "indent", 0, "Spaces at the beginning of each line")
	printCmd.Flags().BoolVar(&verbose, "verbose", false, "Include link identities")

	runCmd.Flags().IntVar(&replications, "replications", 1, "Number of independent replications")

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(runCmd)
}
