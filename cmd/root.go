package cmd

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

// envOverrides are operational knobs picked up from the environment; flags
// given explicitly on the command line win.
type envOverrides struct {
	LogLevel   string `env:"EVENTGEN_LOG"`
	ScratchDir string `env:"EVENTGEN_SCRATCH_DIR"`
}

var overrides envOverrides

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "eventgen",
	Short: "Deterministic synthetic particle-event generator for detector simulation",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Root().PersistentFlags().Changed("log") && overrides.LogLevel != "" {
			logLevel = overrides.LogLevel
		}
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := env.Parse(&overrides); err != nil {
		logrus.Fatalf("Parsing environment overrides: %v", err)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
