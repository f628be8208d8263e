package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"durak/internal/config"
	"durak/internal/rng"
)

// Version is the tool version
var Version = "v0.0.0-dev"

var rootCmd = &cobra.Command{
	Use:     "durak",
	Short:   "Deal and replay rounds of durak",
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func main() {
	rootCmd.AddCommand(dealCmd)
	rootCmd.AddCommand(replayCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// generator returns the configured random number generator: seeded when a
// seed is set, otherwise crypto-backed
func generator() rng.Generator {
	if seed := config.Instance().Seed; seed > 0 {
		return rng.NewSeeded(seed)
	}

	return rng.Crypto{}
}

func setupLogger() {
	if lvl := config.Instance().LogLevel; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
