package main

import (
	"fmt"
	"os"
	"strings"

	"anjalsubedi/expense-tracker/cmd/chart"
	"anjalsubedi/expense-tracker/cmd/configcmd"
	"anjalsubedi/expense-tracker/cmd/generate"
	"anjalsubedi/expense-tracker/cmd/root"
	"anjalsubedi/expense-tracker/cmd/summarize"
	"anjalsubedi/expense-tracker/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load .env silently before anything reads the environment
	config.LoadEnv()

	// 2. Honour LOG_LEVEL as a fallback for EXPENSES_LOG_LEVEL
	configureLogLevel()

	// 3. Register flags and subcommands
	root.Init()
	root.Cmd.AddCommand(generate.Cmd)
	root.Cmd.AddCommand(summarize.Cmd)
	root.Cmd.AddCommand(chart.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

// configureLogLevel applies LOG_LEVEL to the global logrus level and, unless
// EXPENSES_LOG_LEVEL is set, to the application configuration.
func configureLogLevel() {
	logLevelStr := strings.ToLower(config.GetEnv("LOG_LEVEL", ""))
	if logLevelStr == "" {
		return
	}

	logLevel, err := logrus.ParseLevel(logLevelStr)
	if err != nil {
		// Don't log here, an invalid value is simply ignored
		return
	}
	logrus.SetLevel(logLevel)

	key := config.EnvPrefix + "_LOG_LEVEL"
	if _, set := os.LookupEnv(key); !set {
		_ = os.Setenv(key, logLevelStr)
	}
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
