package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"fjacquet/finboard/cmd/add"
	"fjacquet/finboard/cmd/breakdown"
	"fjacquet/finboard/cmd/dashboard"
	"fjacquet/finboard/cmd/deduction"
	"fjacquet/finboard/cmd/export"
	"fjacquet/finboard/cmd/importcsv"
	"fjacquet/finboard/cmd/limit"
	"fjacquet/finboard/cmd/notifications"
	"fjacquet/finboard/cmd/options"
	"fjacquet/finboard/cmd/root"
	"fjacquet/finboard/cmd/summary"
	"fjacquet/finboard/cmd/transactions"
	"fjacquet/finboard/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the log level before any logger is used
	root.Log.SetLevel(configureLogLevelDirectly())

	// 3. Initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(transactions.Cmd)
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(importcsv.Cmd)
	root.Cmd.AddCommand(options.Cmd)
	root.Cmd.AddCommand(limit.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(breakdown.Cmd)
	root.Cmd.AddCommand(deduction.Cmd)
	root.Cmd.AddCommand(notifications.Cmd)
	root.Cmd.AddCommand(dashboard.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly reads FINBOARD_LOG_LEVEL, falling back to info
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := config.GetEnv(config.EnvPrefix+"_LOG_LEVEL", "info")

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
