// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"

	"fjacquet/finboard/internal/config"
	"fjacquet/finboard/internal/container"
	"fjacquet/finboard/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// ConfigFile is the --config flag value
	ConfigFile string

	// AppContainer holds the wired dependencies once PersistentPreRunE has run
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finboard",
		Short: "A CLI personal-finance dashboard: transactions, budgets and breakdowns.",
		Long: `finboard keeps a list of income and expense transactions and derives the
dashboard views from it: filtered transaction history, spending limit,
income/expense summary, category breakdown, salary deduction and notifications.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finboard!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if AppContainer != nil {
				return nil
			}

			config.LoadEnv(logging.NewLogrusAdapterFromLogger(Log))

			cfg, err := config.InitializeConfig(ConfigFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			Log = config.ConfigureLoggingFromConfig(cfg)

			c, err := container.NewContainerWithLogger(cfg, logging.NewLogrusAdapterFromLogger(Log))
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			AppContainer = c
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeContainer()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command and closes the container afterwards, also when
// the command failed and cobra skipped PersistentPostRun.
func Execute(ctx context.Context) error {
	err := Cmd.ExecuteContext(ctx)
	closeContainer()
	return err
}

func closeContainer() {
	if AppContainer == nil {
		return
	}
	if err := AppContainer.Close(); err != nil {
		Log.Warnf("Failed to close application: %v", err)
	}
	AppContainer = nil
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&ConfigFile, "config", "c",
		config.GetEnv(config.EnvPrefix+"_CONFIG", ""), "Config file (default $HOME/.finboard/config.yaml)")
}

// SetContainer installs an already wired container, skipping configuration loading.
func SetContainer(c *container.Container) {
	AppContainer = c
}

// GetContainer returns the wired container or an error when none is available.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return AppContainer, nil
}
