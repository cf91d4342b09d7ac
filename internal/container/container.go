// Package container provides dependency injection for the finboard application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"time"

	"fjacquet/finboard/internal/aggregate"
	"fjacquet/finboard/internal/config"
	"fjacquet/finboard/internal/dashboard"
	"fjacquet/finboard/internal/ledger"
	"fjacquet/finboard/internal/logging"
	"fjacquet/finboard/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	location  *time.Location
	repo      store.Repository
	seed      *store.Seed
	ledger    *ledger.Service
	dashboard *dashboard.Loader
	series    *aggregate.SeriesBuilder
}

// NewContainer creates and wires all application dependencies.
// An empty repository is filled with the seed transactions.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	limit, limitSet, err := cfg.SpendingLimit()
	if err != nil {
		return nil, fmt.Errorf("invalid spending limit: %w", err)
	}

	seed, err := store.NewSeedStore(cfg.Seed.File, logger).Load()
	if err != nil {
		return nil, err
	}

	repo, err := newRepository(cfg, logger)
	if err != nil {
		return nil, err
	}

	svc := ledger.NewService(repo, loc, logger)
	if err := importSeed(svc, seed, logger); err != nil {
		_ = repo.Close()
		return nil, err
	}

	loader := dashboard.NewLoader(svc, seed, dashboard.Options{
		Delay:         cfg.Dashboard.LoadDelay,
		SpendingLimit: limit,
		LimitSet:      limitSet,
	}, logger)

	logger.Info("Container initialized successfully",
		logging.F(logging.FieldBackend, cfg.Storage.Backend))

	return &Container{
		logger:    logger,
		config:    cfg,
		location:  loc,
		repo:      repo,
		seed:      seed,
		ledger:    svc,
		dashboard: loader,
		series:    aggregate.NewSeriesBuilder(logger),
	}, nil
}

func newRepository(cfg *config.Config, logger logging.Logger) (store.Repository, error) {
	switch cfg.Storage.Backend {
	case store.BackendSQLite:
		repo, err := store.NewSQLiteRepository(cfg.Storage.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite repository: %w", err)
		}
		return repo, nil
	case store.BackendMemory, "":
		return store.NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

func importSeed(svc *ledger.Service, seed *store.Seed, logger logging.Logger) error {
	ctx := context.Background()
	snap, err := svc.Snapshot(ctx)
	if err != nil {
		return err
	}
	if len(snap.Items) > 0 {
		logger.Debug("Repository already populated, seed transactions not imported",
			logging.F(logging.FieldCount, len(snap.Items)))
		return nil
	}
	if _, err := svc.Import(ctx, seed.Transactions); err != nil {
		return fmt.Errorf("failed to import seed transactions: %w", err)
	}
	return nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLocation returns the location calendar days are resolved in.
func (c *Container) GetLocation() *time.Location {
	return c.location
}

// GetRepository returns the transaction repository.
func (c *Container) GetRepository() store.Repository {
	return c.repo
}

// GetSeed returns the loaded seed data.
func (c *Container) GetSeed() *store.Seed {
	return c.seed
}

// GetLedger returns the transaction service.
func (c *Container) GetLedger() *ledger.Service {
	return c.ledger
}

// GetDashboard returns the dashboard loader.
func (c *Container) GetDashboard() *dashboard.Loader {
	return c.dashboard
}

// GetSeriesBuilder returns the monthly series builder.
func (c *Container) GetSeriesBuilder() *aggregate.SeriesBuilder {
	return c.series
}

// Close releases the repository.
func (c *Container) Close() error {
	if err := c.repo.Close(); err != nil {
		return fmt.Errorf("failed to close repository: %w", err)
	}
	c.logger.Info("Container closed")
	return nil
}
