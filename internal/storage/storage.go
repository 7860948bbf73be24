package storage

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/config"
	"github.com/jafarshop/stockroom/internal/repository"
	"github.com/jafarshop/stockroom/internal/repository/memory"
	"github.com/jafarshop/stockroom/internal/repository/postgres"
)

// Open returns the document store selected by cfg.StorageDriver and a
// function that releases it. Postgres stores are migrated before use.
func Open(cfg *config.Config, logger *zap.Logger) (repository.DocumentStore, func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Info("Using in-memory store")
		return memory.NewStore(), func() error { return nil }, nil

	case config.StoragePostgres:
		db, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := postgres.RunMigrations(db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("Using postgres store",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.DBName),
		)
		return postgres.NewDocumentStore(db, logger), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
