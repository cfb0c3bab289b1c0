package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/config"
	"github.com/themizzi/saucesuite/internal/database"
	"github.com/themizzi/saucesuite/internal/repository"
	"github.com/themizzi/saucesuite/internal/services"
)

// Order store kinds
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// OpenOrderRepository returns the order repository selected by cfg.OrderStore
// and a func releasing it. Postgres settings are read through getenv.
func OpenOrderRepository(cfg config.ServerConfig, getenv func(string) string, log logrus.FieldLogger) (services.OrderRepository, func() error, error) {
	switch cfg.OrderStore {
	case StoreMemory:
		return repository.NewMemoryOrderRepository(), func() error { return nil }, nil
	case StorePostgres:
		pgConfig, err := config.LoadPostgresConfig(getenv)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load postgres config: %w", err)
		}
		db, err := database.Connect(pgConfig)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(db, log); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repository.NewOrderRepositoryWithDB(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("ORDER_STORE must be %q or %q, got %q", StoreMemory, StorePostgres, cfg.OrderStore)
	}
}
