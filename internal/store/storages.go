package store

import (
	"context"
	"fmt"

	"github.com/aixmultimodal/msgboard/internal/config"
	"github.com/aixmultimodal/msgboard/internal/logger"
)

// Storages bundles the repositories and the liveness probe for whichever
// backend the configuration selected.
type Storages struct {
	MessageRepository MessageRepository
	UserRepository    UserRepository
	Pinger            Pinger
}

// NewStorages constructs the repository set for cfg.DB.Driver:
// "memory" (default), "postgres", or "sqlite". SQL backends are connected,
// pinged, and migrated before any repository is returned.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.DB.Driver {
	case config.DriverMemory, "":
		mem := NewMemoryStore()
		return &Storages{
			MessageRepository: mem,
			UserRepository:    mem,
			Pinger:            mem,
		}, nil

	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return &Storages{
			MessageRepository: NewMessageRepository(db, log),
			UserRepository:    NewUserRepository(db, log),
			Pinger:            db,
		}, nil

	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}
		return &Storages{
			MessageRepository: NewMessageRepository(db, log),
			UserRepository:    NewUserRepository(db, log),
			Pinger:            db,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}
}
