package store

import (
	"context"
	"fmt"

	"github.com/Tristano1/friend-library-system/internal/config"
	"github.com/Tristano1/friend-library-system/internal/logger"
)

// Storages bundles every repository built on top of one database connection.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// constructs the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ItemRepository: NewItemRepository(db, log),
		db:             db,
	}, nil
}

// Ping reports whether the underlying database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
