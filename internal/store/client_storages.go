package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// DraftRepository holds unflushed edits of the reconciliation loop.
	DraftRepository DraftRepository

	db *DB
}

// NewClientStorages opens the SQLite draft database at cfg.DB.DSN, applies
// the client migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DraftRepository: NewLocalDraftRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the database connection.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
