package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
)

// Storages groups every server-side repository.
type Storages struct {
	InventoryRepository       InventoryRepository
	ItemRepository            ItemRepository
	FieldDefinitionRepository FieldDefinitionRepository
	GrantRepository           GrantRepository
	PostRepository            PostRepository
	CatalogRepository         CatalogRepository
	BlobStorage               BlobStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies the migrations, prepares the
// blob directory and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	blobs, err := NewFileBlobStorage(cfg.Files, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return newStorages(db, blobs, logger), nil
}

func newStorages(db *DB, blobs BlobStorage, logger *logger.Logger) *Storages {
	return &Storages{
		InventoryRepository:       NewInventoryRepository(db, logger),
		ItemRepository:            NewItemRepository(db, logger),
		FieldDefinitionRepository: NewFieldDefinitionRepository(db, logger),
		GrantRepository:           NewGrantRepository(db, logger),
		PostRepository:            NewPostRepository(db, logger),
		CatalogRepository:         NewCatalogRepository(db, logger),
		BlobStorage:               blobs,
		db:                        db,
	}
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
