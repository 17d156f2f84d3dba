package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type localDraftRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalDraftRepository constructs a SQLite-backed [DraftRepository].
func NewLocalDraftRepository(db *DB, logger *logger.Logger) DraftRepository {
	return &localDraftRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localDraftRepository) SaveDraft(ctx context.Context, draft models.InventoryDraft) error {
	log := logger.FromContext(ctx)

	patch, err := json.Marshal(draft.Patch)
	if err != nil {
		return fmt.Errorf("encode draft patch: %w", err)
	}

	_, err = l.DB.ExecContext(ctx, saveDraft,
		draft.InventoryID,
		draft.BaseVersion,
		string(patch),
		draft.UpdatedAt.UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "localDraftRepository.SaveDraft").
			Int64("inventory_id", draft.InventoryID).
			Msg("failed to save draft")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localDraftRepository) LoadDraft(ctx context.Context, inventoryID int64) (models.InventoryDraft, error) {
	var (
		draft models.InventoryDraft
		patch string
	)

	err := l.DB.QueryRowContext(ctx, loadDraft, inventoryID).Scan(
		&draft.InventoryID,
		&draft.BaseVersion,
		&patch,
		&draft.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryDraft{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localDraftRepository.LoadDraft").
			Int64("inventory_id", inventoryID).
			Msg("failed to load draft")
		return models.InventoryDraft{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(patch), &draft.Patch); err != nil {
		return models.InventoryDraft{}, fmt.Errorf("decode draft patch: %w", err)
	}
	return draft, nil
}

func (l *localDraftRepository) DeleteDraft(ctx context.Context, inventoryID int64) error {
	if _, err := l.DB.ExecContext(ctx, deleteDraft, inventoryID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localDraftRepository.DeleteDraft").
			Int64("inventory_id", inventoryID).
			Msg("failed to delete draft")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
