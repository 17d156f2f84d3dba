package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] on db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *itemRepository) CreateItem(ctx context.Context, inventoryID int64, values models.SlotValues) (models.Item, error) {
	log := logger.FromContext(ctx)

	set, err := itemMutation(values)
	if err != nil {
		return models.Item{}, err
	}

	query, args, err := buildInsertItemQuery(inventoryID, set)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.CreateItem").
			Int64("inventory_id", inventoryID).
			Msg("failed to insert item")
		if isForeignKeyViolation(err) {
			return models.Item{}, ErrNotFound
		}
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "itemRepository.CreateItem").
		Int64("inventory_id", inventoryID).
		Int64("item_id", item.ID).
		Msg("item created")

	return item, nil
}

func (r *itemRepository) GetItem(ctx context.Context, inventoryID, itemID int64) (models.Item, error) {
	return getItem(ctx, r.DB, inventoryID, itemID)
}

func (r *itemRepository) ListItems(ctx context.Context, inventoryID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(inventoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.ListItems").
			Int64("inventory_id", inventoryID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	items, err := collectRows(rows, scanItem)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.ListItems").
			Int64("inventory_id", inventoryID).
			Msg("failed to scan items")
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, inventoryID, itemID, expectedVersion int64, values models.SlotValues) (models.Item, error) {
	log := logger.FromContext(ctx)

	set, err := itemMutation(values)
	if err != nil {
		return models.Item{}, err
	}

	query, args, err := buildCompareAndSwapQuery(tableItems,
		sq.Eq{"id": itemID, "inventory_id": inventoryID}, expectedVersion, set)
	if err != nil {
		return models.Item{}, err
	}

	var updated models.Item
	txErr := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := execCompareAndSwap(ctx, tx, itemID, expectedVersion, query, args); err != nil {
			return err
		}
		item, err := getItem(ctx, tx, inventoryID, itemID)
		if err != nil {
			return err
		}
		updated = item
		return nil
	})
	if txErr != nil {
		r.logWriteFailure(log, "itemRepository.UpdateItem", inventoryID, itemID, expectedVersion, txErr)
		return models.Item{}, txErr
	}

	log.Info().
		Str("func", "itemRepository.UpdateItem").
		Int64("item_id", itemID).
		Int64("version", updated.Version).
		Msg("item updated")

	return updated, nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, inventoryID, itemID, expectedVersion int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCompareAndDeleteQuery(tableItems,
		sq.Eq{"id": itemID, "inventory_id": inventoryID}, expectedVersion)
	if err != nil {
		return err
	}

	if _, err = execCompareAndSwap(ctx, r.DB, itemID, expectedVersion, query, args); err != nil {
		r.logWriteFailure(log, "itemRepository.DeleteItem", inventoryID, itemID, expectedVersion, err)
		return err
	}

	log.Info().
		Str("func", "itemRepository.DeleteItem").
		Int64("item_id", itemID).
		Msg("item deleted")
	return nil
}

func (r *itemRepository) NumericStats(ctx context.Context, inventoryID int64, keys []models.SlotKey) ([]models.FieldStats, error) {
	if len(keys) == 0 {
		return []models.FieldStats{}, nil
	}

	query, args, err := buildItemStatsQuery(inventoryID, keys)
	if err != nil {
		return nil, err
	}

	stats := make([]models.FieldStats, len(keys))
	dest := make([]any, 0, len(keys)*4)
	for i, key := range keys {
		stats[i].SlotKey = key
		dest = append(dest, &stats[i].Count, &stats[i].Avg, &stats[i].Min, &stats[i].Max)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "itemRepository.NumericStats").
			Int64("inventory_id", inventoryID).
			Msg("failed to aggregate items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}

// logWriteFailure logs conflicts and missing rows at Warn and everything
// else at Error.
func (r *itemRepository) logWriteFailure(log *logger.Logger, fn string, inventoryID, itemID, expectedVersion int64, err error) {
	if conflict, ok := AsConflict(err); ok {
		log.Warn().
			Str("func", fn).
			Int64("item_id", itemID).
			Int64("observed_version", conflict.CurrentVersion).
			Int64("provided_version", expectedVersion).
			Msg("optimistic lock failed: version mismatch")
		return
	}
	if errors.Is(err, ErrNotFound) {
		log.Warn().
			Str("func", fn).
			Int64("inventory_id", inventoryID).
			Int64("item_id", itemID).
			Msg("item not found")
		return
	}
	log.Err(err).
		Str("func", fn).
		Int64("item_id", itemID).
		Bool("retryable", r.retryable(err)).
		Msg("item write failed")
}

func getItem(ctx context.Context, q querier, inventoryID, itemID int64) (models.Item, error) {
	query, args, err := buildSelectItemQuery(inventoryID, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return item, nil
}
