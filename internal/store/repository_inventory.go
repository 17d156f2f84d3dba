// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// inventoryRepository is the PostgreSQL-backed [InventoryRepository].
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// database interactions are traced with the request's trace id.
type inventoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewInventoryRepository constructs an [InventoryRepository] on db.
func NewInventoryRepository(db *DB, logger *logger.Logger) InventoryRepository {
	return &inventoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *inventoryRepository) CreateInventory(ctx context.Context, req models.InventoryCreateRequest) (models.Inventory, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertInventoryQuery(req)
	if err != nil {
		return models.Inventory{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Inventory
	txErr := r.inTx(ctx, func(tx *sql.Tx) error {
		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			if isForeignKeyViolation(err) {
				return ErrInvalidReference
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if err := replaceTags(ctx, tx, id, req.Tags); err != nil {
			return err
		}

		inv, err := getInventory(ctx, tx, id)
		if err != nil {
			return err
		}
		created = inv
		return nil
	})
	if txErr != nil {
		log.Err(txErr).
			Str("func", "inventoryRepository.CreateInventory").
			Str("creator_id", req.CreatorID).
			Msg("failed to create inventory")
		return models.Inventory{}, txErr
	}

	log.Info().
		Str("func", "inventoryRepository.CreateInventory").
		Int64("inventory_id", created.ID).
		Msg("inventory created")

	return created, nil
}

func (r *inventoryRepository) GetInventory(ctx context.Context, id int64) (models.Inventory, error) {
	inv, err := getInventory(ctx, r.DB, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "inventoryRepository.GetInventory").
			Int64("inventory_id", id).
			Msg("failed to get inventory")
	}
	return inv, err
}

func (r *inventoryRepository) ListInventories(ctx context.Context, userID string) ([]models.Inventory, error) {
	query, args, err := buildListInventoriesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.selectInventories(ctx, "inventoryRepository.ListInventories", query, args)
}

func (r *inventoryRepository) SearchInventories(ctx context.Context, text string) ([]models.Inventory, error) {
	query, args, err := buildSearchInventoriesQuery(text, SearchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.selectInventories(ctx, "inventoryRepository.SearchInventories", query, args)
}

// UpdateInventory applies patch with a single compare-and-swap statement;
// the tag set, when present, is replaced inside the same transaction so a
// conflicting write leaves tags untouched.
func (r *inventoryRepository) UpdateInventory(ctx context.Context, id, expectedVersion int64, patch models.InventoryPatch) (models.Inventory, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCompareAndSwapQuery(tableInventories, sq.Eq{"id": id}, expectedVersion, inventoryMutation(patch))
	if err != nil {
		return models.Inventory{}, err
	}

	var updated models.Inventory
	txErr := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := execCompareAndSwap(ctx, tx, id, expectedVersion, query, args); err != nil {
			return err
		}

		if patch.Tags != nil {
			if err := replaceTags(ctx, tx, id, *patch.Tags); err != nil {
				return err
			}
		}

		inv, err := getInventory(ctx, tx, id)
		if err != nil {
			return err
		}
		updated = inv
		return nil
	})

	var conflict *ConflictError
	switch {
	case txErr == nil:
	case errors.As(txErr, &conflict):
		log.Warn().
			Str("func", "inventoryRepository.UpdateInventory").
			Int64("inventory_id", id).
			Int64("observed_version", conflict.CurrentVersion).
			Int64("provided_version", expectedVersion).
			Msg("optimistic lock failed: version mismatch")
		return models.Inventory{}, txErr
	case errors.Is(txErr, ErrNotFound):
		log.Warn().
			Str("func", "inventoryRepository.UpdateInventory").
			Int64("inventory_id", id).
			Msg("inventory not found")
		return models.Inventory{}, txErr
	default:
		log.Err(txErr).
			Str("func", "inventoryRepository.UpdateInventory").
			Int64("inventory_id", id).
			Bool("retryable", r.retryable(txErr)).
			Msg("failed to update inventory")
		if isForeignKeyViolation(txErr) {
			return models.Inventory{}, ErrInvalidReference
		}
		return models.Inventory{}, txErr
	}

	log.Info().
		Str("func", "inventoryRepository.UpdateInventory").
		Int64("inventory_id", id).
		Int64("version", updated.Version).
		Msg("inventory updated")

	return updated, nil
}

func (r *inventoryRepository) DeleteInventory(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(tableInventories).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "inventoryRepository.DeleteInventory").
			Int64("inventory_id", id).
			Msg("failed to delete inventory")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	log.Info().
		Str("func", "inventoryRepository.DeleteInventory").
		Int64("inventory_id", id).
		Msg("inventory deleted")
	return nil
}

func (r *inventoryRepository) selectInventories(ctx context.Context, fn, query string, args []any) ([]models.Inventory, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	inventories, err := collectRows(rows, scanInventory)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to scan inventories")
		return nil, err
	}

	if err = attachTags(ctx, r.DB, inventories); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to load tags")
		return nil, err
	}

	return inventories, nil
}

func getInventory(ctx context.Context, q querier, id int64) (models.Inventory, error) {
	query, args, err := buildSelectInventoryQuery(id)
	if err != nil {
		return models.Inventory{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	inv, err := scanInventory(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Inventory{}, ErrNotFound
	}
	if err != nil {
		return models.Inventory{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	list := []models.Inventory{inv}
	if err = attachTags(ctx, q, list); err != nil {
		return models.Inventory{}, err
	}
	return list[0], nil
}

// attachTags fills Tags of every inventory with a single query.
func attachTags(ctx context.Context, q querier, inventories []models.Inventory) error {
	if len(inventories) == 0 {
		return nil
	}

	ids := make([]int64, len(inventories))
	for i := range inventories {
		ids[i] = inventories[i].ID
		inventories[i].Tags = []string{}
	}

	query, args, err := buildSelectInventoryTagsQuery(ids...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make(map[int64][]string, len(inventories))
	for rows.Next() {
		var id int64
		var name string
		if err = rows.Scan(&id, &name); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tags[id] = append(tags[id], name)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for i := range inventories {
		if t, ok := tags[inventories[i].ID]; ok {
			inventories[i].Tags = t
		}
	}
	return nil
}

// replaceTags makes names the complete tag set of the inventory. Names are
// expected to be normalized already.
func replaceTags(ctx context.Context, tx *sql.Tx, inventoryID int64, names []string) error {
	query, args, err := buildClearTagsQuery(inventoryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, name := range names {
		query, args, err = buildUpsertTagQuery(name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var tagID int64
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&tagID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		query, args, err = buildLinkTagQuery(inventoryID, tagID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}
	return nil
}
