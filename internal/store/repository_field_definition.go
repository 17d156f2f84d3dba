package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/schema"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type fieldDefinitionRepository struct {
	*DB
	logger *logger.Logger
}

// NewFieldDefinitionRepository constructs a [FieldDefinitionRepository] on db.
func NewFieldDefinitionRepository(db *DB, logger *logger.Logger) FieldDefinitionRepository {
	return &fieldDefinitionRepository{
		DB:     db,
		logger: logger,
	}
}

// ListFieldDefinitions returns every definition of the inventory in
// display order.
func (r *fieldDefinitionRepository) ListFieldDefinitions(ctx context.Context, inventoryID int64) ([]models.FieldDefinition, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFieldDefinitionsQuery(inventoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "fieldDefinitionRepository.ListFieldDefinitions").
			Int64("inventory_id", inventoryID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	defs, err := collectRows(rows, scanFieldDefinition)
	if err != nil {
		return nil, err
	}

	schema.SortFields(defs)
	return defs, nil
}

// UpsertFieldDefinitions applies patches in order inside one transaction.
// Enabling patches are upserts; all other patches only touch an existing
// row, so disabling or relabeling an absent definition is a no-op.
func (r *fieldDefinitionRepository) UpsertFieldDefinitions(ctx context.Context, inventoryID int64, patches []models.FieldDefinitionPatch) error {
	log := logger.FromContext(ctx)

	if len(patches) == 0 {
		log.Warn().
			Str("func", "fieldDefinitionRepository.UpsertFieldDefinitions").
			Msg("no field patches provided")
		return nil
	}

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		for i, patch := range patches {
			query, args, err := buildFieldPatchQuery(inventoryID, patch)
			if err != nil {
				return err
			}
			if query == "" {
				continue
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "fieldDefinitionRepository.UpsertFieldDefinitions").
					Int("iteration", i).
					Str("field_key", string(patch.SlotKey)).
					Msg("failed to apply field patch")
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("func", "fieldDefinitionRepository.UpsertFieldDefinitions").
		Int64("inventory_id", inventoryID).
		Int("patches", len(patches)).
		Msg("field definitions updated")
	return nil
}

// buildFieldPatchQuery picks the statement for one patch. It returns an
// empty query for a patch that changes nothing.
func buildFieldPatchQuery(inventoryID int64, patch models.FieldDefinitionPatch) (string, []any, error) {
	family, err := schema.ResolveSlotType(patch.SlotKey)
	if err != nil {
		return "", nil, err
	}

	if len(fieldDefinitionMutation(patch)) == 0 {
		return "", nil, nil
	}

	var query string
	var args []any
	if patch.IsEnabled != nil && *patch.IsEnabled {
		query, args, err = buildUpsertFieldDefinitionQuery(inventoryID, family, patch)
	} else {
		query, args, err = buildUpdateFieldDefinitionQuery(inventoryID, patch)
	}
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
