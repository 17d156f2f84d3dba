package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type grantRepository struct {
	*DB
	logger *logger.Logger
}

// NewGrantRepository constructs a [GrantRepository] on db.
func NewGrantRepository(db *DB, logger *logger.Logger) GrantRepository {
	return &grantRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *grantRepository) HasGrant(ctx context.Context, inventoryID int64, userID string) (bool, error) {
	query, args, err := buildHasGrantQuery(inventoryID, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "grantRepository.HasGrant").
			Int64("inventory_id", inventoryID).
			Msg("failed to look up grant")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return exists, nil
}

func (r *grantRepository) ListGrants(ctx context.Context, inventoryID int64) ([]models.AccessGrant, error) {
	query, args, err := buildListGrantsQuery(inventoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "grantRepository.ListGrants").
			Int64("inventory_id", inventoryID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, scanGrant)
}

func (r *grantRepository) CreateGrant(ctx context.Context, inventoryID int64, userID string) (models.AccessGrant, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertGrantQuery(inventoryID, userID)
	if err != nil {
		return models.AccessGrant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	grant, err := scanGrant(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
	case isUniqueViolation(err, ""):
		log.Warn().
			Str("func", "grantRepository.CreateGrant").
			Int64("inventory_id", inventoryID).
			Str("user_id", userID).
			Msg("grant already exists")
		return models.AccessGrant{}, ErrGrantAlreadyExists
	case isForeignKeyViolation(err):
		return models.AccessGrant{}, ErrNotFound
	default:
		log.Err(err).
			Str("func", "grantRepository.CreateGrant").
			Int64("inventory_id", inventoryID).
			Msg("failed to insert grant")
		return models.AccessGrant{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "grantRepository.CreateGrant").
		Int64("inventory_id", inventoryID).
		Str("user_id", userID).
		Msg("write access granted")
	return grant, nil
}

func (r *grantRepository) DeleteGrants(ctx context.Context, inventoryID int64, userIDs []string) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	query, args, err := buildDeleteGrantsQuery(inventoryID, userIDs)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "grantRepository.DeleteGrants").
			Int64("inventory_id", inventoryID).
			Msg("failed to delete grants")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "grantRepository.DeleteGrants").
		Int64("inventory_id", inventoryID).
		Int64("revoked", n).
		Msg("write access revoked")
	return n, nil
}

func scanGrant(s rowScanner) (models.AccessGrant, error) {
	var g models.AccessGrant
	err := s.Scan(&g.InventoryID, &g.UserID, &g.CreatedAt)
	return g, err
}
