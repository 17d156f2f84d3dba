package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type catalogRepository struct {
	*DB
	logger *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository] on db.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	return &catalogRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	query, args, err := buildListCategoriesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.ListCategories").
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, func(s rowScanner) (models.Category, error) {
		var c models.Category
		err := s.Scan(&c.ID, &c.Name)
		return c, err
	})
}

// SearchTags returns up to [TagSuggestLimit] tags starting with prefix.
// A blank prefix yields no suggestions.
func (r *catalogRepository) SearchTags(ctx context.Context, prefix string) ([]models.Tag, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return []models.Tag{}, nil
	}

	query, args, err := buildSearchTagsQuery(prefix, TagSuggestLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.SearchTags").
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, func(s rowScanner) (models.Tag, error) {
		var t models.Tag
		err := s.Scan(&t.ID, &t.Name)
		return t, err
	})
}
