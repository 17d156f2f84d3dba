package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] on db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// ListPosts returns the discussion oldest first.
func (r *postRepository) ListPosts(ctx context.Context, inventoryID int64) ([]models.DiscussionPost, error) {
	query, args, err := buildListPostsQuery(inventoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postRepository.ListPosts").
			Int64("inventory_id", inventoryID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, scanPost)
}

func (r *postRepository) GetPost(ctx context.Context, inventoryID, postID int64) (models.DiscussionPost, error) {
	query, args, err := buildSelectPostQuery(inventoryID, postID)
	if err != nil {
		return models.DiscussionPost{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DiscussionPost{}, ErrNotFound
	}
	if err != nil {
		return models.DiscussionPost{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return post, nil
}

func (r *postRepository) CreatePost(ctx context.Context, post models.DiscussionPost) (models.DiscussionPost, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(post)
	if err != nil {
		return models.DiscussionPost{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPost(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.DiscussionPost{}, ErrNotFound
		}
		log.Err(err).
			Str("func", "postRepository.CreatePost").
			Int64("inventory_id", post.InventoryID).
			Msg("failed to insert post")
		return models.DiscussionPost{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "postRepository.CreatePost").
		Int64("inventory_id", created.InventoryID).
		Int64("post_id", created.ID).
		Msg("post created")
	return created, nil
}

func (r *postRepository) DeletePost(ctx context.Context, inventoryID, postID int64) error {
	query, args, err := buildDeletePostQuery(inventoryID, postID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postRepository.DeletePost").
			Int64("post_id", postID).
			Msg("failed to delete post")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
