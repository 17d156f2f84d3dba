package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-inventory-hub/internal/access"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type discussionService struct {
	posts     store.PostRepository
	publisher RoomPublisher

	logger *logger.Logger
}

func NewDiscussionService(posts store.PostRepository, publisher RoomPublisher, logger *logger.Logger) DiscussionService {
	return &discussionService{
		posts:     posts,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *discussionService) ListPosts(ctx context.Context, inventoryID int64) ([]models.DiscussionPost, error) {
	return s.posts.ListPosts(ctx, inventoryID)
}

// CreatePost copies the author's email and avatar into the post. The room
// announcement happens after the post is stored and is best effort.
func (s *discussionService) CreatePost(ctx context.Context, authz models.AuthorizationContext, req models.PostCreateRequest) (models.DiscussionPost, error) {
	log := logger.FromContext(ctx)

	if err := access.Require(authz, models.AccessModePublicEligible); err != nil {
		return models.DiscussionPost{}, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return models.DiscussionPost{}, ErrInvalidDataProvided
	}

	post := models.DiscussionPost{
		InventoryID: authz.Inventory.ID,
		UserID:      authz.Principal.ID,
		UserEmail:   authz.Principal.Email,
		Content:     content,
	}
	if authz.Principal.ImageURL != "" {
		image := authz.Principal.ImageURL
		post.UserImageURL = &image
	}

	created, err := s.posts.CreatePost(ctx, post)
	if err != nil {
		return models.DiscussionPost{}, err
	}

	delivered := s.publisher.Publish(ctx, models.RoomEvent{
		Type:        models.EventNewPost,
		InventoryID: created.InventoryID,
		Post:        &created,
	})

	log.Debug().Str("func", "discussionService.CreatePost").
		Int64("inventory_id", created.InventoryID).
		Int64("post_id", created.ID).
		Int("delivered", delivered).
		Msg("post published")

	return created, nil
}

func (s *discussionService) DeletePost(ctx context.Context, authz models.AuthorizationContext, postID int64) error {
	post, err := s.posts.GetPost(ctx, authz.Inventory.ID, postID)
	if err != nil {
		return err
	}

	if post.UserID != authz.Principal.ID && !authz.Principal.IsAdmin() {
		return ErrNotPostAuthor
	}

	return s.posts.DeletePost(ctx, authz.Inventory.ID, postID)
}
