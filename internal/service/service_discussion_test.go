package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-inventory-hub/internal/access"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/mock"
	"github.com/MKhiriev/go-inventory-hub/models"
)

func TestDiscussionService_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mock.NewMockPostRepository(ctrl)
	publisher := mock.NewMockRoomPublisher(ctrl)
	svc := NewDiscussionService(posts, publisher, logger.Nop())

	inv := models.Inventory{ID: 7, CreatorID: "owner", IsPublic: true}
	authz := models.AuthorizationContext{
		Principal:         models.Principal{ID: "u1", Email: "u1@example.com", ImageURL: "https://img/u1.png"},
		Inventory:         inv,
		PublicWriteAccess: true,
	}

	gomock.InOrder(
		posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.DiscussionPost) (models.DiscussionPost, error) {
				assert.Equal(t, "hello", p.Content)
				assert.Equal(t, "u1@example.com", p.UserEmail)
				require.NotNil(t, p.UserImageURL)
				assert.Equal(t, "https://img/u1.png", *p.UserImageURL)
				p.ID = 100
				return p, nil
			}),
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.RoomEvent) int {
				assert.Equal(t, models.EventNewPost, e.Type)
				assert.Equal(t, int64(7), e.InventoryID)
				require.NotNil(t, e.Post)
				assert.Equal(t, int64(100), e.Post.ID)
				return 2
			}),
	)

	got, err := svc.CreatePost(context.Background(), authz, models.PostCreateRequest{Content: "  hello \n"})
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.ID)
}

func TestDiscussionService_CreatePost_Rejected(t *testing.T) {
	inv := models.Inventory{ID: 7, CreatorID: "owner"}

	tests := []struct {
		name    string
		authz   models.AuthorizationContext
		content string
		wantErr error
	}{
		{name: "blank content", authz: ownerAuthz(inv), content: "   ", wantErr: ErrInvalidDataProvided},
		{name: "private inventory stranger", authz: readerAuthz(inv), content: "hi", wantErr: access.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewDiscussionService(mock.NewMockPostRepository(ctrl), mock.NewMockRoomPublisher(ctrl), logger.Nop())

			_, err := svc.CreatePost(context.Background(), tt.authz, models.PostCreateRequest{Content: tt.content})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDiscussionService_DeletePost(t *testing.T) {
	inv := models.Inventory{ID: 7, CreatorID: "owner"}
	post := models.DiscussionPost{ID: 5, InventoryID: 7, UserID: "author"}

	tests := []struct {
		name      string
		principal models.Principal
		wantErr   error
	}{
		{name: "author", principal: models.Principal{ID: "author"}},
		{name: "admin", principal: models.Principal{ID: "root", Role: models.RoleAdmin}},
		{name: "inventory owner is not the author", principal: models.Principal{ID: "owner"}, wantErr: ErrNotPostAuthor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			posts := mock.NewMockPostRepository(ctrl)
			svc := NewDiscussionService(posts, mock.NewMockRoomPublisher(ctrl), logger.Nop())

			posts.EXPECT().GetPost(gomock.Any(), int64(7), int64(5)).Return(post, nil)
			if tt.wantErr == nil {
				posts.EXPECT().DeletePost(gomock.Any(), int64(7), int64(5)).Return(nil)
			}

			err := svc.DeletePost(context.Background(), models.AuthorizationContext{Principal: tt.principal, Inventory: inv}, 5)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, access.ErrForbidden)
				return
			}
			require.NoError(t, err)
		})
	}
}
