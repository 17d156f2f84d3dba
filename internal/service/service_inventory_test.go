// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-inventory-hub/internal/access"
	"github.com/MKhiriev/go-inventory-hub/internal/imaging"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/mock"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
	"github.com/MKhiriev/go-inventory-hub/models"
)

func ptr[T any](v T) *T { return &v }

func pngUpload(t *testing.T) models.ImageUpload {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return models.ImageUpload{Data: buf.Bytes(), ContentType: "image/png"}
}

func ownerAuthz(inv models.Inventory) models.AuthorizationContext {
	return models.AuthorizationContext{
		Principal:         models.Principal{ID: inv.CreatorID},
		Inventory:         inv,
		WriteAccess:       true,
		PublicWriteAccess: true,
	}
}

func readerAuthz(inv models.Inventory) models.AuthorizationContext {
	return models.AuthorizationContext{
		Principal: models.Principal{ID: "reader"},
		Inventory: inv,
	}
}

type inventoryFixture struct {
	inventories *mock.MockInventoryRepository
	blobs       *mock.MockBlobStorage
	grants      *mock.MockGrantRepository
	svc         InventoryService
}

func newInventoryFixture(t *testing.T) inventoryFixture {
	ctrl := gomock.NewController(t)
	f := inventoryFixture{
		inventories: mock.NewMockInventoryRepository(ctrl),
		blobs:       mock.NewMockBlobStorage(ctrl),
		grants:      mock.NewMockGrantRepository(ctrl),
	}
	resolver := access.NewResolver(f.grants, logger.Nop())
	f.svc = NewInventoryService(f.inventories, f.blobs, resolver, logger.Nop())
	return f
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "nil", in: nil, want: []string{}},
		{name: "trim and lowercase", in: []string{"  Tools ", "GARDEN"}, want: []string{"tools", "garden"}},
		{name: "duplicates keep first position", in: []string{"b", "a", "B", "a"}, want: []string{"b", "a"}},
		{name: "empties dropped", in: []string{"", "  ", "x"}, want: []string{"x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}

func TestInventoryService_CreateInventory(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	f.inventories.EXPECT().
		CreateInventory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.InventoryCreateRequest) (models.Inventory, error) {
			assert.Equal(t, "owner", req.CreatorID)
			assert.Equal(t, "Tools", req.Title)
			assert.Equal(t, []string{"garden"}, req.Tags)
			assert.Nil(t, req.ImageURL)
			return models.Inventory{ID: 1, CreatorID: req.CreatorID, Title: req.Title, Version: 1}, nil
		})

	inv, err := f.svc.CreateInventory(ctx, models.Principal{ID: "owner"}, models.InventoryCreateRequest{
		Title: "  Tools ",
		Tags:  []string{"Garden", "garden "},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inv.Version)
	assert.True(t, inv.WriteAccess)
}

func TestInventoryService_CreateInventory_RemovesImageOnFailure(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()
	dbErr := errors.New("db down")

	gomock.InOrder(
		f.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), imaging.OutputMIME).Return("/files/new.jpg", nil),
		f.inventories.EXPECT().CreateInventory(gomock.Any(), gomock.Any()).Return(models.Inventory{}, dbErr),
		f.blobs.EXPECT().Delete(gomock.Any(), "/files/new.jpg").Return(nil),
	)

	upload := pngUpload(t)
	_, err := f.svc.CreateInventory(ctx, models.Principal{ID: "owner"}, models.InventoryCreateRequest{Title: "x"}, &upload)
	require.ErrorIs(t, err, dbErr)
}

func TestInventoryService_GetInventory_WriteAccess(t *testing.T) {
	inv := models.Inventory{ID: 3, CreatorID: "owner", IsPublic: true, Version: 4}

	tests := []struct {
		name      string
		principal models.Principal
		granted   *bool
		want      bool
	}{
		{name: "owner", principal: models.Principal{ID: "owner"}, want: true},
		{name: "admin", principal: models.Principal{ID: "root", Role: models.RoleAdmin}, want: true},
		{name: "grantee", principal: models.Principal{ID: "g"}, granted: ptr(true), want: true},
		{name: "public flag does not open settings", principal: models.Principal{ID: "other"}, granted: ptr(false), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInventoryFixture(t)
			f.inventories.EXPECT().GetInventory(gomock.Any(), int64(3)).Return(inv, nil)
			if tt.granted != nil {
				f.grants.EXPECT().HasGrant(gomock.Any(), int64(3), tt.principal.ID).Return(*tt.granted, nil)
			}

			got, err := f.svc.GetInventory(context.Background(), tt.principal, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.WriteAccess)
		})
	}
}

func TestInventoryService_UpdateInventory(t *testing.T) {
	inv := models.Inventory{ID: 5, CreatorID: "owner", Version: 2}

	t.Run("forwards the expected version", func(t *testing.T) {
		f := newInventoryFixture(t)
		f.inventories.EXPECT().
			UpdateInventory(gomock.Any(), int64(5), int64(2), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ int64, patch models.InventoryPatch) (models.Inventory, error) {
				assert.Equal(t, "New", *patch.Title)
				assert.Equal(t, []string{"a"}, *patch.Tags)
				assert.Nil(t, patch.ImageURL)
				return models.Inventory{ID: 5, Title: "New", Version: 3}, nil
			})

		got, err := f.svc.UpdateInventory(context.Background(), ownerAuthz(inv), models.InventoryUpdateRequest{
			Version: 2,
			InventoryPatch: models.InventoryPatch{
				Title:    ptr(" New "),
				Tags:     ptr([]string{"A", "a"}),
				ImageURL: ptr("/files/sneaky.jpg"),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Version)
		assert.True(t, got.WriteAccess)
	})

	t.Run("conflict is passed through", func(t *testing.T) {
		f := newInventoryFixture(t)
		f.inventories.EXPECT().
			UpdateInventory(gomock.Any(), int64(5), int64(1), gomock.Any()).
			Return(models.Inventory{}, &store.ConflictError{ID: 5, ExpectedVersion: 1, CurrentVersion: 2})

		_, err := f.svc.UpdateInventory(context.Background(), ownerAuthz(inv), models.InventoryUpdateRequest{
			Version:        1,
			InventoryPatch: models.InventoryPatch{Title: ptr("x")},
		})
		require.ErrorIs(t, err, store.ErrVersionConflict)
	})

	t.Run("forbidden without private write access", func(t *testing.T) {
		f := newInventoryFixture(t)
		authz := readerAuthz(inv)
		authz.PublicWriteAccess = true

		_, err := f.svc.UpdateInventory(context.Background(), authz, models.InventoryUpdateRequest{
			Version:        2,
			InventoryPatch: models.InventoryPatch{Title: ptr("x")},
		})
		require.ErrorIs(t, err, access.ErrForbidden)
	})
}

func TestInventoryService_ReplaceImage(t *testing.T) {
	old := "/files/old.jpg"
	inv := models.Inventory{ID: 9, CreatorID: "owner", Version: 7, ImageURL: &old}

	t.Run("success removes the previous image", func(t *testing.T) {
		f := newInventoryFixture(t)
		gomock.InOrder(
			f.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), imaging.OutputMIME).Return("/files/new.jpg", nil),
			f.inventories.EXPECT().
				UpdateInventory(gomock.Any(), int64(9), int64(7), models.InventoryPatch{ImageURL: ptr("/files/new.jpg")}).
				Return(models.Inventory{ID: 9, Version: 8, ImageURL: ptr("/files/new.jpg")}, nil),
			f.blobs.EXPECT().Delete(gomock.Any(), old).Return(nil),
		)

		got, err := f.svc.ReplaceImage(context.Background(), ownerAuthz(inv), 7, pngUpload(t))
		require.NoError(t, err)
		assert.Equal(t, int64(8), got.Version)
	})

	t.Run("conflict removes the new image and keeps the old one", func(t *testing.T) {
		f := newInventoryFixture(t)
		gomock.InOrder(
			f.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), imaging.OutputMIME).Return("/files/new.jpg", nil),
			f.inventories.EXPECT().
				UpdateInventory(gomock.Any(), int64(9), int64(6), gomock.Any()).
				Return(models.Inventory{}, &store.ConflictError{ID: 9, ExpectedVersion: 6, CurrentVersion: 7}),
			f.blobs.EXPECT().Delete(gomock.Any(), "/files/new.jpg").Return(nil),
		)

		_, err := f.svc.ReplaceImage(context.Background(), ownerAuthz(inv), 6, pngUpload(t))
		require.ErrorIs(t, err, store.ErrVersionConflict)
	})

	t.Run("unsupported format never reaches storage", func(t *testing.T) {
		f := newInventoryFixture(t)
		_, err := f.svc.ReplaceImage(context.Background(), ownerAuthz(inv), 7, models.ImageUpload{
			Data:        []byte("GIF89a not really"),
			ContentType: "image/gif",
		})
		require.ErrorIs(t, err, imaging.ErrUnsupportedImage)
	})

	t.Run("storage failure is an upstream error", func(t *testing.T) {
		f := newInventoryFixture(t)
		f.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))

		_, err := f.svc.ReplaceImage(context.Background(), ownerAuthz(inv), 7, pngUpload(t))
		require.ErrorIs(t, err, ErrUpstreamUnavailable)
	})

	t.Run("forbidden", func(t *testing.T) {
		f := newInventoryFixture(t)
		_, err := f.svc.ReplaceImage(context.Background(), readerAuthz(inv), 7, pngUpload(t))
		require.ErrorIs(t, err, access.ErrForbidden)
	})
}

func TestInventoryService_DeleteInventory(t *testing.T) {
	img := "/files/cover.jpg"
	inv := models.Inventory{ID: 2, CreatorID: "owner", ImageURL: &img}

	t.Run("owner", func(t *testing.T) {
		f := newInventoryFixture(t)
		f.inventories.EXPECT().DeleteInventory(gomock.Any(), int64(2)).Return(nil)
		f.blobs.EXPECT().Delete(gomock.Any(), img).Return(store.ErrBlobNotFound)

		require.NoError(t, f.svc.DeleteInventory(context.Background(), ownerAuthz(inv)))
	})

	t.Run("grantee cannot delete", func(t *testing.T) {
		f := newInventoryFixture(t)
		authz := readerAuthz(inv)
		authz.WriteAccess = true

		err := f.svc.DeleteInventory(context.Background(), authz)
		require.ErrorIs(t, err, access.ErrForbidden)
	})
}

func TestInventoryService_SearchInventories_EmptyQuery(t *testing.T) {
	f := newInventoryFixture(t)

	got, err := f.svc.SearchInventories(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
