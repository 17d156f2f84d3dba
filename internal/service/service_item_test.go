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
	"github.com/MKhiriev/go-inventory-hub/internal/schema"
	"github.com/MKhiriev/go-inventory-hub/models"
)

func newItemFixture(t *testing.T) (*mock.MockItemRepository, *mock.MockFieldDefinitionRepository, ItemService) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockItemRepository(ctrl)
	fields := mock.NewMockFieldDefinitionRepository(ctrl)
	return items, fields, NewItemService(items, fields, logger.Nop())
}

func TestItemService_ListItems_OnlyEnabledFieldsInOrder(t *testing.T) {
	items, fields, svc := newItemFixture(t)

	fields.EXPECT().ListFieldDefinitions(gomock.Any(), int64(1)).Return([]models.FieldDefinition{
		{SlotKey: "number_1", FieldType: models.FieldTypeNumber, Label: "Price", IsEnabled: true, DisplayOrder: 2},
		{SlotKey: "sl_string_1", FieldType: models.FieldTypeShortText, Label: "Name", IsEnabled: true, DisplayOrder: 1},
		{SlotKey: "boolean_1", FieldType: models.FieldTypeBoolean, Label: "Hidden", IsEnabled: false, DisplayOrder: 0},
	}, nil)
	items.EXPECT().ListItems(gomock.Any(), int64(1)).Return([]models.Item{{ID: 10, Version: 1}}, nil)

	got, err := svc.ListItems(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got.Fields, 2)
	assert.Equal(t, models.SlotKey("sl_string_1"), got.Fields[0].SlotKey)
	assert.Equal(t, models.SlotKey("number_1"), got.Fields[1].SlotKey)
	assert.Len(t, got.Items, 1)
}

func TestItemService_Stats_UsesEnabledNumericFields(t *testing.T) {
	items, fields, svc := newItemFixture(t)

	fields.EXPECT().ListFieldDefinitions(gomock.Any(), int64(1)).Return([]models.FieldDefinition{
		{SlotKey: "number_1", FieldType: models.FieldTypeNumber, Label: "Price", IsEnabled: true},
		{SlotKey: "number_2", FieldType: models.FieldTypeNumber, Label: "Weight", IsEnabled: false},
		{SlotKey: "sl_string_1", FieldType: models.FieldTypeShortText, Label: "Name", IsEnabled: true},
	}, nil)
	items.EXPECT().
		NumericStats(gomock.Any(), int64(1), []models.SlotKey{"number_1"}).
		Return([]models.FieldStats{{SlotKey: "number_1", Count: 2, Avg: ptr(1.5)}}, nil)

	got, err := svc.Stats(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Price", got[0].Label)
}

func TestItemService_CreateItem(t *testing.T) {
	inv := models.Inventory{ID: 4, CreatorID: "owner", IsPublic: true}

	t.Run("public inventory accepts any principal", func(t *testing.T) {
		items, _, svc := newItemFixture(t)
		authz := readerAuthz(inv)
		authz.PublicWriteAccess = true

		items.EXPECT().
			CreateItem(gomock.Any(), int64(4), models.SlotValues{"number_1": 3.5, "boolean_1": true}).
			Return(models.Item{ID: 1, Version: 1}, nil)

		got, err := svc.CreateItem(context.Background(), authz, models.ItemCreateRequest{
			Values: models.SlotValues{"number_1": "3.5", "boolean_1": "true"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Version)
	})

	t.Run("invalid slot key", func(t *testing.T) {
		_, _, svc := newItemFixture(t)

		_, err := svc.CreateItem(context.Background(), ownerAuthz(inv), models.ItemCreateRequest{
			Values: models.SlotValues{"number_9": 1.0},
		})
		require.ErrorIs(t, err, schema.ErrInvalidSlotKey)
	})

	t.Run("non canonical slot key", func(t *testing.T) {
		_, _, svc := newItemFixture(t)

		_, err := svc.CreateItem(context.Background(), ownerAuthz(inv), models.ItemCreateRequest{
			Values: models.SlotValues{"number_01": 1.0},
		})
		require.ErrorIs(t, err, schema.ErrInvalidSlotKey)
	})

	t.Run("non numeric value", func(t *testing.T) {
		_, _, svc := newItemFixture(t)

		_, err := svc.CreateItem(context.Background(), ownerAuthz(inv), models.ItemCreateRequest{
			Values: models.SlotValues{"number_1": "abc"},
		})
		require.ErrorIs(t, err, schema.ErrInvalidSlotValue)
	})

	t.Run("private inventory denies readers", func(t *testing.T) {
		_, _, svc := newItemFixture(t)

		_, err := svc.CreateItem(context.Background(), readerAuthz(inv), models.ItemCreateRequest{})
		require.ErrorIs(t, err, access.ErrForbidden)
	})
}

func TestItemService_UpdateItem_ForwardsVersion(t *testing.T) {
	items, _, svc := newItemFixture(t)
	inv := models.Inventory{ID: 4, CreatorID: "owner"}

	items.EXPECT().
		UpdateItem(gomock.Any(), int64(4), int64(11), int64(3), models.SlotValues{"sl_string_1": nil}).
		Return(models.Item{ID: 11, Version: 4}, nil)

	got, err := svc.UpdateItem(context.Background(), ownerAuthz(inv), 11, models.ItemUpdateRequest{
		Version: 3,
		Values:  models.SlotValues{"sl_string_1": nil},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Version)
}

func TestItemService_DeleteItem_Forbidden(t *testing.T) {
	_, _, svc := newItemFixture(t)

	err := svc.DeleteItem(context.Background(), readerAuthz(models.Inventory{ID: 4, CreatorID: "owner"}), 11, 3)
	require.ErrorIs(t, err, access.ErrForbidden)
}
