package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-hub/internal/access"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/schema"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type itemService struct {
	items  store.ItemRepository
	fields store.FieldDefinitionRepository

	logger *logger.Logger
}

// NewItemService constructs the item service. Item writes are
// public-eligible: the public flag of an inventory opens them to every
// authenticated principal.
func NewItemService(items store.ItemRepository, fields store.FieldDefinitionRepository, logger *logger.Logger) ItemService {
	return &itemService{
		items:  items,
		fields: fields,
		logger: logger,
	}
}

func (s *itemService) ListItems(ctx context.Context, inventoryID int64) (models.ItemList, error) {
	defs, err := s.fields.ListFieldDefinitions(ctx, inventoryID)
	if err != nil {
		return models.ItemList{}, err
	}

	items, err := s.items.ListItems(ctx, inventoryID)
	if err != nil {
		return models.ItemList{}, err
	}

	return models.ItemList{
		Fields: schema.EnabledFields(defs),
		Items:  items,
	}, nil
}

func (s *itemService) Stats(ctx context.Context, inventoryID int64) ([]models.FieldStats, error) {
	defs, err := s.fields.ListFieldDefinitions(ctx, inventoryID)
	if err != nil {
		return nil, err
	}

	labels := make(map[models.SlotKey]string)
	var keys []models.SlotKey
	for _, def := range schema.EnabledFields(defs) {
		if def.FieldType != models.FieldTypeNumber {
			continue
		}
		keys = append(keys, def.SlotKey)
		labels[def.SlotKey] = def.Label
	}

	stats, err := s.items.NumericStats(ctx, inventoryID, keys)
	if err != nil {
		return nil, err
	}
	for i := range stats {
		stats[i].Label = labels[stats[i].SlotKey]
	}
	return stats, nil
}

func (s *itemService) CreateItem(ctx context.Context, authz models.AuthorizationContext, req models.ItemCreateRequest) (models.Item, error) {
	if err := access.Require(authz, models.AccessModePublicEligible); err != nil {
		return models.Item{}, err
	}

	values, err := schema.CoerceValues(req.Values)
	if err != nil {
		return models.Item{}, err
	}

	return s.items.CreateItem(ctx, authz.Inventory.ID, values)
}

func (s *itemService) UpdateItem(ctx context.Context, authz models.AuthorizationContext, itemID int64, req models.ItemUpdateRequest) (models.Item, error) {
	if err := access.Require(authz, models.AccessModePublicEligible); err != nil {
		return models.Item{}, err
	}

	values, err := schema.CoerceValues(req.Values)
	if err != nil {
		return models.Item{}, err
	}

	return s.items.UpdateItem(ctx, authz.Inventory.ID, itemID, req.Version, values)
}

func (s *itemService) DeleteItem(ctx context.Context, authz models.AuthorizationContext, itemID, expectedVersion int64) error {
	if err := access.Require(authz, models.AccessModePublicEligible); err != nil {
		return err
	}
	return s.items.DeleteItem(ctx, authz.Inventory.ID, itemID, expectedVersion)
}
