package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/access"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/schema"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type fieldService struct {
	fields store.FieldDefinitionRepository

	logger *logger.Logger
}

func NewFieldService(fields store.FieldDefinitionRepository, logger *logger.Logger) FieldService {
	return &fieldService{
		fields: fields,
		logger: logger,
	}
}

func (s *fieldService) ListFields(ctx context.Context, inventoryID int64, enabledOnly bool) ([]models.FieldDefinition, error) {
	defs, err := s.fields.ListFieldDefinitions(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	if enabledOnly {
		return schema.EnabledFields(defs), nil
	}
	return defs, nil
}

func (s *fieldService) UpdateFields(ctx context.Context, authz models.AuthorizationContext, patches []models.FieldDefinitionPatch) ([]models.FieldDefinition, error) {
	if err := access.Require(authz, models.AccessModePrivate); err != nil {
		return nil, err
	}

	// every entry is checked before anything is written
	for _, p := range patches {
		if err := schema.ValidateFieldType(p.SlotKey, p.FieldType); err != nil {
			return nil, fmt.Errorf("%s: %w", p.SlotKey, err)
		}
	}

	if err := s.fields.UpsertFieldDefinitions(ctx, authz.Inventory.ID, patches); err != nil {
		return nil, err
	}

	return s.fields.ListFieldDefinitions(ctx, authz.Inventory.ID)
}
