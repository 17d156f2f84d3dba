package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/validators"
	"github.com/MKhiriev/go-inventory-hub/models"
)

// The validation services reject malformed requests before the wrapped
// service resolves access or touches storage. Methods without input to
// check fall through to the inner service.

type InventoryValidationService struct {
	InventoryService
	validator validators.Validator
}

func NewInventoryValidationService() InventoryServiceWrapper {
	return &InventoryValidationService{validator: validators.NewInventoryValidator()}
}

func (v *InventoryValidationService) Wrap(inner InventoryService) InventoryService {
	v.InventoryService = inner
	return v
}

func (v *InventoryValidationService) CreateInventory(ctx context.Context, principal models.Principal, req models.InventoryCreateRequest, image *models.ImageUpload) (models.Inventory, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Inventory{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.InventoryService.CreateInventory(ctx, principal, req, image)
}

func (v *InventoryValidationService) UpdateInventory(ctx context.Context, authz models.AuthorizationContext, req models.InventoryUpdateRequest) (models.Inventory, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Inventory{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.InventoryService.UpdateInventory(ctx, authz, req)
}

func (v *InventoryValidationService) ReplaceImage(ctx context.Context, authz models.AuthorizationContext, expectedVersion int64, image models.ImageUpload) (models.Inventory, error) {
	if err := v.validator.Validate(ctx, models.InventoryUpdateRequest{Version: expectedVersion}, validators.FieldVersion); err != nil {
		return models.Inventory{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.InventoryService.ReplaceImage(ctx, authz, expectedVersion, image)
}

type ItemValidationService struct {
	ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{validator: validators.NewInventoryValidator()}
}

func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.ItemService = inner
	return v
}

func (v *ItemValidationService) UpdateItem(ctx context.Context, authz models.AuthorizationContext, itemID int64, req models.ItemUpdateRequest) (models.Item, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.ItemService.UpdateItem(ctx, authz, itemID, req)
}

func (v *ItemValidationService) DeleteItem(ctx context.Context, authz models.AuthorizationContext, itemID, expectedVersion int64) error {
	if err := v.validator.Validate(ctx, models.ItemUpdateRequest{Version: expectedVersion}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.ItemService.DeleteItem(ctx, authz, itemID, expectedVersion)
}

type FieldValidationService struct {
	FieldService
	validator validators.Validator
}

func NewFieldValidationService() FieldServiceWrapper {
	return &FieldValidationService{validator: validators.NewInventoryValidator()}
}

func (v *FieldValidationService) Wrap(inner FieldService) FieldService {
	v.FieldService = inner
	return v
}

func (v *FieldValidationService) UpdateFields(ctx context.Context, authz models.AuthorizationContext, patches []models.FieldDefinitionPatch) ([]models.FieldDefinition, error) {
	if err := v.validator.Validate(ctx, patches); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.FieldService.UpdateFields(ctx, authz, patches)
}

type AccessValidationService struct {
	AccessService
	validator validators.Validator
}

func NewAccessValidationService() AccessServiceWrapper {
	return &AccessValidationService{validator: validators.NewInventoryValidator()}
}

func (v *AccessValidationService) Wrap(inner AccessService) AccessService {
	v.AccessService = inner
	return v
}

func (v *AccessValidationService) Grant(ctx context.Context, authz models.AuthorizationContext, req models.GrantRequest) (models.AccessGrant, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AccessGrant{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.AccessService.Grant(ctx, authz, req)
}

func (v *AccessValidationService) Revoke(ctx context.Context, authz models.AuthorizationContext, req models.RevokeRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.AccessService.Revoke(ctx, authz, req)
}

type DiscussionValidationService struct {
	DiscussionService
	validator validators.Validator
}

func NewDiscussionValidationService() DiscussionServiceWrapper {
	return &DiscussionValidationService{validator: validators.NewInventoryValidator()}
}

func (v *DiscussionValidationService) Wrap(inner DiscussionService) DiscussionService {
	v.DiscussionService = inner
	return v
}

func (v *DiscussionValidationService) CreatePost(ctx context.Context, authz models.AuthorizationContext, req models.PostCreateRequest) (models.DiscussionPost, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DiscussionPost{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.DiscussionService.CreatePost(ctx, authz, req)
}
