package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-inventory-hub/internal/schema"
	"github.com/MKhiriev/go-inventory-hub/models"
)

// Field names accepted by [InventoryValidator.Validate] to restrict
// validation to a subset of checks.
const (
	FieldTitle        = "title"
	FieldVersion      = "version"
	FieldPatch        = "patch"
	FieldTags         = "tags"
	FieldContent      = "content"
	FieldTargetUserID = "target_user_id"
	FieldUserIDs      = "user_ids"
	FieldSlotKeys     = "slot_keys"
)

// Limits enforced on free-form input.
const (
	MaxTitleLength   = 255
	MaxTags          = 20
	MaxTagLength     = 50
	MaxContentLength = 4000
)

// InventoryValidator checks request shapes of the inventory API before
// they reach authorization and storage.
type InventoryValidator struct {
}

func NewInventoryValidator() Validator {
	return &InventoryValidator{}
}

func (v *InventoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.InventoryCreateRequest:
		return v.validateCreateInventory(value, fields...)
	case *models.InventoryCreateRequest:
		return v.validateCreateInventory(*value, fields...)

	case models.InventoryUpdateRequest:
		return v.validateUpdateInventory(value, fields...)
	case *models.InventoryUpdateRequest:
		return v.validateUpdateInventory(*value, fields...)

	case models.ItemUpdateRequest:
		return v.validateVersion(value.Version)

	case models.PostCreateRequest:
		return v.validateContent(value.Content)

	case models.GrantRequest:
		if strings.TrimSpace(value.TargetUserID) == "" {
			return ErrEmptyUserID
		}
		return nil

	case models.RevokeRequest:
		return v.validateUserIDs(value.UserIDs)

	case []models.FieldDefinitionPatch:
		return v.validateFieldPatches(value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *InventoryValidator) validateCreateInventory(req models.InventoryCreateRequest, fields ...string) error {
	if want(fields, FieldTitle) {
		if err := v.validateTitle(req.Title); err != nil {
			return err
		}
	}
	if want(fields, FieldTags) {
		if err := v.validateTags(req.Tags); err != nil {
			return err
		}
	}
	return nil
}

func (v *InventoryValidator) validateUpdateInventory(req models.InventoryUpdateRequest, fields ...string) error {
	if want(fields, FieldVersion) {
		if err := v.validateVersion(req.Version); err != nil {
			return err
		}
	}
	if want(fields, FieldPatch) && req.InventoryPatch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if want(fields, FieldTitle) && req.Title != nil {
		if err := v.validateTitle(*req.Title); err != nil {
			return err
		}
	}
	if want(fields, FieldTags) && req.Tags != nil {
		if err := v.validateTags(*req.Tags); err != nil {
			return err
		}
	}
	return nil
}

func (v *InventoryValidator) validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func (v *InventoryValidator) validateTags(tags []string) error {
	if len(tags) > MaxTags {
		return ErrTooManyTags
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(strings.TrimSpace(tag)) > MaxTagLength {
			return fmt.Errorf("%w: %q", ErrTagTooLong, tag)
		}
	}
	return nil
}

func (v *InventoryValidator) validateVersion(version int64) error {
	if version <= 0 {
		return ErrInvalidVersion
	}
	return nil
}

func (v *InventoryValidator) validateContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}

func (v *InventoryValidator) validateUserIDs(ids []string) error {
	if len(ids) == 0 {
		return ErrEmptyUserIDs
	}
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return ErrEmptyUserID
		}
	}
	return nil
}

// validateFieldPatches rejects the whole batch when any entry is invalid.
func (v *InventoryValidator) validateFieldPatches(patches []models.FieldDefinitionPatch) error {
	if len(patches) == 0 {
		return ErrEmptyFieldPatches
	}

	seen := make(map[models.SlotKey]struct{}, len(patches))
	for _, p := range patches {
		if err := schema.ValidateFieldType(p.SlotKey, p.FieldType); err != nil {
			return fmt.Errorf("%s: %w", p.SlotKey, err)
		}
		if _, dup := seen[p.SlotKey]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateSlotKey, p.SlotKey)
		}
		seen[p.SlotKey] = struct{}{}

		if p.Label != nil && p.IsEnabled != nil && *p.IsEnabled && strings.TrimSpace(*p.Label) == "" {
			return fmt.Errorf("%w: %s", ErrEmptyLabel, p.SlotKey)
		}
	}
	return nil
}

func want(fields []string, name string) bool {
	return len(fields) == 0 || slices.Contains(fields, name)
}
