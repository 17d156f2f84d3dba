package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/schema"
	"github.com/MKhiriev/go-inventory-hub/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanInventory(s rowScanner) (models.Inventory, error) {
	var inv models.Inventory
	err := s.Scan(
		&inv.ID,
		&inv.CreatorID,
		&inv.Title,
		&inv.Description,
		&inv.ImageURL,
		&inv.CategoryID,
		&inv.IsPublic,
		&inv.Version,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	return inv, err
}

// slotTargets holds typed scan destinations for every item slot, in
// schema.AllSlotKeys order.
type slotTargets struct {
	keys []models.SlotKey
	dest []any
}

func newSlotTargets() *slotTargets {
	keys := schema.AllSlotKeys()
	dest := make([]any, len(keys))
	for i, key := range keys {
		family, _ := schema.ResolveSlotType(key)
		switch family {
		case models.FieldTypeNumber:
			dest[i] = new(sql.NullFloat64)
		case models.FieldTypeBoolean:
			dest[i] = new(sql.NullBool)
		default:
			dest[i] = new(sql.NullString)
		}
	}
	return &slotTargets{keys: keys, dest: dest}
}

// values returns every slot; NULL slots map to nil.
func (t *slotTargets) values() models.SlotValues {
	out := make(models.SlotValues, len(t.keys))
	for i, key := range t.keys {
		switch v := t.dest[i].(type) {
		case *sql.NullFloat64:
			out[key] = nullable(v.Valid, v.Float64)
		case *sql.NullBool:
			out[key] = nullable(v.Valid, v.Bool)
		case *sql.NullString:
			out[key] = nullable(v.Valid, v.String)
		}
	}
	return out
}

func nullable[T any](valid bool, v T) any {
	if !valid {
		return nil
	}
	return v
}

func scanItem(s rowScanner) (models.Item, error) {
	var item models.Item
	slots := newSlotTargets()

	dest := make([]any, 0, len(slots.dest)+5)
	dest = append(dest, &item.ID, &item.InventoryID)
	dest = append(dest, slots.dest...)
	dest = append(dest, &item.Version, &item.CreatedAt, &item.UpdatedAt)

	if err := s.Scan(dest...); err != nil {
		return models.Item{}, err
	}

	item.Values = slots.values()
	return item, nil
}

func scanFieldDefinition(s rowScanner) (models.FieldDefinition, error) {
	var def models.FieldDefinition
	var key, fieldType string
	err := s.Scan(
		&def.ID,
		&def.InventoryID,
		&key,
		&fieldType,
		&def.Label,
		&def.Description,
		&def.IsEnabled,
		&def.DisplayOrder,
	)
	def.SlotKey = models.SlotKey(key)
	def.FieldType = models.FieldType(fieldType)
	return def, err
}

func scanPost(s rowScanner) (models.DiscussionPost, error) {
	var p models.DiscussionPost
	err := s.Scan(
		&p.ID,
		&p.InventoryID,
		&p.UserID,
		&p.UserEmail,
		&p.UserImageURL,
		&p.Content,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// collectRows scans every row with scan and closes rows.
func collectRows[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0, 16)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return out, nil
}
