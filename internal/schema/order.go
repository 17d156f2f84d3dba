package schema

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/go-inventory-hub/models"
)

// SortFields orders defs in place for rendering: by type family priority,
// then by DisplayOrder ascending, then by slot index.
func SortFields(defs []models.FieldDefinition) {
	slices.SortStableFunc(defs, compareFields)
}

// EnabledFields returns the enabled definitions of defs in display order.
// defs is not modified.
func EnabledFields(defs []models.FieldDefinition) []models.FieldDefinition {
	enabled := make([]models.FieldDefinition, 0, len(defs))
	for _, def := range defs {
		if def.IsEnabled {
			enabled = append(enabled, def)
		}
	}
	SortFields(enabled)
	return enabled
}

func compareFields(a, b models.FieldDefinition) int {
	famA, idxA, _ := ParseSlotKey(a.SlotKey)
	famB, idxB, _ := ParseSlotKey(b.SlotKey)

	if c := cmp.Compare(familyRank(famA), familyRank(famB)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.DisplayOrder, b.DisplayOrder); c != 0 {
		return c
	}
	return cmp.Compare(idxA, idxB)
}
