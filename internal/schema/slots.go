package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-inventory-hub/models"
)

// SlotsPerFamily is the number of physical slots of each type family.
const SlotsPerFamily = 3

// Families lists the type families in display priority order.
var Families = []models.FieldType{
	models.FieldTypeShortText,
	models.FieldTypeLongText,
	models.FieldTypeNumber,
	models.FieldTypeLink,
	models.FieldTypeBoolean,
}

// columnPrefix is prepended to a slot key to get its storage column.
const columnPrefix = "c_"

// ParseSlotKey splits key into its family and 1-based index.
//
// Returns ErrInvalidSlotKey if the family is unknown, the index is
// outside 1..SlotsPerFamily, or key is not in canonical form ("number_01"
// and "number_+1" are rejected, only "number_1" names that slot).
func ParseSlotKey(key models.SlotKey) (models.FieldType, int, error) {
	raw := string(key)
	sep := strings.LastIndexByte(raw, '_')
	if sep <= 0 || sep == len(raw)-1 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidSlotKey, raw)
	}

	family := models.FieldType(raw[:sep])
	if familyRank(family) < 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidSlotKey, raw)
	}

	index, err := strconv.Atoi(raw[sep+1:])
	if err != nil || index < 1 || index > SlotsPerFamily {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidSlotKey, raw)
	}
	if SlotKeyFor(family, index) != key {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidSlotKey, raw)
	}

	return family, index, nil
}

// ResolveSlotType returns the type family addressed by key.
func ResolveSlotType(key models.SlotKey) (models.FieldType, error) {
	family, _, err := ParseSlotKey(key)
	return family, err
}

// SlotKeyFor builds the slot key for family and index without validation.
func SlotKeyFor(family models.FieldType, index int) models.SlotKey {
	return models.SlotKey(string(family) + "_" + strconv.Itoa(index))
}

// AllSlotKeys returns every slot key in display priority order.
func AllSlotKeys() []models.SlotKey {
	keys := make([]models.SlotKey, 0, len(Families)*SlotsPerFamily)
	for _, family := range Families {
		for i := 1; i <= SlotsPerFamily; i++ {
			keys = append(keys, SlotKeyFor(family, i))
		}
	}
	return keys
}

// Column returns the storage column that backs key.
func Column(key models.SlotKey) (string, error) {
	if _, _, err := ParseSlotKey(key); err != nil {
		return "", err
	}
	return columnPrefix + string(key), nil
}

// Columns returns the storage columns of all slots in AllSlotKeys order.
func Columns() []string {
	keys := AllSlotKeys()
	cols := make([]string, len(keys))
	for i, key := range keys {
		cols[i] = columnPrefix + string(key)
	}
	return cols
}

// ValidateFieldType checks that declared, when given, matches the family
// of key.
func ValidateFieldType(key models.SlotKey, declared *models.FieldType) error {
	family, err := ResolveSlotType(key)
	if err != nil {
		return err
	}
	if declared != nil && *declared != family {
		return fmt.Errorf("%w: %q cannot be bound to %q", ErrInvalidFieldType, *declared, key)
	}
	return nil
}

func familyRank(family models.FieldType) int {
	for i, f := range Families {
		if f == family {
			return i
		}
	}
	return -1
}
