package schema

import "errors"

var (
	// ErrInvalidSlotKey is returned for a slot key outside the fixed slot space.
	ErrInvalidSlotKey = errors.New("invalid slot key")

	// ErrInvalidFieldType is returned when a declared field type does not match
	// the family of the slot it addresses.
	ErrInvalidFieldType = errors.New("invalid field type")

	// ErrInvalidSlotValue is returned when a value cannot be stored in the
	// family of its slot.
	ErrInvalidSlotValue = errors.New("invalid slot value")

	// ErrSlotValueTooLong is returned when a text value exceeds its slot width.
	ErrSlotValueTooLong = errors.New("slot value is too long")
)
