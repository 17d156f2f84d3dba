package schema

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-inventory-hub/models"
)

// Text slot widths, matching the storage column sizes.
const (
	ShortTextMaxLen = 255
	LongTextMaxLen  = 1024
)

// CoerceValue normalizes raw for storage in a slot of family.
//
// Empty strings for number and boolean slots become nil. Numeric and
// boolean strings are parsed. Text values keep empty strings but are
// checked against the slot width.
func CoerceValue(family models.FieldType, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	switch family {
	case models.FieldTypeShortText, models.FieldTypeLink:
		return coerceText(raw, ShortTextMaxLen)
	case models.FieldTypeLongText:
		return coerceText(raw, LongTextMaxLen)
	case models.FieldTypeNumber:
		return coerceNumber(raw)
	case models.FieldTypeBoolean:
		return coerceBoolean(raw)
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidFieldType, family)
}

// CoerceValues validates every key of values and coerces every value.
// The whole map is rejected on the first failure.
func CoerceValues(values models.SlotValues) (models.SlotValues, error) {
	out := make(models.SlotValues, len(values))
	for key, raw := range values {
		family, err := ResolveSlotType(key)
		if err != nil {
			return nil, err
		}

		v, err := CoerceValue(family, raw)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", key, err)
		}
		out[key] = v
	}
	return out, nil
}

func coerceText(raw any, maxLen int) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected string, got %T", ErrInvalidSlotValue, raw)
	}
	if utf8.RuneCountInString(s) > maxLen {
		return nil, fmt.Errorf("%w: limit is %d characters", ErrSlotValueTooLong, maxLen)
	}
	return s, nil
}

func coerceNumber(raw any) (any, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidSlotValue, v)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: expected number, got %T", ErrInvalidSlotValue, raw)
}

func coerceBoolean(raw any) (any, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidSlotValue, v)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: expected boolean, got %T", ErrInvalidSlotValue, raw)
}
