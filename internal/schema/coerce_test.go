package schema

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-inventory-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name    string
		family  models.FieldType
		raw     any
		want    any
		wantErr error
	}{
		{name: "nil stays nil", family: models.FieldTypeNumber, raw: nil, want: nil},
		{name: "empty number is null", family: models.FieldTypeNumber, raw: "", want: nil},
		{name: "blank number is null", family: models.FieldTypeNumber, raw: "  ", want: nil},
		{name: "numeric string", family: models.FieldTypeNumber, raw: "12.5", want: 12.5},
		{name: "json number", family: models.FieldTypeNumber, raw: float64(3), want: float64(3)},
		{name: "int number", family: models.FieldTypeNumber, raw: 7, want: float64(7)},
		{name: "bad number", family: models.FieldTypeNumber, raw: "abc", wantErr: ErrInvalidSlotValue},
		{name: "bool for number", family: models.FieldTypeNumber, raw: true, wantErr: ErrInvalidSlotValue},
		{name: "empty boolean is null", family: models.FieldTypeBoolean, raw: "", want: nil},
		{name: "boolean string", family: models.FieldTypeBoolean, raw: "true", want: true},
		{name: "boolean value", family: models.FieldTypeBoolean, raw: false, want: false},
		{name: "bad boolean", family: models.FieldTypeBoolean, raw: "maybe", wantErr: ErrInvalidSlotValue},
		{name: "empty text kept", family: models.FieldTypeShortText, raw: "", want: ""},
		{name: "text", family: models.FieldTypeLongText, raw: "hello", want: "hello"},
		{name: "link", family: models.FieldTypeLink, raw: "https://example.com", want: "https://example.com"},
		{name: "number for text", family: models.FieldTypeShortText, raw: 1.0, wantErr: ErrInvalidSlotValue},
		{name: "short text too long", family: models.FieldTypeShortText, raw: strings.Repeat("a", ShortTextMaxLen+1), wantErr: ErrSlotValueTooLong},
		{name: "long text at limit", family: models.FieldTypeLongText, raw: strings.Repeat("a", LongTextMaxLen), want: strings.Repeat("a", LongTextMaxLen)},
		{name: "unknown family", family: "date", raw: "x", wantErr: ErrInvalidFieldType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceValue(tt.family, tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceValues_AllValid(t *testing.T) {
	got, err := CoerceValues(models.SlotValues{
		"sl_string_1": "Hammer",
		"number_1":    "",
		"number_2":    "4",
		"boolean_1":   "false",
	})

	require.NoError(t, err)
	assert.Equal(t, models.SlotValues{
		"sl_string_1": "Hammer",
		"number_1":    nil,
		"number_2":    float64(4),
		"boolean_1":   false,
	}, got)
}

func TestCoerceValues_InvalidKeyRejectsAll(t *testing.T) {
	got, err := CoerceValues(models.SlotValues{
		"sl_string_1": "ok",
		"number_4":    "1",
	})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrInvalidSlotKey)
}

func TestCoerceValues_InvalidValueNamesSlot(t *testing.T) {
	_, err := CoerceValues(models.SlotValues{"boolean_2": "nope"})

	require.ErrorIs(t, err, ErrInvalidSlotValue)
	assert.Contains(t, err.Error(), "boolean_2")
}
