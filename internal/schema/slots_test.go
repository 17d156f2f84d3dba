package schema

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-inventory-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// ParseSlotKey / ResolveSlotType
// ─────────────────────────────────────────────

func TestResolveSlotType(t *testing.T) {
	tests := []struct {
		name    string
		key     models.SlotKey
		want    models.FieldType
		wantErr bool
	}{
		{name: "short text", key: "sl_string_1", want: models.FieldTypeShortText},
		{name: "long text", key: "ml_string_3", want: models.FieldTypeLongText},
		{name: "number", key: "number_2", want: models.FieldTypeNumber},
		{name: "link", key: "link_1", want: models.FieldTypeLink},
		{name: "boolean", key: "boolean_3", want: models.FieldTypeBoolean},
		{name: "index above slot capacity", key: "boolean_4", wantErr: true},
		{name: "index zero", key: "number_0", wantErr: true},
		{name: "unknown family", key: "date_1", wantErr: true},
		{name: "missing index", key: "number_", wantErr: true},
		{name: "no separator", key: "number", wantErr: true},
		{name: "empty", key: "", wantErr: true},
		{name: "non numeric index", key: "link_x", wantErr: true},
		{name: "bare family prefix", key: "string_1", wantErr: true},
		{name: "zero padded index", key: "number_01", wantErr: true},
		{name: "signed index", key: "number_+1", wantErr: true},
		{name: "trailing garbage", key: "number_1x", wantErr: true},
		{name: "long zero padded index", key: "sl_string_001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSlotType(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidSlotKey))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSlotKey_ReturnsIndex(t *testing.T) {
	family, index, err := ParseSlotKey("ml_string_2")

	require.NoError(t, err)
	assert.Equal(t, models.FieldTypeLongText, family)
	assert.Equal(t, 2, index)
}

func TestAllSlotKeys_FixedCapacity(t *testing.T) {
	keys := AllSlotKeys()

	require.Len(t, keys, 15)
	assert.Equal(t, models.SlotKey("sl_string_1"), keys[0])
	assert.Equal(t, models.SlotKey("boolean_3"), keys[14])

	seen := make(map[models.SlotKey]bool, len(keys))
	for _, key := range keys {
		_, err := ResolveSlotType(key)
		require.NoError(t, err)
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}

func TestColumn(t *testing.T) {
	col, err := Column("number_1")
	require.NoError(t, err)
	assert.Equal(t, "c_number_1", col)

	for _, key := range []models.SlotKey{"number_9", "number_01", "number_+1", "sl_string_001"} {
		_, err = Column(key)
		assert.ErrorIs(t, err, ErrInvalidSlotKey, key)
	}
}

func TestColumns_MatchesAllSlotKeys(t *testing.T) {
	cols := Columns()
	keys := AllSlotKeys()

	require.Len(t, cols, len(keys))
	for i, key := range keys {
		assert.Equal(t, "c_"+string(key), cols[i])
	}
}

// ─────────────────────────────────────────────
// ValidateFieldType
// ─────────────────────────────────────────────

func TestValidateFieldType(t *testing.T) {
	number := models.FieldTypeNumber
	boolean := models.FieldTypeBoolean

	assert.NoError(t, ValidateFieldType("number_1", nil))
	assert.NoError(t, ValidateFieldType("number_1", &number))
	assert.ErrorIs(t, ValidateFieldType("number_1", &boolean), ErrInvalidFieldType)
	assert.ErrorIs(t, ValidateFieldType("number_7", &number), ErrInvalidSlotKey)
}
