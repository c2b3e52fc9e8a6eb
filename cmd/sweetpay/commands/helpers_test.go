package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	t.Run("parses typed values", func(t *testing.T) {
		fields, err := parseFields([]string{
			"amount=100",
			"currency=SEK",
			"capture=true",
			`items=["a","b"]`,
		})
		require.NoError(t, err)

		assert.Equal(t, map[string]interface{}{
			"amount":   float64(100),
			"currency": "SEK",
			"capture":  true,
			"items":    []interface{}{"a", "b"},
		}, fields)
	})

	t.Run("keeps values with an equals sign", func(t *testing.T) {
		fields, err := parseFields([]string{"redirect=https://example.com/?ok=1"})
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"redirect": "https://example.com/?ok=1"}, fields)
	})

	t.Run("rejects malformed fields", func(t *testing.T) {
		_, err := parseFields([]string{"no-separator"})
		require.ErrorIs(t, err, ErrInvalidFieldFormat)

		_, err = parseFields([]string{"=value"})
		require.ErrorIs(t, err, ErrInvalidFieldFormat)
	})

	t.Run("rejects an empty list", func(t *testing.T) {
		_, err := parseFields(nil)
		require.ErrorIs(t, err, ErrNoFieldsSpecified)
	})
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "plain", formatValue("plain"))
	assert.Equal(t, "42", formatValue(float64(42)))
	assert.Equal(t, "true", formatValue(true))
	assert.Equal(t, `{"nested":"value"}`, formatValue(map[string]interface{}{"nested": "value"}))
	assert.Equal(t, `["a","b"]`, formatValue([]interface{}{"a", "b"}))
}
