package timeline

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_PaletteComplete(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 8)

	seen := map[string]bool{}
	for _, c := range cats {
		assert.NotEmpty(t, c.Label())
		assert.Regexp(t, `^#[0-9A-F]{6}$`, c.Color())
		assert.False(t, seen[c.String()], "duplicate name %s", c)
		seen[c.String()] = true
	}
	assert.Equal(t, "#06B6D4", Achievement.Color())
	assert.Equal(t, "#8B5A2B", Other.Color())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Travel ")
	require.NoError(t, err)
	assert.Equal(t, Travel, c)

	_, err = ParseCategory("hobby")
	assert.True(t, errors.Is(err, ErrUnknownCategory))

	_, err = ParseCategories([]string{"family", "nope"})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategory_JSONText(t *testing.T) {
	b, err := json.Marshal(struct {
		C Category `json:"c"`
	}{Education})
	require.NoError(t, err)
	assert.JSONEq(t, `{"c":"education"}`, string(b))

	var out struct {
		C Category `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"c":"health"}`), &out))
	assert.Equal(t, Health, out.C)

	assert.Error(t, json.Unmarshal([]byte(`{"c":"x"}`), &out))
	_, err = Category(42).MarshalText()
	assert.Error(t, err)
}
