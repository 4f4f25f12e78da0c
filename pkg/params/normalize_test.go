package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harun/toolbelt/pkg/tool"
)

func TestNormalize_ShapeEquivalence(t *testing.T) {
	// The three supported input shapes carrying equivalent pairs must
	// produce identical normalized maps.
	want := tool.Params{"text": "hi", "count": "3"}

	fromMap, err := Normalize(map[string]string{"text": "hi", "count": "3"})
	require.NoError(t, err)

	fromValues, err := Normalize(url.Values{"text": {"hi"}, "count": {"3"}})
	require.NoError(t, err)

	fromFields, err := Normalize([]Field{
		{Name: "text", Value: "hi"},
		{Name: "count", Value: "3"},
	})
	require.NoError(t, err)

	assert.Equal(t, want, fromMap)
	assert.Equal(t, want, fromValues)
	assert.Equal(t, want, fromFields)
}

func TestNormalize_Passthrough(t *testing.T) {
	p := tool.Params{"a": "1"}
	got, err := Normalize(p)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	// Clone semantics: mutating the result must not touch the input.
	got["a"] = "2"
	assert.Equal(t, "1", p["a"])
}

func TestNormalize_Nil(t *testing.T) {
	got, err := Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestNormalize_UnsupportedShape(t *testing.T) {
	_, err := Normalize(42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedShape)
}

func TestFromValues_FirstValueWins(t *testing.T) {
	got := FromValues(url.Values{"k": {"first", "second"}})
	assert.Equal(t, "first", got["k"])
}

func TestFromFields_LastValueWins(t *testing.T) {
	got := FromFields([]Field{
		{Name: "k", Value: "first"},
		{Name: "k", Value: "second"},
	})
	assert.Equal(t, "second", got["k"])
}

func TestFromAnyMap(t *testing.T) {
	got, err := FromAnyMap(map[string]any{
		"s":    "text",
		"n":    float64(2.5),
		"i":    float64(3),
		"b":    true,
		"nil":  nil,
		"json": map[string]any{"k": "v"},
		"list": []any{"a", "b"},
	})
	require.NoError(t, err)

	assert.Equal(t, "text", got["s"])
	assert.Equal(t, "2.5", got["n"])
	assert.Equal(t, "3", got["i"])
	assert.Equal(t, "true", got["b"])
	assert.Equal(t, "", got["nil"])
	assert.JSONEq(t, `{"k":"v"}`, got["json"])
	assert.JSONEq(t, `["a","b"]`, got["list"])
}

func TestFromAnyMap_UnsupportedValue(t *testing.T) {
	_, err := FromAnyMap(map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
}

func TestNormalize_UnknownKeysPassThrough(t *testing.T) {
	got, err := Normalize(map[string]string{"known": "1", "mystery": "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", got["mystery"])
}
