package builtins

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harun/toolbelt/pkg/registry"
	"github.com/harun/toolbelt/pkg/tool"
	"github.com/harun/toolbelt/pkg/validate"
)

func newBuiltinRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	require.NoError(t, Register(reg, Options{}))
	return reg
}

func TestRegister(t *testing.T) {
	reg := newBuiltinRegistry(t)
	assert.Equal(t, 9, reg.Len())

	// Registering twice trips the uniqueness invariant.
	assert.Error(t, Register(reg, Options{}))
}

func TestRegister_NilRegistry(t *testing.T) {
	assert.Error(t, Register(nil, Options{}))
}

func TestBuiltinDefinitionsAreValid(t *testing.T) {
	reg := newBuiltinRegistry(t)

	for _, def := range reg.List() {
		t.Run(def.ID, func(t *testing.T) {
			assert.Nil(t, validate.Definition(def))
		})
	}
}

func TestTextTools(t *testing.T) {
	reg := newBuiltinRegistry(t)
	ctx := context.Background()

	tests := []struct {
		toolID string
		input  string
		want   string
	}{
		{"text-reverse", "hello", "olleh"},
		{"text-reverse", "héllo", "olléh"},
		{"text-uppercase", "hi there", "HI THERE"},
		{"text-lowercase", "HI", "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.toolID+"/"+tt.input, func(t *testing.T) {
			res := reg.Execute(ctx, tt.toolID, map[string]string{"text": tt.input})
			require.True(t, res.Success, res.Error)
			payload := res.Output.(map[string]any)
			assert.Equal(t, tt.want, payload["output"])
		})
	}
}

func TestBase64RoundTrip(t *testing.T) {
	reg := newBuiltinRegistry(t)
	ctx := context.Background()

	encoded := reg.Execute(ctx, "base64-encoder", map[string]string{"text": "hello"})
	require.True(t, encoded.Success)
	payload := encoded.Output.(map[string]any)
	assert.Equal(t, "aGVsbG8=", payload["output"])

	decoded := reg.Execute(ctx, "base64-decoder", map[string]string{"data": payload["output"].(string)})
	require.True(t, decoded.Success)
	assert.Equal(t, "hello", decoded.Output.(map[string]any)["output"])
}

func TestBase64Decoder_RejectsGarbage(t *testing.T) {
	reg := newBuiltinRegistry(t)

	res := reg.Execute(context.Background(), "base64-decoder", map[string]string{"data": "!!!"})
	require.False(t, res.Success)
	assert.Equal(t, tool.CodeValidationError, res.ErrorCode)
}

func TestHashDigest(t *testing.T) {
	reg := newBuiltinRegistry(t)
	ctx := context.Background()

	// Defaults: sha256 + hex.
	res := reg.Execute(ctx, "hash-digest", map[string]string{"text": "hello"})
	require.True(t, res.Success, res.Error)
	payload := res.Output.(map[string]any)
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		payload["output"])

	// Explicit algorithm selection.
	res = reg.Execute(ctx, "hash-digest", map[string]string{
		"text": "hello", "algorithm": "md5", "encoding": "hex",
	})
	require.True(t, res.Success)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", res.Output.(map[string]any)["output"])
}

func TestHashDigest_UnknownAlgorithmRejected(t *testing.T) {
	reg := newBuiltinRegistry(t)

	res := reg.Execute(context.Background(), "hash-digest", map[string]string{
		"text": "hello", "algorithm": "crc32",
	})
	require.False(t, res.Success)
	assert.Equal(t, tool.CodeValidationError, res.ErrorCode)
	require.Len(t, res.ValidationErrors, 1)
	assert.Equal(t, tool.KindNotAnOption, res.ValidationErrors[0].Kind)
}

func TestIDGenerator(t *testing.T) {
	reg := newBuiltinRegistry(t)
	ctx := context.Background()

	res := reg.Execute(ctx, "id-generator", map[string]string{})
	require.True(t, res.Success, res.Error)
	id := res.Output.(map[string]any)["output"].(string)
	assert.Len(t, id, 21) // default length

	res = reg.Execute(ctx, "id-generator", map[string]string{"length": "8"})
	require.True(t, res.Success)
	assert.Len(t, res.Output.(map[string]any)["output"].(string), 8)

	// Out-of-range length is a validation failure, not an execution one.
	res = reg.Execute(ctx, "id-generator", map[string]string{"length": "1000"})
	require.False(t, res.Success)
	assert.Equal(t, tool.CodeValidationError, res.ErrorCode)
}

func TestUUIDGenerator(t *testing.T) {
	reg := newBuiltinRegistry(t)
	ctx := context.Background()

	res := reg.Execute(ctx, "uuid-generator", map[string]string{})
	require.True(t, res.Success, res.Error)
	id := res.Output.(map[string]any)["output"].(string)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	res = reg.Execute(ctx, "uuid-generator", map[string]string{"uppercase": "yes"})
	require.True(t, res.Success)
	upper := res.Output.(map[string]any)["output"].(string)
	_, err = uuid.Parse(upper)
	require.NoError(t, err)
	assert.NotEqual(t, id, upper)
}

func TestDateToUnix(t *testing.T) {
	reg := newBuiltinRegistry(t)
	ctx := context.Background()

	res := reg.Execute(ctx, "date-to-unix", map[string]string{"date": "1970-01-02"})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, int64(86400), res.Output.(map[string]any)["output"])

	res = reg.Execute(ctx, "date-to-unix", map[string]string{"date": "02/01/1970"})
	require.False(t, res.Success)
	assert.Equal(t, tool.CodeValidationError, res.ErrorCode)
}

func TestBuiltinCategories(t *testing.T) {
	reg := newBuiltinRegistry(t)

	assert.Len(t, reg.ByCategory(tool.CategoryText), 3)
	assert.Len(t, reg.ByCategory(tool.CategoryGenerator), 2)
	assert.NotEmpty(t, reg.SearchByTags("base64"))
}
