package toolbelt

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harun/toolbelt/pkg/batch"
)

func TestInit_Defaults(t *testing.T) {
	rt, err := Init("")
	require.NoError(t, err)
	defer rt.Close()

	assert.Positive(t, rt.Registry.Len())
	assert.NotNil(t, rt.Batch)
	assert.NotNil(t, rt.MetricsHandler())
}

func TestInit_ExecuteBuiltin(t *testing.T) {
	rt, err := Init("")
	require.NoError(t, err)
	defer rt.Close()

	res := rt.Registry.Execute(context.Background(), "text-uppercase", map[string]string{"text": "hi"})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "HI", res.Output.(map[string]any)["output"])
}

func TestInit_BatchOverBuiltins(t *testing.T) {
	rt, err := Init("")
	require.NoError(t, err)
	defer rt.Close()

	results := rt.Batch.Parallel(context.Background(), []batch.Request{
		{ToolID: "text-reverse", Params: map[string]string{"text": "ab"}},
		{ToolID: "uuid-generator", Params: nil},
	})
	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.True(t, results[1].Success)
}

func TestInit_ConfigDisablesPieces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolbelt.json")
	content := `{
		"logging": {"level": "error", "console": false},
		"metrics": {"enabled": false},
		"builtins": {"enabled": false}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rt, err := Init(path)
	require.NoError(t, err)
	defer rt.Close()

	assert.Zero(t, rt.Registry.Len())
	assert.Nil(t, rt.MetricsHandler())
}
