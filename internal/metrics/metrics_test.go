package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()
	require.NotNil(t, m)
	require.NotNil(t, m.Registry())

	assert.NotNil(t, m.ExecutionsTotal)
	assert.NotNil(t, m.ExecutionDuration)
	assert.NotNil(t, m.ExecutionErrors)
	assert.NotNil(t, m.ToolsRegistered)
	assert.NotNil(t, m.BatchRunsTotal)
}

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveExecution("echo-upper", "success", 0.01)
	m.ObserveExecution("echo-upper", "failure", 0.02)
	m.ObserveError("echo-upper", "validation_error")
	m.ToolsRegistered.Set(3)
	m.BatchRunsTotal.WithLabelValues("parallel").Inc()

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["tool_executions_total"])
	assert.True(t, names["tool_execution_errors_total"])
	assert.True(t, names["tools_registered"])
	assert.True(t, names["batch_runs_total"])
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveExecution("echo-upper", "success", 0.01)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "tool_executions_total"))
}
