// Package toolbelt wires the tool runtime together for host applications:
// configuration, logging, metrics, a registry preloaded with the builtin
// tools, and a batch executor over it. Hosts needing finer control can
// assemble the pieces from pkg/ directly.
package toolbelt

import (
	"fmt"
	"net/http"

	"github.com/harun/toolbelt/internal/config"
	"github.com/harun/toolbelt/internal/logger"
	"github.com/harun/toolbelt/internal/metrics"
	"github.com/harun/toolbelt/pkg/batch"
	"github.com/harun/toolbelt/pkg/builtins"
	"github.com/harun/toolbelt/pkg/registry"
)

// Runtime bundles the assembled components.
type Runtime struct {
	Registry *registry.Registry
	Batch    *batch.Executor

	logger  *logger.Logger
	metrics *metrics.Metrics
}

// Init loads configuration (an empty path means defaults), sets up logging
// and metrics, and returns a runtime whose registry carries the builtin
// tools when enabled.
func Init(configPath string) (*Runtime, error) {
	loader := config.NewLoader(configPath)
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	lg, err := logger.New(logger.Config{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: cfg.Logging.Console,
		Pretty:  cfg.Logging.Pretty,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	reg := registry.New()
	exec := batch.New(reg)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		reg.SetMetrics(m)
		exec.SetMetrics(m)
	}

	if cfg.Builtins.Enabled {
		if err := builtins.Register(reg, builtins.Options{}); err != nil {
			lg.Close()
			return nil, fmt.Errorf("failed to register builtins: %w", err)
		}
	}

	return &Runtime{
		Registry: reg,
		Batch:    exec,
		logger:   lg,
		metrics:  m,
	}, nil
}

// MetricsHandler returns the Prometheus scrape handler, or nil when metrics
// are disabled.
func (rt *Runtime) MetricsHandler() http.Handler {
	if rt.metrics == nil {
		return nil
	}
	return rt.metrics.Handler()
}

// Close releases resources held by the runtime.
func (rt *Runtime) Close() error {
	return rt.logger.Close()
}
