// Package batch fans a list of tool requests across a registry, either
// concurrently or in ordered fail-fast fashion.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/harun/toolbelt/internal/metrics"
	"github.com/harun/toolbelt/pkg/registry"
	"github.com/harun/toolbelt/pkg/tool"
)

// Request names one tool invocation. Params accepts any of the shapes the
// normalizer supports.
type Request struct {
	ToolID string `json:"tool_id"`
	Params any    `json:"params"`
}

// Executor runs batches of requests against one registry.
type Executor struct {
	reg     *registry.Registry
	metrics *metrics.Metrics
}

// New creates a batch executor over the given registry.
func New(reg *registry.Registry) *Executor {
	return &Executor{reg: reg}
}

// SetMetrics attaches Prometheus instrumentation. Nil disables it.
func (e *Executor) SetMetrics(m *metrics.Metrics) {
	e.metrics = m
}

func (e *Executor) observeRun(mode string) {
	if e.metrics != nil {
		e.metrics.BatchRunsTotal.WithLabelValues(mode).Inc()
	}
}

// Parallel issues every request concurrently and collects all outcomes in
// request order. Partial failure is expected and reported per item, never
// escalated. Calls are issued without throttling; request sizing is the
// caller's concern since in-process calls have no natural backpressure
// point.
func (e *Executor) Parallel(ctx context.Context, reqs []Request) []tool.Result {
	e.observeRun("parallel")
	if len(reqs) == 0 {
		return []tool.Result{}
	}

	start := time.Now()
	results := make([]tool.Result, len(reqs))
	var wg sync.WaitGroup

	for i, req := range reqs {
		wg.Add(1)
		go func(index int, request Request) {
			defer wg.Done()
			results[index] = e.reg.Execute(ctx, request.ToolID, request.Params)
		}(i, req)
	}

	wg.Wait()

	log.Debug().
		Int("requests", len(reqs)).
		Dur("duration", time.Since(start)).
		Msg("Parallel batch completed")

	return results
}

// FailFast executes requests in list order and stops at the first failing
// result, returning only the results produced so far. It serves request
// chains where a later step's parameters are meaningless after an earlier
// failure.
func (e *Executor) FailFast(ctx context.Context, reqs []Request) []tool.Result {
	e.observeRun("fail_fast")
	results := make([]tool.Result, 0, len(reqs))

	for _, req := range reqs {
		res := e.reg.Execute(ctx, req.ToolID, req.Params)
		results = append(results, res)
		if !res.Success {
			log.Debug().
				Str("tool", req.ToolID).
				Int("completed", len(results)).
				Int("requested", len(reqs)).
				Msg("Fail-fast batch stopped")
			break
		}
	}

	return results
}
