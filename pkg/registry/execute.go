package registry

import (
	"context"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"

	"github.com/harun/toolbelt/pkg/params"
	"github.com/harun/toolbelt/pkg/tool"
	"github.com/harun/toolbelt/pkg/validate"
)

// Execute runs the full pipeline for one tool invocation: lookup, normalize,
// merge defaults, validate, invoke, stamp metadata. Every outcome, success
// or failure, comes back as a Result; Execute never returns an error and
// never panics. Cancellation and timeouts are the caller's responsibility
// via ctx; no default timeout is imposed.
func (r *Registry) Execute(ctx context.Context, id string, raw any) tool.Result {
	start := time.Now()

	r.mu.RLock()
	e, ok := r.tools[id]
	caps := r.caps
	r.mu.RUnlock()

	if !ok {
		log.Warn().Str("tool", id).Msg("Tool not found")
		return r.finish(id, start, tool.Fail(tool.CodeToolNotFound, "tool not found: %s", id))
	}

	normalized, err := params.Normalize(raw)
	if err != nil {
		return r.finish(id, start, tool.Fail(tool.CodeValidationError, "cannot normalize parameters: %v", err))
	}
	normalized = params.ApplyDefaults(normalized, e.def.Parameters)

	if errs := validate.Parameters(normalized, e.def); errs != nil {
		log.Debug().Str("tool", id).Int("errors", len(errs)).Msg("Parameter validation failed")
		res := tool.Fail(tool.CodeValidationError, "parameter validation failed")
		res.ValidationErrors = errs
		return r.finish(id, start, res)
	}

	log.Debug().Str("tool", id).Str("host", caps.Name()).Msg("Executing tool")

	return r.finish(id, start, invoke(ctx, id, e.fn, normalized))
}

// invoke runs the implementation in its own goroutine and awaits uniformly,
// so sync and deferred tools look the same. A panic inside the tool body is
// converted into an execution-error Result and logged as an anomaly: it
// signals a tool author's contract violation, unlike a reported failure.
func invoke(ctx context.Context, id string, fn tool.Handler, p tool.Params) tool.Result {
	resCh := make(chan tool.Result, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("tool", id).
					Any("panic", rec).
					Msg("Tool implementation panicked")
				resCh <- tool.Fail(tool.CodeExecutionError, "tool execution failed: %v", rec).MarkCrashed()
			}
		}()
		resCh <- fn(ctx, p)
	}()

	select {
	case res := <-resCh:
		if !res.Success && res.ErrorCode == "" {
			res.ErrorCode = tool.CodeExecutionError
		}
		return res
	case <-ctx.Done():
		return tool.Fail(tool.CodeExecutionError, "execution cancelled: %v", ctx.Err())
	}
}

// finish stamps execution metadata and records instrumentation. Metadata is
// appended here only, so every Result carries provenance.
func (r *Registry) finish(id string, start time.Time, res tool.Result) tool.Result {
	duration := time.Since(start)

	r.mu.RLock()
	m := r.metrics
	host := r.caps.Name()
	r.mu.RUnlock()

	execID, _ := gonanoid.New()
	res.Metadata = &tool.Metadata{
		ToolID:          id,
		ExecutionID:     execID,
		ProtocolVersion: tool.ProtocolVersion,
		Timestamp:       start.UTC(),
		DurationMs:      duration.Milliseconds(),
		ExecutedOn:      host,
	}
	if m != nil {
		status := "success"
		if !res.Success {
			status = "failure"
			m.ObserveError(id, string(res.ErrorCode))
		}
		m.ObserveExecution(id, status, duration.Seconds())
	}

	if !res.Success {
		log.Debug().
			Str("tool", id).
			Str("error_code", string(res.ErrorCode)).
			Dur("duration", duration).
			Msg("Tool execution failed")
	}

	return res
}
