package tool

import (
	"context"
	"fmt"
	"time"
)

// ErrorCode is the closed vocabulary of failure categories carried by a
// failed Result.
type ErrorCode string

const (
	CodeValidationError ErrorCode = "validation_error"
	CodeExecutionError  ErrorCode = "execution_error"
	CodeToolNotFound    ErrorCode = "tool_not_found"
)

// Metadata is execution provenance stamped by the registry onto every
// Result it returns. Tool bodies never populate it.
type Metadata struct {
	ToolID          string    `json:"tool_id"`
	ExecutionID     string    `json:"execution_id"`
	ProtocolVersion string    `json:"protocol_version"`
	Timestamp       time.Time `json:"timestamp"`
	DurationMs      int64     `json:"duration_ms"`
	ExecutedOn      string    `json:"executed_on"`
}

// Result is the discriminated outcome of a tool execution.
type Result struct {
	Success bool `json:"success"`

	// Success payload. Free-form; conventionally a map with an "output" key.
	Output   any      `json:"output,omitempty"`
	Warnings []string `json:"warnings,omitempty"`

	// Optional tool-supplied accounting; zero means not reported.
	InputBytes  int64 `json:"input_bytes,omitempty"`
	OutputBytes int64 `json:"output_bytes,omitempty"`

	// Failure payload.
	Error            string      `json:"error,omitempty"`
	ErrorCode        ErrorCode   `json:"error_code,omitempty"`
	ValidationErrors FieldErrors `json:"validation_errors,omitempty"`

	// Metadata is appended by the registry only.
	Metadata *Metadata `json:"metadata,omitempty"`

	// crashed distinguishes a recovered panic from a reported failure for
	// diagnostics; the caller-visible shape is identical either way.
	crashed bool
}

// OK builds a success result with the given payload.
func OK(output any) Result {
	return Result{Success: true, Output: output}
}

// Fail builds a failure result with a message and error code.
func Fail(code ErrorCode, format string, args ...any) Result {
	return Result{
		Success:   false,
		Error:     fmt.Sprintf(format, args...),
		ErrorCode: code,
	}
}

// MarkCrashed records that this failure came from a recovered panic rather
// than a reported failure. Used by the registry only.
func (r Result) MarkCrashed() Result {
	r.crashed = true
	return r
}

// Crashed reports whether the failure came from a recovered panic.
func (r Result) Crashed() bool {
	return r.crashed
}

// Handler is the function every tool implementation satisfies. It must not
// panic; the registry converts an escape into an execution-error Result.
type Handler func(ctx context.Context, params Params) Result

// Defer adapts a deferred (channel-producing) implementation into a Handler.
// The registry awaits the first value or context cancellation; tool authors
// need not distinguish sync from async.
func Defer(fn func(ctx context.Context, params Params) <-chan Result) Handler {
	return func(ctx context.Context, params Params) Result {
		select {
		case res := <-fn(ctx, params):
			return res
		case <-ctx.Done():
			return Fail(CodeExecutionError, "execution cancelled: %v", ctx.Err())
		}
	}
}
