package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/harun/toolbelt/internal/metrics"
	"github.com/harun/toolbelt/pkg/hostcaps"
	"github.com/harun/toolbelt/pkg/tool"
	"github.com/harun/toolbelt/pkg/validate"
)

// ErrDuplicateTool is returned when a tool identifier is already registered.
var ErrDuplicateTool = errors.New("duplicate tool identifier")

// DefinitionError wraps the validation failures of a rejected definition.
type DefinitionError struct {
	ToolID string
	Errors tool.FieldErrors
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	return fmt.Sprintf("invalid definition %q: %s", e.ToolID, e.Errors.Error())
}

type entry struct {
	def tool.Definition
	fn  tool.Handler
}

// Registry is the in-memory store of (definition, implementation) pairs.
// The tool map is immutable after registration, so concurrent Execute calls
// are independent and need no coordination beyond the map lock.
type Registry struct {
	mu      sync.RWMutex
	tools   map[string]entry
	caps    hostcaps.Provider
	metrics *metrics.Metrics
}

// New creates an empty registry backed by the host's default capability
// provider.
func New() *Registry {
	return &Registry{
		tools: make(map[string]entry),
		caps:  hostcaps.Default(),
	}
}

// SetProvider overrides the capability provider. Intended for tests and for
// hosts embedding a custom environment.
func (r *Registry) SetProvider(p hostcaps.Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caps = p
}

// SetMetrics attaches Prometheus instrumentation. Nil disables it.
func (r *Registry) SetMetrics(m *metrics.Metrics) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = m
}

// Register validates a definition and stores it with its implementation.
// Duplicate identifiers and schema violations are rejected here, never at
// first execution.
func (r *Registry) Register(def tool.Definition, fn tool.Handler) error {
	if fn == nil {
		return fmt.Errorf("tool %q: implementation cannot be nil", def.ID)
	}
	if errs := validate.Definition(def); errs != nil {
		return &DefinitionError{ToolID: def.ID, Errors: errs}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[def.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTool, def.ID)
	}
	r.tools[def.ID] = entry{def: def, fn: fn}
	if r.metrics != nil {
		r.metrics.ToolsRegistered.Set(float64(len(r.tools)))
	}

	log.Info().Str("tool", def.ID).Str("category", string(def.Category)).Msg("Tool registered")

	return nil
}

// Unregister removes a tool. Removing an unknown id is a no-op.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tools, id)
	if r.metrics != nil {
		r.metrics.ToolsRegistered.Set(float64(len(r.tools)))
	}

	log.Info().Str("tool", id).Msg("Tool unregistered")
}

// Get returns a registered definition by identifier.
func (r *Registry) Get(id string) (tool.Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.tools[id]
	return e.def, ok
}

// List returns all registered definitions sorted by identifier.
func (r *Registry) List() []tool.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]tool.Definition, 0, len(r.tools))
	for _, e := range r.tools {
		defs = append(defs, e.def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tools)
}

// ByCategory returns the definitions in a category, sorted by identifier.
// The filter is derived from the primary map on demand; registry size does
// not justify an index.
func (r *Registry) ByCategory(category tool.Category) []tool.Definition {
	var out []tool.Definition
	for _, def := range r.List() {
		if def.Category == category {
			out = append(out, def)
		}
	}
	return out
}

// SearchByTags returns definitions carrying at least one of the given tags,
// case-insensitively, sorted by identifier.
func (r *Registry) SearchByTags(tags ...string) []tool.Definition {
	var out []tool.Definition
	for _, def := range r.List() {
		for _, t := range tags {
			if def.HasTag(strings.TrimSpace(t)) {
				out = append(out, def)
				break
			}
		}
	}
	return out
}
