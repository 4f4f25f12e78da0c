// Package registry owns registered tools and runs the
// validate -> normalize -> invoke -> annotate execution pipeline.
//
// Invariants:
// - Tool identifiers are unique; re-registration under the same id fails and
//   leaves the first registration intact.
// - Definitions are validated at registration, never at first execution.
// - Every Result returned by Execute carries execution metadata; tool bodies
//   never stamp it themselves.
// - Unknown identifiers and validation failures are structured failures,
//   never errors or panics.
//
// Usage:
//
//	reg := registry.New()
//	_ = reg.Register(def, fn)
//	res := reg.Execute(ctx, "echo-upper", map[string]string{"text": "hi"})
package registry
