package registry

import "sync"

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns a process-wide registry reserved for quick-start
// ergonomics. Host applications should create and pass their own Registry;
// nothing inside the runtime depends on this instance.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}
