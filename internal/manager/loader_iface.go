package manager

import "context"

// Loader turns an identifier plus configuration into a resident model.
// Concrete implementations (worker, llama.cpp) live in internal/loader.
type Loader interface {
	// Available reports whether the loading capability is present at all.
	// A non-nil error is surfaced as LoaderUnavailable before any release.
	Available() error
	// Load makes id resident with cfg. Errors that indicate an unsupported
	// acceleration feature should be built with ErrUnsupportedFeature.
	Load(ctx context.Context, id string, cfg LoadConfig) (Handle, error)
}

// Allocator is the device memory manager asked to reclaim memory after a
// handle is released.
type Allocator interface {
	// EmptyCache evicts the accelerator allocator's cached blocks.
	EmptyCache(ctx context.Context) error
	// Collect runs a general memory reclamation pass.
	Collect(ctx context.Context)
}

type noopAllocator struct{}

func (noopAllocator) EmptyCache(context.Context) error { return nil }
func (noopAllocator) Collect(context.Context)          {}
