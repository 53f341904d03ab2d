package loader

import (
	"fmt"

	"genhost/internal/common/fsutil"
)

// LlamaConfig configures the in-process llama.cpp loader.
type LlamaConfig struct {
	ContextSize int
	Threads     int
	// GPULayers is the number of layers offloaded when loading on the
	// accelerator.
	GPULayers int
	// Resolve maps a model identifier to a GGUF path.
	Resolve func(id string) (string, error)
}

func (c LlamaConfig) withDefaults() LlamaConfig {
	if c.ContextSize <= 0 {
		c.ContextSize = 4096
	}
	if c.Threads <= 0 {
		c.Threads = 4
	}
	if c.GPULayers <= 0 {
		c.GPULayers = 999
	}
	if c.Resolve == nil {
		c.Resolve = resolveAsPath
	}
	return c
}

// resolveAsPath treats the identifier itself as a file path.
func resolveAsPath(id string) (string, error) {
	p, err := fsutil.Resolve(id)
	if err != nil {
		return "", err
	}
	if !fsutil.PathExists(p) {
		return "", fmt.Errorf("model file not found: %s", p)
	}
	return p, nil
}
