//go:build !llama

package loader

import (
	"context"

	"genhost/internal/manager"
)

// Llama is unavailable in binaries built without the llama tag.
type Llama struct {
	cfg LlamaConfig
}

func NewLlama(cfg LlamaConfig) *Llama { return &Llama{cfg: cfg.withDefaults()} }

func (l *Llama) Available() error {
	return manager.ErrLoaderUnavailable("llama support not built (missing 'llama' build tag)")
}

func (l *Llama) Load(context.Context, string, manager.LoadConfig) (manager.Handle, error) {
	return nil, l.Available()
}
