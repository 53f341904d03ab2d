//go:build llama

package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"

	llama "github.com/go-skynet/go-llama.cpp"

	"genhost/internal/manager"
	"genhost/pkg/types"
)

// Llama loads GGUF chat models in-process.
type Llama struct {
	cfg LlamaConfig
}

func NewLlama(cfg LlamaConfig) *Llama { return &Llama{cfg: cfg.withDefaults()} }

func (l *Llama) Available() error { return nil }

func (l *Llama) Load(_ context.Context, id string, cfg manager.LoadConfig) (manager.Handle, error) {
	if cfg.Kind != types.KindChat {
		return nil, fmt.Errorf("llama loader only serves chat models, %s is %s", id, cfg.Kind)
	}
	path, err := l.cfg.Resolve(id)
	if err != nil {
		return nil, err
	}
	opts := []llama.ModelOption{llama.SetContext(l.cfg.ContextSize)}
	if cfg.Device == manager.DeviceAccelerator {
		opts = append(opts, llama.SetGPULayers(l.cfg.GPULayers))
	}
	if cfg.Precision == manager.PrecisionHalf {
		opts = append(opts, llama.EnableF16Memory)
	}
	m, err := llama.New(path, opts...)
	if err != nil {
		return nil, err
	}
	return &llamaHandle{id: id, model: m, threads: l.cfg.Threads}, nil
}

// llamaHandle owns the loaded model.
type llamaHandle struct {
	id      string
	threads int

	mu    sync.Mutex
	model *llama.LLama
}

func (h *llamaHandle) ID() string { return h.id }

func (h *llamaHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.model != nil {
		h.model.Free()
		h.model = nil
	}
	return nil
}

func (h *llamaHandle) Chat(ctx context.Context, in types.ChatInput) (types.ChatOutput, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.model == nil {
		return types.ChatOutput{}, errors.New("llama model not initialized")
	}
	// Stop generation when the request goes away.
	h.model.SetTokenCallback(func(string) bool { return ctx.Err() == nil })
	po := []llama.PredictOption{
		llama.SetThreads(max(1, h.threads)),
		llama.SetTokens(max(1, in.MaxTokens)),
	}
	if in.Temperature > 0 {
		po = append(po, llama.SetTemperature(float32(in.Temperature)))
	}
	if in.TopP > 0 {
		po = append(po, llama.SetTopP(float32(in.TopP)))
	}
	text, err := h.model.Predict(renderPrompt(in.Messages), po...)
	if err != nil {
		if ctx.Err() != nil {
			return types.ChatOutput{}, ctx.Err()
		}
		return types.ChatOutput{}, err
	}
	return types.ChatOutput{Text: text, PromptTokens: -1, CompletionTokens: -1}, nil
}
