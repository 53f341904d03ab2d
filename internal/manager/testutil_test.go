package manager

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"genhost/pkg/types"
)

// recorder keeps the ordered log of loader and allocator calls.
type recorder struct {
	mu  sync.Mutex
	log []string
}

func (r *recorder) add(s string) {
	r.mu.Lock()
	r.log = append(r.log, s)
	r.mu.Unlock()
}

func (r *recorder) entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.log))
	copy(out, r.log)
	return out
}

// fakeLoader builds in-memory handles and tracks how many are live.
type fakeLoader struct {
	rec *recorder

	mu       sync.Mutex
	avail    error
	loadErr  func(id string, cfg LoadConfig) error
	nilFor   string
	closeErr error
	delay    time.Duration
	configs  []LoadConfig
	live     int
	maxLive  int
	active   int
	overlap  bool
}

func newFakeLoader() *fakeLoader { return &fakeLoader{rec: &recorder{}} }

func (f *fakeLoader) Available() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.avail
}

func (f *fakeLoader) setAvailable(err error) {
	f.mu.Lock()
	f.avail = err
	f.mu.Unlock()
}

func (f *fakeLoader) enter() {
	f.mu.Lock()
	f.active++
	if f.active > 1 {
		f.overlap = true
	}
	f.mu.Unlock()
}

func (f *fakeLoader) exit() {
	f.mu.Lock()
	f.active--
	f.mu.Unlock()
}

func (f *fakeLoader) Load(_ context.Context, id string, cfg LoadConfig) (Handle, error) {
	f.enter()
	defer f.exit()
	f.rec.add("load:" + id)
	f.mu.Lock()
	f.configs = append(f.configs, cfg)
	loadErr, nilFor, delay := f.loadErr, f.nilFor, f.delay
	f.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}
	if loadErr != nil {
		if err := loadErr(id, cfg); err != nil {
			return nil, err
		}
	}
	if id == nilFor {
		return nil, nil
	}
	f.mu.Lock()
	f.live++
	if f.live > f.maxLive {
		f.maxLive = f.live
	}
	f.mu.Unlock()
	base := &fakeHandle{id: id, f: f}
	switch cfg.Kind {
	case types.KindTTSBase:
		return &fakeCloneHandle{base}, nil
	case types.KindTTSCustom:
		return &fakeCustomHandle{base}, nil
	case types.KindChat:
		return &fakeChatHandle{base}, nil
	case types.KindImage:
		return &fakeImageHandle{base}, nil
	case types.KindVideo:
		return &fakeVideoHandle{base}, nil
	}
	return base, nil
}

func (f *fakeLoader) loadCount(id string) int {
	n := 0
	for _, e := range f.rec.entries() {
		if e == "load:"+id {
			n++
		}
	}
	return n
}

func (f *fakeLoader) lastConfig() LoadConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.configs[len(f.configs)-1]
}

func (f *fakeLoader) liveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live
}

type fakeHandle struct {
	id     string
	f      *fakeLoader
	closed bool
}

func (h *fakeHandle) ID() string { return h.id }

func (h *fakeHandle) Close() error {
	h.f.enter()
	defer h.f.exit()
	h.f.rec.add("close:" + h.id)
	h.f.mu.Lock()
	defer h.f.mu.Unlock()
	if !h.closed {
		h.closed = true
		h.f.live--
	}
	return h.f.closeErr
}

type fakeCloneHandle struct{ *fakeHandle }

func (h *fakeCloneHandle) CloneVoice(_ context.Context, in types.VoiceCloneInput) (types.Audio, error) {
	return types.Audio{Data: []byte("clone:" + in.Text), ContentType: "audio/wav"}, nil
}

type fakeCustomHandle struct{ *fakeHandle }

func (h *fakeCustomHandle) CustomVoice(_ context.Context, in types.CustomVoiceInput) (types.Audio, error) {
	return types.Audio{Data: []byte(in.Speaker + ":" + in.Text), ContentType: "audio/wav"}, nil
}

type fakeChatHandle struct{ *fakeHandle }

func (h *fakeChatHandle) Chat(_ context.Context, in types.ChatInput) (types.ChatOutput, error) {
	return types.ChatOutput{Text: "ok", PromptTokens: len(in.Messages), CompletionTokens: 1}, nil
}

type fakeImageHandle struct{ *fakeHandle }

func (h *fakeImageHandle) GenerateImage(_ context.Context, in types.ImageGenerateInput) (types.Media, error) {
	return types.Media{Data: []byte("png:" + in.Prompt), ContentType: "image/png"}, nil
}

type fakeVideoHandle struct{ *fakeHandle }

func (h *fakeVideoHandle) GenerateVideo(_ context.Context, in types.VideoGenerateInput) (types.Media, error) {
	return types.Media{Data: []byte("mp4:" + in.Prompt), ContentType: "video/mp4"}, nil
}

type fakeAllocator struct {
	rec      *recorder
	emptyErr error
}

func (a *fakeAllocator) EmptyCache(context.Context) error {
	a.rec.add("empty_cache")
	return a.emptyErr
}

func (a *fakeAllocator) Collect(context.Context) { a.rec.add("collect") }

func (a *fakeAllocator) count(name string) int {
	n := 0
	for _, e := range a.rec.entries() {
		if e == name {
			n++
		}
	}
	return n
}

var testRegistry = []types.Model{
	{ID: "Qwen/Qwen3-TTS-12Hz-1.7B-Base", Kind: types.KindTTSBase},
	{ID: "Qwen/Qwen3-TTS-12Hz-1.7B-CustomVoice", Kind: types.KindTTSCustom},
	{ID: "Qwen/Qwen3-VL-32B-Thinking", Kind: types.KindChat},
	{ID: "Qwen/Qwen-Image-2512", Kind: types.KindImage},
	{ID: "Lightricks/LTX-2", Kind: types.KindVideo},
}

var (
	accel = DeviceSettings{Accelerator: true, Quantization: Quant4Bit}
	cpu   = DeviceSettings{}
)

// newTestManager wires a manager to fresh fakes sharing one call log.
func newTestManager(t *testing.T, mutate func(*ManagerConfig)) (*Manager, *fakeLoader, *fakeAllocator, *MemoryPublisher) {
	t.Helper()
	fl := newFakeLoader()
	fa := &fakeAllocator{rec: fl.rec}
	pub := NewMemoryPublisher()
	cfg := ManagerConfig{
		Loader:    fl,
		Allocator: fa,
		Registry:  testRegistry,
		Settings:  accel,
		Publisher: pub,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewWithConfig(cfg), fl, fa, pub
}

// testCtx returns a context with a short timeout, canceled on test cleanup.
func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return c
}

var errBoom = errors.New("boom")
