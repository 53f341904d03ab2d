package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"genhost/internal/manager"
	"genhost/pkg/types"
)

const (
	defaultHealthTimeout = 5 * time.Second
	defaultUnloadTimeout = 30 * time.Second
	maxErrorBody         = 4096
)

// WorkerConfig configures the HTTP worker loader.
type WorkerConfig struct {
	// BaseURL of the worker, e.g. http://127.0.0.1:9000.
	BaseURL       string
	HealthTimeout time.Duration
	// HTTPClient defaults to a client without a global timeout; every call
	// carries its own context.
	HTTPClient *http.Client
	Logger     *zerolog.Logger
}

// Worker implements manager.Loader against an inference worker. It also
// implements device.CacheEmptier.
type Worker struct {
	base          string
	cli           *http.Client
	healthTimeout time.Duration
	log           zerolog.Logger
}

// NewWorker constructs a Worker.
func NewWorker(cfg WorkerConfig) *Worker {
	w := &Worker{
		base:          strings.TrimRight(cfg.BaseURL, "/"),
		cli:           cfg.HTTPClient,
		healthTimeout: cfg.HealthTimeout,
		log:           zerolog.Nop(),
	}
	if w.cli == nil {
		w.cli = &http.Client{Timeout: 0}
	}
	if w.healthTimeout <= 0 {
		w.healthTimeout = defaultHealthTimeout
	}
	if cfg.Logger != nil {
		w.log = cfg.Logger.With().Str("component", "worker").Str("worker", w.base).Logger()
	}
	return w
}

// Available checks the worker's health endpoint.
func (w *Worker) Available() error {
	if w.base == "" {
		return manager.ErrLoaderUnavailable("worker url not configured")
	}
	ctx, cancel := context.WithTimeout(context.Background(), w.healthTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.base+"/healthz", nil)
	if err != nil {
		return manager.ErrLoaderUnavailable(err.Error())
	}
	resp, err := w.cli.Do(req)
	if err != nil {
		return manager.ErrLoaderUnavailable(fmt.Sprintf("worker unreachable: %v", err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return manager.ErrLoaderUnavailable("worker unhealthy: " + resp.Status)
	}
	return nil
}

// Load asks the worker to make id resident with cfg.
func (w *Worker) Load(ctx context.Context, id string, cfg manager.LoadConfig) (manager.Handle, error) {
	req := loadRequest{
		Model:              id,
		Kind:               string(cfg.Kind),
		Device:             deviceName(cfg.Device),
		DType:              string(cfg.Precision),
		AttnImplementation: attnImplementation(cfg.Attention),
		Quantization:       string(cfg.Quantization),
	}
	var out loadResponse
	if err := w.postJSON(ctx, "/v1/models/load", req, &out); err != nil {
		return nil, err
	}
	if out.Handle == "" {
		return nil, fmt.Errorf("worker returned empty handle for %s", id)
	}
	w.log.Debug().Str("model", id).Str("handle", out.Handle).Strs("capabilities", out.Capabilities).Msg("worker loaded model")
	return newWorkerHandle(w, id, out.Handle, cfg.Kind, out.Capabilities), nil
}

// EmptyCache asks the worker to evict cached accelerator blocks.
func (w *Worker) EmptyCache(ctx context.Context) error {
	return w.postJSON(ctx, "/v1/runtime/empty_cache", struct{}{}, nil)
}

func (w *Worker) unload(ref string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultUnloadTimeout)
	defer cancel()
	return w.postJSON(ctx, "/v1/models/unload", unloadRequest{Handle: ref}, nil)
}

func (w *Worker) do(ctx context.Context, path string, in any) (*http.Response, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.base+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.cli.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("worker %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, decodeWorkerError(path, resp)
	}
	return resp, nil
}

func (w *Worker) postJSON(ctx context.Context, path string, in, out any) error {
	resp, err := w.do(ctx, path, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (w *Worker) postAudio(ctx context.Context, path string, in any) (types.Audio, error) {
	m, err := w.postMedia(ctx, path, in, "audio/wav")
	if err != nil {
		return types.Audio{}, err
	}
	return types.Audio{Data: m.Data, ContentType: m.ContentType}, nil
}

// postMedia returns the raw response body, typed by the worker's
// Content-Type or fallbackType when it sends none.
func (w *Worker) postMedia(ctx context.Context, path string, in any, fallbackType string) (types.Media, error) {
	resp, err := w.do(ctx, path, in)
	if err != nil {
		return types.Media{}, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Media{}, fmt.Errorf("read %s: %w", path, err)
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = fallbackType
	}
	return types.Media{Data: data, ContentType: ct}, nil
}

// decodeWorkerError turns a non-2xx response into an error, preserving the
// worker's unsupported-feature code as a structured error.
func decodeWorkerError(path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil && eb.Error != "" {
		if eb.Code == codeUnsupportedFeature {
			feature := eb.Feature
			if feature == "" {
				feature = "attention"
			}
			return manager.ErrUnsupportedFeature(feature, eb.Error)
		}
		return fmt.Errorf("worker %s: %s: %s", path, resp.Status, eb.Error)
	}
	return fmt.Errorf("worker %s: %s: %s", path, resp.Status, strings.TrimSpace(string(raw)))
}

func deviceName(d manager.Device) string {
	if d == manager.DeviceAccelerator {
		return "cuda"
	}
	return "cpu"
}

func attnImplementation(a manager.AttentionStrategy) string {
	if a == manager.AttentionOptimized {
		return "flash_attention_2"
	}
	return "sdpa"
}
