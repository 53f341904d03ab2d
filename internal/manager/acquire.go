package manager

import (
	"context"
	"fmt"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Acquire returns a handle to identifier, loading it if necessary. A
// different resident model is released first. The returned handle stays
// valid until the next call that swaps models; use Do to run work that must
// not race a swap.
func (m *Manager) Acquire(ctx context.Context, identifier string, settings DeviceSettings) (Handle, error) {
	if identifier == "" {
		return nil, ErrModelNotFound("(unspecified)")
	}
	if err := m.lock(ctx); err != nil {
		return nil, err
	}
	defer m.unlock()
	return m.acquireLocked(ctx, identifier, settings)
}

// acquireLocked requires the single-writer slot.
func (m *Manager) acquireLocked(ctx context.Context, identifier string, settings DeviceSettings) (Handle, error) {
	m.mu.RLock()
	h, cur := m.handle, m.cur
	m.mu.RUnlock()
	if h != nil && cur != nil && cur.ID == identifier {
		m.publisher.Publish(Event{Name: EventAcquireHit, ModelID: identifier})
		return h, nil
	}

	if err := m.loader.Available(); err != nil {
		if !IsLoaderUnavailable(err) {
			err = ErrLoaderUnavailable(err.Error())
		}
		m.log.Warn().Str("event", "loader_unavailable").Str("model", identifier).Err(err).Msg("loader unavailable")
		// State and the resident handle are untouched; only the error is surfaced.
		m.mu.Lock()
		m.err = err.Error()
		m.mu.Unlock()
		return nil, err
	}

	// Release errors are logged inside; they must not block the next load.
	_ = m.releaseLocked(ctx)

	return m.load(ctx, identifier, settings)
}

// load performs the loader call with the one-shot attention fallback. The
// manager is empty when load is entered.
func (m *Manager) load(ctx context.Context, id string, settings DeviceSettings) (Handle, error) {
	kind := m.kindFor(id)
	cfg := ResolveLoadConfig(id, kind, settings)

	m.mu.Lock()
	m.state = StateLoading
	m.err = ""
	m.mu.Unlock()

	m.publisher.Publish(Event{Name: EventLoadStart, ModelID: id, Fields: map[string]any{
		"kind":      string(kind),
		"device":    string(cfg.Device),
		"attention": string(cfg.Attention),
	}})
	m.log.Info().Str("event", EventLoadStart).Str("model", id).Str("kind", string(kind)).
		Str("device", string(cfg.Device)).Str("precision", string(cfg.Precision)).
		Str("attention", string(cfg.Attention)).Str("quantization", string(cfg.Quantization)).
		Msg("loading model")

	// Loads are not cancellable mid-flight.
	lctx := context.WithoutCancel(ctx)
	start := time.Now()
	attempts := 0
	var h Handle
	err := retry.Do(
		func() error {
			attempts++
			got, err := m.loader.Load(lctx, id, cfg)
			if err != nil {
				return err
			}
			if got == nil {
				return fmt.Errorf("loader returned no handle for %s", id)
			}
			h = got
			return nil
		},
		retry.Context(lctx),
		retry.Attempts(2),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return cfg.Attention == AttentionOptimized && IsUnsupportedFeature(err)
		}),
		retry.OnRetry(func(_ uint, err error) {
			cfg = cfg.WithoutOptimizedAttention()
			m.fallbacks.Add(1)
			fallbacksTotal.Inc()
			m.publisher.Publish(Event{Name: EventLoadRetry, ModelID: id, Fields: map[string]any{
				"attention": string(cfg.Attention),
				"error":     err.Error(),
			}})
			m.log.Warn().Str("event", EventLoadRetry).Str("model", id).Err(err).
				Msg("optimized attention unsupported, retrying with default attention")
		}),
	)
	loadDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		lf := loadFailedError{ModelID: id, Attempts: attempts, Err: err}
		m.mu.Lock()
		m.state = StateError
		m.err = lf.Error()
		m.mu.Unlock()
		loadsTotal.WithLabelValues("failed").Inc()
		m.publisher.Publish(Event{Name: EventLoadFailed, ModelID: id, Fields: map[string]any{
			"attempts": attempts,
			"error":    err.Error(),
		}})
		m.log.Error().Str("event", EventLoadFailed).Str("model", id).Int("attempts", attempts).Err(err).Msg("load failed")
		return nil, lf
	}

	info := &ModelInfo{ID: id, Kind: kind, Config: cfg, LoadedAt: time.Now()}
	m.mu.Lock()
	m.cur = info
	m.handle = h
	m.state = StateReady
	m.mu.Unlock()
	m.loads.Add(1)
	loadsTotal.WithLabelValues("ok").Inc()
	residentModels.Set(1)
	m.publisher.Publish(Event{Name: EventLoadReady, ModelID: id, Fields: map[string]any{
		"attempts":  attempts,
		"attention": string(cfg.Attention),
	}})
	m.log.Info().Str("event", EventLoadReady).Str("model", id).Int("attempts", attempts).
		Dur("took", time.Since(start)).Msg("model ready")
	return h, nil
}
