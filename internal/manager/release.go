package manager

import (
	"context"
	"errors"
	"fmt"
)

// Release unloads the resident model, if any, and asks the allocator to
// reclaim device memory. Release on an empty manager is a no-op.
func (m *Manager) Release(ctx context.Context) error {
	if err := m.lock(ctx); err != nil {
		return err
	}
	defer m.unlock()
	return m.releaseLocked(ctx)
}

// Close waits for background switches and releases the resident model.
// Intended for shutdown; errors are best-effort.
func (m *Manager) Close() error {
	m.bg.Wait()
	return m.Release(context.Background())
}

// releaseLocked requires the single-writer slot. State is empty afterwards
// even when closing the handle or reclaiming memory fails.
func (m *Manager) releaseLocked(ctx context.Context) error {
	m.mu.Lock()
	h, cur := m.handle, m.cur
	m.handle, m.cur = nil, nil
	if h != nil {
		m.state = StateEmpty
	}
	m.mu.Unlock()
	if h == nil {
		return nil
	}

	id := h.ID()
	m.publisher.Publish(Event{Name: EventReleaseStart, ModelID: id})
	m.log.Info().Str("event", EventReleaseStart).Str("model", id).Msg("releasing model")

	rctx := context.WithoutCancel(ctx)
	var errs []error
	if err := h.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close handle: %w", err))
	}
	if cur != nil && cur.Config.Device == DeviceAccelerator {
		if err := m.allocator.EmptyCache(rctx); err != nil {
			errs = append(errs, fmt.Errorf("empty cache: %w", err))
		}
	}
	m.allocator.Collect(rctx)

	m.releases.Add(1)
	residentModels.Set(0)
	err := errors.Join(errs...)
	if err != nil {
		releasesTotal.WithLabelValues("error").Inc()
		m.log.Warn().Str("event", EventReleaseDone).Str("model", id).Err(err).Msg("release finished with errors")
	} else {
		releasesTotal.WithLabelValues("ok").Inc()
		m.log.Info().Str("event", EventReleaseDone).Str("model", id).Msg("model released")
	}
	m.publisher.Publish(Event{Name: EventReleaseDone, ModelID: id})
	return err
}
