package manager

import (
	"context"
	"time"
)

// lock takes the single-writer slot, honoring ctx while waiting.
func (m *Manager) lock(ctx context.Context) error {
	select {
	case m.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) unlock() { <-m.sem }

// beginGeneration reserves a queue slot and then the single-writer slot.
// Both phases share one MaxWait deadline. Returns a release func to be deferred.
func (m *Manager) beginGeneration(ctx context.Context, modelID string) (func(), error) {
	timer := time.NewTimer(m.maxWait)
	defer timer.Stop()

	// Try to reserve a queue slot with timeout
	select {
	case m.queueCh <- struct{}{}:
	case <-ctx.Done():
		return func() {}, ctx.Err()
	case <-timer.C:
		return func() {}, tooBusyError{modelID: modelID}
	}

	// Wait to acquire the single in-flight slot
	acquired := false
	defer func() {
		if !acquired {
			<-m.queueCh
		}
	}()
	select {
	case m.sem <- struct{}{}:
		acquired = true
		m.inflight.Add(1)
		return func() { m.inflight.Add(-1); <-m.sem; <-m.queueCh }, nil
	case <-ctx.Done():
		return func() {}, ctx.Err()
	case <-timer.C:
		return func() {}, tooBusyError{modelID: modelID}
	}
}

// Do makes identifier resident and runs fn with its handle while holding the
// single-writer slot, so no swap can release the handle mid-generation. At
// most MaxQueueDepth callers wait; a caller waiting longer than MaxWait gets a
// too-busy error.
func (m *Manager) Do(ctx context.Context, identifier string, settings DeviceSettings, fn func(Handle) error) error {
	if identifier == "" {
		return ErrModelNotFound("(unspecified)")
	}
	done, err := m.beginGeneration(ctx, identifier)
	if err != nil {
		return err
	}
	defer done()
	h, err := m.acquireLocked(ctx, identifier, settings)
	if err != nil {
		return err
	}
	return fn(h)
}
