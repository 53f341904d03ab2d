package manager

import (
	"context"

	"github.com/google/uuid"
)

// Switch kicks off a background acquire and returns an operation ID. Callers
// poll Status to observe the transition. The work uses a detached context so
// it outlives the request that started it.
func (m *Manager) Switch(identifier string, settings DeviceSettings) string {
	op := uuid.NewString()
	m.bg.Add(1)
	go func() {
		defer m.bg.Done()
		if _, err := m.Acquire(context.Background(), identifier, settings); err != nil {
			m.log.Warn().Str("event", "switch_failed").Str("op", op).Str("model", identifier).Err(err).Msg("switch failed")
			return
		}
		m.log.Debug().Str("event", "switch_done").Str("op", op).Str("model", identifier).Msg("switch done")
	}()
	return op
}
