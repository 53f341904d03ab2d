package manager

import (
	"time"

	"genhost/pkg/types"
)

// Snapshot returns a read-only view of the manager state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := Snapshot{State: m.state, Err: m.err}
	if m.cur != nil {
		c := *m.cur
		s.CurrentModel = &c
	}
	return s
}

// Status builds a detailed status response for /status. Host memory is
// filled in by the caller.
func (m *Manager) Status() types.StatusResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := time.Now()
	waiting := len(m.queueCh) - int(m.inflight.Load())
	if waiting < 0 {
		waiting = 0
	}
	resp := types.StatusResponse{
		State:          string(m.state),
		Device:         string(m.settings.Device()),
		LastError:      m.err,
		QueueLen:       waiting,
		MaxQueueDepth:  cap(m.queueCh),
		LoadsTotal:     m.loads.Load(),
		ReleasesTotal:  m.releases.Load(),
		FallbacksTotal: m.fallbacks.Load(),
		UptimeSeconds:  int64(now.Sub(m.startTime).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
	if m.cur != nil {
		resp.Current = &types.CurrentModel{
			ID:        m.cur.ID,
			Kind:      m.cur.Kind,
			Device:    string(m.cur.Config.Device),
			Precision: string(m.cur.Config.Precision),
			Attention: string(m.cur.Config.Attention),
			LoadedAt:  m.cur.LoadedAt.Unix(),
		}
		if m.cur.Config.Quantization != QuantNone {
			resp.Current.Quantization = string(m.cur.Config.Quantization)
		}
	}
	return resp
}
