package manager

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"genhost/pkg/types"
)

// Manager owns at most one resident model handle. It is constructed once at
// startup and shared by every request handler.
type Manager struct {
	mu     sync.RWMutex
	state  State
	cur    *ModelInfo
	handle Handle
	err    string

	registry []types.Model
	settings DeviceSettings

	loader    Loader
	allocator Allocator
	publisher EventPublisher
	log       zerolog.Logger

	// sem is the single-writer slot serializing Acquire, Do, Release and Close.
	sem chan struct{}
	// queueCh bounds the number of Do callers waiting for sem.
	queueCh       chan struct{}
	maxQueueDepth int
	maxWait       time.Duration
	// inflight counts Do callers holding sem; they also hold a queueCh slot.
	inflight atomic.Int32

	// background Switch operations
	bg sync.WaitGroup

	loads     atomic.Uint64
	releases  atomic.Uint64
	fallbacks atomic.Uint64
	startTime time.Time
}

// New builds a Manager with package defaults for queueing.
func New(loader Loader, reg []types.Model, settings DeviceSettings) *Manager {
	return NewWithConfig(ManagerConfig{
		Loader:   loader,
		Registry: reg,
		Settings: settings,
	})
}

// Settings returns the device settings the manager was configured with.
func (m *Manager) Settings() DeviceSettings { return m.settings }

// Ready reports whether a model is resident and the last load succeeded.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateReady && m.handle != nil
}

func (m *Manager) ListModels() []types.Model {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// return a shallow copy to avoid external mutation
	out := make([]types.Model, len(m.registry))
	copy(out, m.registry)
	return out
}

// missingLoader stands in when no Loader was configured.
type missingLoader struct{}

func (missingLoader) Available() error { return ErrLoaderUnavailable("no loader configured") }

func (missingLoader) Load(_ context.Context, id string, _ LoadConfig) (Handle, error) {
	return nil, ErrLoaderUnavailable("no loader configured")
}
