package manager

import (
	"time"

	"github.com/rs/zerolog"

	"genhost/pkg/types"
)

// Defaults applied when corresponding ManagerConfig fields are unset.
const (
	defaultMaxQueueDepth = 32
	defaultMaxWait       = 30 * time.Second
)

// ManagerConfig encapsulates all collaborators and tunables for Manager construction.
type ManagerConfig struct {
	// Loader makes models resident. Required.
	Loader Loader
	// Allocator reclaims device memory after a release. Nil means no-op.
	Allocator Allocator
	Registry  []types.Model
	// Settings are the default device settings used by Switch and callers
	// that do not carry their own.
	Settings      DeviceSettings
	MaxQueueDepth int
	MaxWait       time.Duration
	// Logger receives lifecycle logs. Nil disables logging.
	Logger    *zerolog.Logger
	Publisher EventPublisher
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		state:     StateEmpty,
		registry:  cfg.Registry,
		settings:  cfg.Settings,
		loader:    cfg.Loader,
		allocator: cfg.Allocator,
		publisher: cfg.Publisher,
		sem:       make(chan struct{}, 1),
	}
	if m.loader == nil {
		m.loader = missingLoader{}
	}
	if m.allocator == nil {
		m.allocator = noopAllocator{}
	}
	if m.publisher == nil {
		m.publisher = noopPublisher{}
	}
	if cfg.Logger != nil {
		m.log = cfg.Logger.With().Str("component", "manager").Logger()
	} else {
		m.log = zerolog.Nop()
	}
	// Apply defaults if unset
	if cfg.MaxQueueDepth <= 0 {
		m.maxQueueDepth = defaultMaxQueueDepth
	} else {
		m.maxQueueDepth = cfg.MaxQueueDepth
	}
	if cfg.MaxWait <= 0 {
		m.maxWait = defaultMaxWait
	} else {
		m.maxWait = cfg.MaxWait
	}
	m.queueCh = make(chan struct{}, m.maxQueueDepth)
	m.startTime = time.Now()
	return m
}
