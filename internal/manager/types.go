package manager

import (
	"time"

	"genhost/pkg/types"
)

// State represents the lifecycle state of the manager.
type State string

const (
	StateEmpty   State = "empty"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// ModelInfo describes the resident model.
type ModelInfo struct {
	ID       string
	Kind     types.ModelKind
	Config   LoadConfig
	LoadedAt time.Time
}

// Snapshot is a read-only projection of the manager state.
type Snapshot struct {
	State        State
	CurrentModel *ModelInfo
	Err          string
}
