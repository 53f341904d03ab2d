// Package manager owns the lifecycle of the single resident model. It is
// structured into small files by concern:
//
//   - manager.go: core Manager type, constructor, simple getters.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - types.go: state types (State, ModelInfo, Snapshot).
//   - loadconfig.go: device settings and per-load configuration resolution.
//   - handle.go: the Handle type and capability interfaces.
//   - loader_iface.go: Loader and Allocator collaborators.
//   - errors.go: error kinds and predicates (IsLoadFailed, IsTooBusy, ...).
//   - acquire.go: Acquire and the load path with the attention fallback.
//   - release.go: Release/Close and the swap-out sequence.
//   - admission.go: the single-writer slot and Do's bounded queue.
//   - ops.go: background Switch.
//   - status_report.go: Snapshot/Status reporting helpers.
//
// At most one model is resident at any time. Every state-changing call is
// serialized; a swap always releases the old handle and reclaims device
// memory before the new load starts.
//
// External packages should use public methods only (NewWithConfig, Acquire,
// Do, Release, Close, Status). Internal types are subject to change.
package manager
