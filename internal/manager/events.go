package manager

// Event represents a manager lifecycle event.
// Minimal and stable: name + model ID and optional fields via key/values.
type Event struct {
	Name    string
	ModelID string
	Fields  map[string]any
}

// Event names.
const (
	EventAcquireHit   = "acquire_hit"
	EventReleaseStart = "release_start"
	EventReleaseDone  = "release_done"
	EventLoadStart    = "load_start"
	EventLoadRetry    = "load_retry"
	EventLoadReady    = "load_ready"
	EventLoadFailed   = "load_failed"
)

// EventPublisher receives events from the manager. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
