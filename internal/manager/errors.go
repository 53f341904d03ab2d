package manager

import (
	"errors"
	"fmt"
	"strings"
)

// tooBusyError signals queue timeout/overflow for 429 mapping.
type tooBusyError struct{ modelID string }

func (e tooBusyError) Error() string { return "too busy: " + e.modelID }

// ErrTooBusy returns the backpressure error for modelID.
func ErrTooBusy(modelID string) error { return tooBusyError{modelID: modelID} }

// IsTooBusy reports whether err indicates backpressure (return 429).
func IsTooBusy(err error) bool {
	var e tooBusyError
	return errors.As(err, &e)
}

// modelNotFoundError signals an identifier outside the catalog. Maps to 404.
type modelNotFoundError struct{ id string }

func (e modelNotFoundError) Error() string { return "model not found: " + e.id }

// ErrModelNotFound returns an error when a requested model id is not present in the catalog.
func ErrModelNotFound(id string) error { return modelNotFoundError{id: id} }

// IsModelNotFound reports whether the error indicates a missing model id.
func IsModelNotFound(err error) bool {
	var e modelNotFoundError
	return errors.As(err, &e)
}

// loaderUnavailableError signals that the loading capability is missing
// altogether (worker down, runtime not compiled in). Maps to 503.
type loaderUnavailableError struct{ msg string }

func (e loaderUnavailableError) Error() string { return "loader unavailable: " + e.msg }

// ErrLoaderUnavailable constructs a loaderUnavailableError.
func ErrLoaderUnavailable(msg string) error { return loaderUnavailableError{msg: msg} }

// IsLoaderUnavailable reports whether err indicates a missing loader.
func IsLoaderUnavailable(err error) bool {
	var e loaderUnavailableError
	return errors.As(err, &e)
}

// loadFailedError wraps the final loader error for a model.
type loadFailedError struct {
	ModelID  string
	Attempts int
	Err      error
}

func (e loadFailedError) Error() string {
	return fmt.Sprintf("load %s failed after %d attempt(s): %v", e.ModelID, e.Attempts, e.Err)
}

func (e loadFailedError) Unwrap() error { return e.Err }

// IsLoadFailed reports whether err is a failed load.
func IsLoadFailed(err error) bool {
	var e loadFailedError
	return errors.As(err, &e)
}

// unsupportedOperationError is returned when the resident handle lacks the
// requested capability.
type unsupportedOperationError struct {
	modelID string
	cap     Capability
}

func (e unsupportedOperationError) Error() string {
	return fmt.Sprintf("model %s does not support %s", e.modelID, e.cap)
}

// ErrUnsupportedOperation returns the error raised when the handle for
// modelID does not offer capability c.
func ErrUnsupportedOperation(modelID string, c Capability) error {
	return unsupportedOperationError{modelID: modelID, cap: c}
}

// IsUnsupportedOperation reports whether err is a missing capability.
func IsUnsupportedOperation(err error) bool {
	var e unsupportedOperationError
	return errors.As(err, &e)
}

// unsupportedFeatureError is produced by loaders when the runtime rejects an
// acceleration feature (optimized attention kernels) for this model or device.
type unsupportedFeatureError struct {
	feature string
	msg     string
}

func (e unsupportedFeatureError) Error() string {
	if e.msg == "" {
		return e.feature + " not supported"
	}
	return e.msg
}

// ErrUnsupportedFeature constructs an unsupportedFeatureError.
func ErrUnsupportedFeature(feature, msg string) error {
	return unsupportedFeatureError{feature: feature, msg: msg}
}

// Runtimes without structured errors report the condition in text only.
var unsupportedFeatureMarkers = []string{"flash attention", "flash_attention", "not support"}

// IsUnsupportedFeature reports whether err says an acceleration feature is
// unavailable. Structured errors win; otherwise the message is matched against
// known markers.
func IsUnsupportedFeature(err error) bool {
	if err == nil {
		return false
	}
	var e unsupportedFeatureError
	if errors.As(err, &e) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, m := range unsupportedFeatureMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
