// errors.go
package switcherprefs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput         = errors.New("invalid input parameters")
	ErrInvalidKey           = errors.New("invalid preference key")
	ErrInvalidValue         = errors.New("invalid preference value")
	ErrNotFound             = errors.New("preference not found")
	ErrPreferenceNotDefined = errors.New("preference not defined")
	ErrCorrupted            = errors.New("corrupted preference value")
	ErrSerialization        = errors.New("preference serialization failed")
	ErrStorageUnavailable   = errors.New("storage backend unavailable")
	ErrCacheUnavailable     = errors.New("cache backend unavailable")
	ErrInvalidVersion       = errors.New("invalid version string")
)

// CorruptionError reports a persisted value that cannot be converted to its
// preference's type.
type CorruptionError struct {
	Key string
	Raw string
	Err error
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("preference %q: cannot use %q: %v", e.Key, e.Raw, e.Err)
}

// Unwrap lets errors.Is match both ErrCorrupted and the underlying parse error.
func (e *CorruptionError) Unwrap() []error {
	return []error{ErrCorrupted, e.Err}
}
