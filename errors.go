package cachecore

import (
	"fmt"

	"github.com/cachecore/cachecore/engine"
)

// BackendError wraps a failure returned by the storage backend. It is
// re-exported here so callers only ever import one error vocabulary,
// regardless of which internal package actually produced it.
type BackendError = engine.BackendError

// LoaderError wraps a failure returned by a configured Loader.
type LoaderError = engine.LoaderError

// ConfigurationError reports an invalid option combination discovered at
// construction time. It is always returned synchronously from New; it
// never occurs mid-lifetime.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cachecore: invalid configuration: %s", e.Reason)
}
