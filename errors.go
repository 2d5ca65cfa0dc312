package vscroll

import (
	"errors"
	"fmt"
)

// ErrUnknownLayout is returned when a configuration names a layout kind that
// does not exist.
var ErrUnknownLayout = errors.New("unknown layout kind")

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field  string // Dotted TOML key, e.g. "scroller.deceleration"
	Reason string
	Err    error // Underlying error, if any
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vscroll: config %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("vscroll: config %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is or wraps a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
