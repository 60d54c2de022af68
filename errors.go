package plexnet

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a title or a search type doesn't match anything.
	ErrNotFound = errors.New("not found")

	// ErrUnknownType is matched by *UnknownTypeError.
	ErrUnknownType = errors.New("unknown type")

	// ErrNoServer is returned when a value has no server to resolve against.
	ErrNoServer = errors.New("no server")
)

// UnknownTypeError is returned when no constructor is registered for a discriminator.
type UnknownTypeError struct {
	Discriminator string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown library type: %s", e.Discriminator)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// TransportError wraps a failed request to the server.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	base := fmt.Sprintf("%s %s", e.Method, e.Path)
	if e.StatusCode != 0 {
		base += fmt.Sprintf(" (status=%d)", e.StatusCode)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ConfigError means a container was given an address it must never have.
// It indicates a programming error rather than a transient condition.
type ConfigError struct {
	Address string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("container address is not an expected path: %s", e.Address)
}

// ParseError is returned when a value can't be coerced to the requested type.
type ParseError struct {
	Raw string
	As  string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %q as %s: %v", e.Raw, e.As, e.Err)
	}
	return fmt.Sprintf("failed to parse %q as %s", e.Raw, e.As)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
