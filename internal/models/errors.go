package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAvailable is returned when no data exists for the requested scope and window.
	ErrNotAvailable = errors.New("no data available")
	// ErrCapabilityMissing is returned when an operation requires an extension the server lacks.
	ErrCapabilityMissing = errors.New("capability missing")
	// ErrInvalidWindow is returned for an inverted window or a non-positive sample budget.
	ErrInvalidWindow = errors.New("invalid window")
	// ErrInvalidScope is returned when a request does not name the entity its group is scoped to.
	ErrInvalidScope = errors.New("invalid scope")
	// ErrUnknownGroup is returned for a metric group that does not exist.
	ErrUnknownGroup = errors.New("unknown metric group")
)

// CapabilityMissingError names the missing extension.
type CapabilityMissingError struct {
	ServerID int
	Name     string
}

// Error implements error.
func (e *CapabilityMissingError) Error() string {
	return fmt.Sprintf("%s is not installed on server %d", e.Name, e.ServerID)
}

// Is makes errors.Is(err, ErrCapabilityMissing) hold.
func (e *CapabilityMissingError) Is(target error) bool {
	return target == ErrCapabilityMissing
}
