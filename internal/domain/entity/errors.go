package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPreference is returned for a preference name that does not exist.
	ErrUnknownPreference = errors.New("unknown preference")

	// ErrUnknownPermission is returned for a permission name that does not exist.
	ErrUnknownPermission = errors.New("unknown permission")
)

// PersistenceError wraps a store read or write failure.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// PortError wraps a failure of the keep-awake, indicator or sound port.
type PortError struct {
	Port string
	Op   string
	Err  error
}

func (e *PortError) Error() string {
	return fmt.Sprintf("%s port: %s: %v", e.Port, e.Op, e.Err)
}

func (e *PortError) Unwrap() error { return e.Err }

// PermissionError reports a gated action attempted without the grant.
type PermissionError struct {
	Permission PermissionType
	Action     string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s requires the %q permission", e.Action, e.Permission)
}
