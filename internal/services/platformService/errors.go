package platformservice

import (
	"errors"
	"fmt"
)

// ErrNotOffered is returned by accessors for facts the active profile does
// not declare.
var ErrNotOffered = errors.New("not offered on this platform")

// ErrUnknownPlatform is returned when a profile id is not in the table.
var ErrUnknownPlatform = errors.New("unknown platform profile")

// EnumerationError wraps a failure to list network interfaces.
type EnumerationError struct {
	Err error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("enumerate interfaces: %v", e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}
