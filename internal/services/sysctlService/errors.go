package sysctlservice

import (
	"fmt"
	"syscall"
)

// KernelQueryError is returned when the kernel rejects a probe, fetch or name
// translation. It unwraps to the errno.
type KernelQueryError struct {
	// probe, fetch or resolve
	Op   string
	Path KeyPath
	Name string
	Code syscall.Errno
}

func (e *KernelQueryError) Error() string {
	target := e.Name
	if target == "" {
		target = e.Path.String()
	}
	return fmt.Sprintf("sysctl %s %s: %v", e.Op, target, e.Code)
}

func (e *KernelQueryError) Unwrap() error {
	return e.Code
}

// SizeMismatchError is returned when a buffer cannot be read as the
// requested fixed-width type.
type SizeMismatchError struct {
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("sysctl value is %d bytes, expected %d", e.Actual, e.Expected)
}

// MalformedEncodingError is returned when a string value is not valid UTF-8.
type MalformedEncodingError struct {
	// byte offset of the first invalid sequence
	Offset int
}

func (e *MalformedEncodingError) Error() string {
	return fmt.Sprintf("sysctl value is not valid UTF-8 (offset %d)", e.Offset)
}
