// Package sysctlservice reads raw values from the kernel configuration tree.
//
// Every read is a size probe followed by a fetch into a buffer of exactly the
// probed size. Values are returned as owned byte slices and decoded with the
// length-checked helpers in decode.go.
package sysctlservice

import (
	"errors"
	"strings"
	"syscall"
)

// maxFetchAttempts bounds how often a value that grew between probe and
// fetch is re-probed.
const maxFetchAttempts = 3

// Kernel is a configuration tree backend.
//
// Sysctl copies the value at path into dst and returns its length. With a nil
// dst it only reports the length. A dst that is too small fails with ENOMEM.
type Kernel interface {
	Sysctl(path KeyPath, dst []byte) (int, error)
	NameToKeyPath(name string) (KeyPath, error)
}

// QueryBytes returns the raw value stored at path.
func QueryBytes(k Kernel, path KeyPath) ([]byte, error) {
	if len(path) == 0 {
		return nil, &KernelQueryError{Op: "probe", Path: path, Code: syscall.EINVAL}
	}

	for attempt := 1; ; attempt++ {
		size, err := k.Sysctl(path, nil)
		if err != nil {
			return nil, &KernelQueryError{Op: "probe", Path: path.Clone(), Code: errnoOf(err)}
		}

		buf := make([]byte, size)
		n, err := k.Sysctl(path, buf)

		// The value grew between the two calls.
		grew := errors.Is(err, syscall.ENOMEM) || (err == nil && n > len(buf))
		if grew && attempt < maxFetchAttempts {
			continue
		}
		if grew && err == nil {
			err = syscall.ENOMEM
		}
		if err != nil {
			return nil, &KernelQueryError{Op: "fetch", Path: path.Clone(), Code: errnoOf(err)}
		}

		return buf[:n], nil
	}
}

// ResolveName translates a dotted name such as "machdep.cpu.brand_string"
// into its key path.
func ResolveName(k Kernel, name string) (KeyPath, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &KernelQueryError{Op: "resolve", Name: name, Code: syscall.EINVAL}
	}

	path, err := k.NameToKeyPath(name)
	if err != nil {
		return nil, &KernelQueryError{Op: "resolve", Name: name, Code: errnoOf(err)}
	}
	if len(path) == 0 {
		return nil, &KernelQueryError{Op: "resolve", Name: name, Code: syscall.ENOENT}
	}

	return path, nil
}

// QueryName resolves name and queries the resulting path.
func QueryName(k Kernel, name string) ([]byte, error) {
	path, err := ResolveName(k, name)
	if err != nil {
		return nil, err
	}

	b, err := QueryBytes(k, path)
	if err != nil {
		var qe *KernelQueryError
		if errors.As(err, &qe) {
			qe.Name = name
		}
		return nil, err
	}

	return b, nil
}

func errnoOf(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return syscall.EIO
}
