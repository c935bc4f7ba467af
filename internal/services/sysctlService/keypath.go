package sysctlservice

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// KeyPath identifies a node in the kernel configuration tree.
type KeyPath []int32

// String renders the path as dot separated ids, e.g. "6.24".
func (p KeyPath) String() string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = strconv.FormatInt(int64(id), 10)
	}
	return strings.Join(parts, ".")
}

// Equal reports whether both paths name the same node.
func (p KeyPath) Equal(other KeyPath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Less orders paths id by id, shorter prefixes first.
func (p KeyPath) Less(other KeyPath) bool {
	return slices.Compare(p, other) < 0
}

// Clone returns a copy the caller may keep.
func (p KeyPath) Clone() KeyPath {
	if p == nil {
		return nil
	}
	out := make(KeyPath, len(p))
	copy(out, p)
	return out
}

// ParseKeyPath parses the numeric form produced by String.
func ParseKeyPath(s string) (KeyPath, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty key path")
	}

	fields := strings.Split(s, ".")
	path := make(KeyPath, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid key path %q: %w", s, err)
		}
		if id < 0 {
			return nil, fmt.Errorf("invalid key path %q: negative id %d", s, id)
		}
		path = append(path, int32(id))
	}

	return path, nil
}

// LooksNumeric reports whether s is a numeric key path rather than a dotted
// symbolic name.
func LooksNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}
