package sysctlservice

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"syscall"

	"github.com/redjax/sysfacts/internal/constants"
)

// Reader produces the current raw value of a node.
type Reader func() ([]byte, error)

// Node is one entry of an in-memory configuration tree.
type Node struct {
	Path KeyPath
	Name string
	Read Reader
}

// Tree is a Kernel backed by registered nodes. It follows the BSD kernel
// contract so the query layer cannot tell it apart from the real call.
type Tree struct {
	byPath map[string]Node
	byName map[string]Node
}

// NewTree builds a tree. Paths and names must be unique.
func NewTree(nodes ...Node) (*Tree, error) {
	t := &Tree{
		byPath: make(map[string]Node, len(nodes)),
		byName: make(map[string]Node, len(nodes)),
	}

	for _, n := range nodes {
		if len(n.Path) == 0 || len(n.Path) > constants.MaxKeyPathLen {
			return nil, fmt.Errorf("node %q: key path length %d out of range", n.Name, len(n.Path))
		}
		if n.Read == nil {
			return nil, fmt.Errorf("node %q: no reader", n.Name)
		}

		key := n.Path.String()
		if _, dup := t.byPath[key]; dup {
			return nil, fmt.Errorf("node %q: duplicate key path %s", n.Name, key)
		}
		n.Path = n.Path.Clone()
		t.byPath[key] = n

		if n.Name != "" {
			if _, dup := t.byName[n.Name]; dup {
				return nil, fmt.Errorf("duplicate node name %q", n.Name)
			}
			t.byName[n.Name] = n
		}
	}

	return t, nil
}

// StaticString returns a Reader for a fixed string value.
func StaticString(s string) Reader {
	b := EncodeString(s)
	return func() ([]byte, error) { return b, nil }
}

// StaticValue returns a Reader for a fixed integer value.
func StaticValue[T Integer](v T) Reader {
	b := Encode(v)
	return func() ([]byte, error) { return b, nil }
}

// Sysctl implements Kernel.
func (t *Tree) Sysctl(path KeyPath, dst []byte) (int, error) {
	n, ok := t.byPath[path.String()]
	if !ok {
		return 0, syscall.ENOENT
	}

	b, err := n.Read()
	if err != nil {
		return 0, readErrno(err)
	}

	if dst == nil {
		return len(b), nil
	}
	if len(dst) < len(b) {
		copy(dst, b)
		return len(b), syscall.ENOMEM
	}

	return copy(dst, b), nil
}

// NameToKeyPath implements Kernel.
func (t *Tree) NameToKeyPath(name string) (KeyPath, error) {
	n, ok := t.byName[name]
	if !ok {
		return nil, syscall.ENOENT
	}
	return n.Path.Clone(), nil
}

// Nodes returns the registered nodes ordered by key path.
func (t *Tree) Nodes() []Node {
	out := make([]Node, 0, len(t.byPath))
	for _, n := range t.byPath {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path.Less(out[j].Path) })
	return out
}

func readErrno(err error) syscall.Errno {
	var errno syscall.Errno
	switch {
	case errors.As(err, &errno):
		return errno
	case errors.Is(err, fs.ErrNotExist):
		return syscall.ENOENT
	case errors.Is(err, fs.ErrPermission):
		return syscall.EPERM
	default:
		return syscall.EIO
	}
}
