package sysctlservice

import (
	"bytes"
	"errors"
	"syscall"
	"testing"
)

func testTree(t *testing.T) *Tree {
	t.Helper()

	tree, err := NewTree(
		Node{Path: KeyPath{1, 10}, Name: "kern.hostname", Read: StaticString("test-host.local")},
		Node{Path: KeyPath{6, 25}, Name: "hw.availcpu", Read: StaticValue(int32(8))},
		Node{Path: KeyPath{6, 24}, Name: "hw.memsize", Read: StaticValue(uint64(16 << 30))},
		Node{Path: KeyPath{104, 7}, Name: "machdep.cpu.brand_string", Read: StaticString("Test CPU @ 3.00GHz")},
	)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	return tree
}

func TestQueryBytesIdempotent(t *testing.T) {
	tree := testTree(t)

	first, err := QueryBytes(tree, KeyPath{1, 10})
	if err != nil {
		t.Fatalf("QueryBytes: %v", err)
	}
	second, err := QueryBytes(tree, KeyPath{1, 10})
	if err != nil {
		t.Fatalf("QueryBytes: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("consecutive queries differ: %q vs %q", first, second)
	}
}

func TestQueryBytesMissingNode(t *testing.T) {
	tree := testTree(t)

	b, err := QueryBytes(tree, KeyPath{1, 9999})
	if b != nil {
		t.Fatalf("got buffer %q for missing node", b)
	}

	var qe *KernelQueryError
	if !errors.As(err, &qe) {
		t.Fatalf("got %v, want KernelQueryError", err)
	}
	if qe.Op != "probe" || qe.Code != syscall.ENOENT {
		t.Fatalf("KernelQueryError = %+v, want probe/ENOENT", qe)
	}
	if !errors.Is(err, syscall.ENOENT) {
		t.Fatalf("error does not unwrap to ENOENT")
	}
}

func TestQueryBytesEmptyPath(t *testing.T) {
	_, err := QueryBytes(testTree(t), nil)
	if !errors.Is(err, syscall.EINVAL) {
		t.Fatalf("got %v, want EINVAL", err)
	}
}

func TestResolveNameMatchesLiteralPath(t *testing.T) {
	tree := testTree(t)

	path, err := ResolveName(tree, "hw.memsize")
	if err != nil {
		t.Fatalf("ResolveName: %v", err)
	}
	if !path.Equal(KeyPath{6, 24}) {
		t.Fatalf("ResolveName = %s; want 6.24", path)
	}

	viaName, err := QueryName(tree, "hw.memsize")
	if err != nil {
		t.Fatalf("QueryName: %v", err)
	}
	viaPath, err := QueryBytes(tree, KeyPath{6, 24})
	if err != nil {
		t.Fatalf("QueryBytes: %v", err)
	}
	if !bytes.Equal(viaName, viaPath) {
		t.Fatalf("name and literal path disagree: %v vs %v", viaName, viaPath)
	}
}

func TestResolveNameUnknown(t *testing.T) {
	_, err := ResolveName(testTree(t), "no.such.node")

	var qe *KernelQueryError
	if !errors.As(err, &qe) || qe.Op != "resolve" || qe.Code != syscall.ENOENT {
		t.Fatalf("got %v, want resolve/ENOENT", err)
	}
	if qe.Name != "no.such.node" {
		t.Fatalf("Name = %q", qe.Name)
	}

	if _, err := ResolveName(testTree(t), ""); !errors.Is(err, syscall.EINVAL) {
		t.Fatalf("empty name: got %v, want EINVAL", err)
	}
}

func TestTypedHelpers(t *testing.T) {
	tree := testTree(t)

	host, err := String(tree, KeyPath{1, 10})
	if err != nil || host != "test-host.local" {
		t.Fatalf("String = %q, %v", host, err)
	}

	brand, err := StringByName(tree, "machdep.cpu.brand_string")
	if err != nil || brand != "Test CPU @ 3.00GHz" {
		t.Fatalf("StringByName = %q, %v", brand, err)
	}

	ncpu, err := Value[int32](tree, KeyPath{6, 25})
	if err != nil || ncpu != 8 {
		t.Fatalf("Value[int32] = %d, %v", ncpu, err)
	}

	// hw.memsize is eight bytes wide.
	var sizeErr *SizeMismatchError
	if _, err := ValueByName[int32](tree, "hw.memsize"); !errors.As(err, &sizeErr) {
		t.Fatalf("ValueByName[int32] on a uint64 node: got %v", err)
	}
}

// growingKernel reports a value that gets longer after every probe.
type growingKernel struct {
	grows  int
	probes int
	value  []byte
}

func (g *growingKernel) Sysctl(path KeyPath, dst []byte) (int, error) {
	if dst == nil {
		g.probes++
		return len(g.value), nil
	}
	if g.grows > 0 {
		g.grows--
		g.value = append(g.value, 'x')
	}
	if len(dst) < len(g.value) {
		return len(g.value), syscall.ENOMEM
	}
	return copy(dst, g.value), nil
}

func (g *growingKernel) NameToKeyPath(string) (KeyPath, error) {
	return nil, syscall.ENOENT
}

func TestQueryBytesValueGrows(t *testing.T) {
	k := &growingKernel{grows: 1, value: []byte("abc")}

	b, err := QueryBytes(k, KeyPath{1, 4})
	if err != nil {
		t.Fatalf("QueryBytes: %v", err)
	}
	if string(b) != "abcx" {
		t.Fatalf("got %q; want %q", b, "abcx")
	}
	if k.probes != 2 {
		t.Fatalf("probes = %d; want 2", k.probes)
	}
}

func TestQueryBytesKeepsGrowing(t *testing.T) {
	k := &growingKernel{grows: 100, value: []byte("abc")}

	_, err := QueryBytes(k, KeyPath{1, 4})

	var qe *KernelQueryError
	if !errors.As(err, &qe) || qe.Op != "fetch" || qe.Code != syscall.ENOMEM {
		t.Fatalf("got %v, want fetch/ENOMEM", err)
	}
	if k.probes != maxFetchAttempts {
		t.Fatalf("probes = %d; want %d", k.probes, maxFetchAttempts)
	}
}

// shrinkingKernel reports sizeHint bytes but only hands back value.
type shrinkingKernel struct {
	sizeHint int
	value    []byte
	// Returned from the fetch regardless of what was copied.
	fetchLen int
}

func (s *shrinkingKernel) Sysctl(path KeyPath, dst []byte) (int, error) {
	if dst == nil {
		return s.sizeHint, nil
	}
	n := copy(dst, s.value)
	if s.fetchLen > 0 {
		return s.fetchLen, nil
	}
	return n, nil
}

func (s *shrinkingKernel) NameToKeyPath(string) (KeyPath, error) {
	return nil, syscall.ENOENT
}

func TestQueryBytesValueShrinks(t *testing.T) {
	k := &shrinkingKernel{sizeHint: 8, value: []byte("abc\x00")}

	b, err := QueryBytes(k, KeyPath{1, 4})
	if err != nil {
		t.Fatalf("QueryBytes: %v", err)
	}
	if string(b) != "abc\x00" {
		t.Fatalf("got %q; want %q", b, "abc\x00")
	}
	if len(b) != 4 {
		t.Fatalf("len = %d; want 4", len(b))
	}
}

func TestQueryBytesOverReportedLength(t *testing.T) {
	// The fetch claims more bytes than the buffer holds but returns no error.
	k := &shrinkingKernel{sizeHint: 4, value: []byte("abcd"), fetchLen: 64}

	b, err := QueryBytes(k, KeyPath{1, 4})

	var qe *KernelQueryError
	if !errors.As(err, &qe) || qe.Op != "fetch" || qe.Code != syscall.ENOMEM {
		t.Fatalf("got %q, %v; want fetch/ENOMEM", b, err)
	}
	if b != nil {
		t.Fatalf("got %q alongside an error", b)
	}
}

func TestNewTreeRejectsDuplicates(t *testing.T) {
	_, err := NewTree(
		Node{Path: KeyPath{1, 1}, Name: "a", Read: StaticString("a")},
		Node{Path: KeyPath{1, 1}, Name: "b", Read: StaticString("b")},
	)
	if err == nil {
		t.Fatal("expected duplicate path error")
	}

	_, err = NewTree(Node{Path: KeyPath{}, Name: "empty", Read: StaticString("x")})
	if err == nil {
		t.Fatal("expected empty path error")
	}
}
