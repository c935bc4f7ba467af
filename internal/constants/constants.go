package constants

// MaxKeyPathLen is the deepest key path the name translation will return.
// Matches CTL_MAXNAME on Darwin.
const MaxKeyPathLen = 12

// Name-to-OID translation node used by the BSD family kernels.
const (
	CtlSysctl      = 0
	SysctlName2OID = 3
)

// Value kinds of a WellKnown key.
const (
	KindString = "string"
	KindInt32  = "int32"
	KindUint64 = "uint64"
)

// UnitBytes marks a value counted in bytes.
const UnitBytes = "bytes"

// WellKnown describes a key with the dotted name the kernel answers to.
type WellKnown struct {
	Name string
	// Nil when the kernel assigns the id at boot and the name must be
	// resolved.
	Path []int32
	Kind string
	Unit string
}

// LookupKey finds a key by dotted name or, failing that, by literal path.
func LookupKey(keys []WellKnown, name string, path []int32) (WellKnown, bool) {
	for _, wk := range keys {
		if name != "" && wk.Name == name {
			return wk, true
		}
	}

	if len(path) == 0 {
		return WellKnown{}, false
	}
	for _, wk := range keys {
		if samePath(wk.Path, path) {
			return wk, true
		}
	}
	return WellKnown{}, false
}

func samePath(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
