package constants

// Top level identifiers from <sys/sysctl.h>.
const (
	CtlKern = 1
	CtlHW   = 6
)

// CTL_KERN children.
const (
	KernOSType    = 1
	KernOSRelease = 2
	KernOSRev     = 3
	KernVersion   = 4
	KernHostname  = 10
	KernOSVersion = 65
)

// CTL_HW children.
const (
	HWMachine  = 1
	HWModel    = 2
	HWNCPU     = 3
	HWMemSize  = 24
	HWAvailCPU = 25
)

// Names that have no fixed numeric id and must be resolved at runtime.
const (
	NameCPUBrand     = "machdep.cpu.brand_string"
	NameCPUVendor    = "machdep.cpu.vendor"
	NameCPUCoreCount = "machdep.cpu.core_count"
)

// DarwinKeys lists the keys used by the Apple profiles.
func DarwinKeys() []WellKnown {
	return []WellKnown{
		{Name: "kern.ostype", Path: []int32{CtlKern, KernOSType}, Kind: KindString},
		{Name: "kern.osrelease", Path: []int32{CtlKern, KernOSRelease}, Kind: KindString},
		{Name: "kern.osrevision", Path: []int32{CtlKern, KernOSRev}, Kind: KindInt32},
		{Name: "kern.version", Path: []int32{CtlKern, KernVersion}, Kind: KindString},
		{Name: "kern.hostname", Path: []int32{CtlKern, KernHostname}, Kind: KindString},
		{Name: "kern.osversion", Path: []int32{CtlKern, KernOSVersion}, Kind: KindString},
		{Name: "hw.machine", Path: []int32{CtlHW, HWMachine}, Kind: KindString},
		{Name: "hw.model", Path: []int32{CtlHW, HWModel}, Kind: KindString},
		{Name: "hw.ncpu", Path: []int32{CtlHW, HWNCPU}, Kind: KindInt32},
		{Name: "hw.memsize", Path: []int32{CtlHW, HWMemSize}, Kind: KindUint64, Unit: UnitBytes},
		{Name: "hw.availcpu", Path: []int32{CtlHW, HWAvailCPU}, Kind: KindInt32},
		{Name: NameCPUBrand, Kind: KindString},
		{Name: NameCPUVendor, Kind: KindString},
		{Name: NameCPUCoreCount, Kind: KindInt32},
	}
}
