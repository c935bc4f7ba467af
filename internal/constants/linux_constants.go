package constants

// Legacy numeric ids from <linux/sysctl.h>. The binary sysctl(2) call is
// gone, but /proc/sys still mirrors the same tree, so the host tree serves
// these paths from there.
const (
	LinuxCtlKern = 1

	LinuxKernOSType     = 1
	LinuxKernOSRelease  = 2
	LinuxKernVersion    = 4
	LinuxKernNodename   = 7
	LinuxKernDomainname = 8
)

// HostHWRoot is the top level id the host tree uses for hardware facts that
// Linux never exposed through sysctl. It sits outside the range Linux used.
const HostHWRoot = 0x7f

// Children of HostHWRoot.
const (
	HostHWMachine      = 1
	HostHWModel        = 2
	HostHWAvailCPU     = 3
	HostHWMemSize      = 4
	HostHWOSVersion    = 5
	HostHWCPUBrand     = 6
	HostHWCPUVendor    = 7
	HostHWCPUCoreCount = 8
)

// Names of the HostHWRoot children.
const (
	NameHostMachine   = "hw.machine"
	NameHostModel     = "hw.model"
	NameHostAvailCPU  = "hw.availcpu"
	NameHostMemSize   = "hw.memsize"
	NameHostOSVersion = "kern.osproductversion"
)

// ProcSysRoot is where Linux exposes its configuration tree.
const ProcSysRoot = "/proc/sys"

// DMIProductName is the firmware reported product name.
const DMIProductName = "/sys/class/dmi/id/product_name"

// LinuxKeys lists the /proc/sys backed nodes served by the host tree.
func LinuxKeys() []WellKnown {
	return []WellKnown{
		{Name: "kernel.ostype", Path: []int32{LinuxCtlKern, LinuxKernOSType}, Kind: KindString},
		{Name: "kernel.osrelease", Path: []int32{LinuxCtlKern, LinuxKernOSRelease}, Kind: KindString},
		{Name: "kernel.version", Path: []int32{LinuxCtlKern, LinuxKernVersion}, Kind: KindString},
		{Name: "kernel.hostname", Path: []int32{LinuxCtlKern, LinuxKernNodename}, Kind: KindString},
		{Name: "kernel.domainname", Path: []int32{LinuxCtlKern, LinuxKernDomainname}, Kind: KindString},
	}
}

// HostHWKeys lists the hardware nodes the host tree adds under HostHWRoot.
func HostHWKeys() []WellKnown {
	hw := func(id int32) []int32 { return []int32{HostHWRoot, id} }
	return []WellKnown{
		{Name: NameHostMachine, Path: hw(HostHWMachine), Kind: KindString},
		{Name: NameHostModel, Path: hw(HostHWModel), Kind: KindString},
		{Name: NameHostAvailCPU, Path: hw(HostHWAvailCPU), Kind: KindInt32},
		{Name: NameHostMemSize, Path: hw(HostHWMemSize), Kind: KindUint64, Unit: UnitBytes},
		{Name: NameHostOSVersion, Path: hw(HostHWOSVersion), Kind: KindString},
		{Name: NameCPUBrand, Path: hw(HostHWCPUBrand), Kind: KindString},
		{Name: NameCPUVendor, Path: hw(HostHWCPUVendor), Kind: KindString},
		{Name: NameCPUCoreCount, Path: hw(HostHWCPUCoreCount), Kind: KindInt32},
	}
}
