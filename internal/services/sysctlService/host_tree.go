//go:build !darwin

package sysctlservice

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/redjax/sysfacts/internal/constants"
)

// Names of the hardware nodes the host tree adds under constants.HostHWRoot.
const (
	HostNameMachine   = constants.NameHostMachine
	HostNameModel     = constants.NameHostModel
	HostNameAvailCPU  = constants.NameHostAvailCPU
	HostNameMemSize   = constants.NameHostMemSize
	HostNameOSVersion = constants.NameHostOSVersion
)

// NewHostTree builds the configuration tree for systems without a BSD style
// sysctl call. /proc/sys nodes keep their legacy Linux numbering and
// hardware facts are gathered through gopsutil and cpuid, encoded the same
// way the BSD kernel encodes them.
func NewHostTree() (*Tree, error) {
	return newHostTree(constants.ProcSysRoot, constants.DMIProductName)
}

func newHostTree(procSys, dmiProduct string) (*Tree, error) {
	fallbacks := map[string]func() (string, error){
		"kernel.hostname":  os.Hostname,
		"kernel.osrelease": host.KernelVersion,
		"kernel.ostype": func() (string, error) {
			info, err := host.Info()
			if err != nil {
				return "", err
			}
			return info.OS, nil
		},
	}

	var nodes []Node
	for _, wk := range constants.LinuxKeys() {
		nodes = append(nodes, Node{
			Path: wk.Path,
			Name: wk.Name,
			Read: procSysReader(procSys, wk.Name, fallbacks[wk.Name]),
		})
	}

	hwReaders := map[string]Reader{
		HostNameMachine:            stringReader(host.KernelArch),
		HostNameModel:              fileReader(dmiProduct),
		HostNameAvailCPU:           readAvailCPU,
		HostNameMemSize:            readMemSize,
		HostNameOSVersion:          stringReader(platformVersion),
		constants.NameCPUBrand:     stringReader(cpuBrand),
		constants.NameCPUVendor:    stringReader(cpuVendor),
		constants.NameCPUCoreCount: readCoreCount,
	}
	for _, wk := range constants.HostHWKeys() {
		read, ok := hwReaders[wk.Name]
		if !ok {
			return nil, fmt.Errorf("no reader for host key %s", wk.Name)
		}
		nodes = append(nodes, Node{Path: wk.Path, Name: wk.Name, Read: read})
	}

	return NewTree(nodes...)
}

// procSysReader maps "kernel.hostname" to <root>/kernel/hostname.
func procSysReader(root, name string, fallback func() (string, error)) Reader {
	path := filepath.Join(root, filepath.FromSlash(strings.ReplaceAll(name, ".", "/")))
	read := fileReader(path)
	if fallback == nil {
		return read
	}

	return func() ([]byte, error) {
		b, err := read()
		if err == nil {
			return b, nil
		}
		return stringReader(fallback)()
	}
}

func fileReader(path string) Reader {
	return func() ([]byte, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return EncodeString(string(bytes.TrimRight(data, "\n"))), nil
	}
}

func stringReader(get func() (string, error)) Reader {
	return func() ([]byte, error) {
		s, err := get()
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nil, syscall.ENOENT
		}
		return EncodeString(s), nil
	}
}

func readAvailCPU() ([]byte, error) {
	n, err := cpu.Counts(true)
	if err != nil {
		return nil, err
	}
	return Encode(int32(n)), nil
}

func readMemSize() ([]byte, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}
	return Encode(vm.Total), nil
}

func readCoreCount() ([]byte, error) {
	n := cpuid.CPU.PhysicalCores
	if n <= 0 {
		var err error
		if n, err = cpu.Counts(false); err != nil {
			return nil, err
		}
	}
	if n <= 0 {
		return nil, syscall.ENOENT
	}
	return Encode(int32(n)), nil
}

func platformVersion() (string, error) {
	platform, _, version, err := host.PlatformInformation()
	if err != nil {
		return "", fmt.Errorf("platform information: %w", err)
	}
	return strings.TrimSpace(platform + " " + version), nil
}

func cpuBrand() (string, error) {
	return strings.TrimSpace(cpuid.CPU.BrandName), nil
}

func cpuVendor() (string, error) {
	return cpuid.CPU.VendorString, nil
}
