//go:build darwin

package sysctlservice

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/redjax/sysfacts/internal/constants"
)

// sysctlKernel talks to the kernel through the __sysctl system call.
type sysctlKernel struct{}

// DefaultKernel returns the backend for the running system.
func DefaultKernel() (Kernel, error) {
	return sysctlKernel{}, nil
}

func (sysctlKernel) Sysctl(path KeyPath, dst []byte) (int, error) {
	mib := []int32(path)
	n := uintptr(len(dst))

	var old unsafe.Pointer
	if len(dst) > 0 {
		old = unsafe.Pointer(&dst[0])
	}

	if err := rawSysctl(mib, old, &n, nil, 0); err != nil {
		return 0, err
	}

	return int(n), nil
}

func (sysctlKernel) NameToKeyPath(name string) (KeyPath, error) {
	var buf [unix.CTL_MAXNAME]int32
	n := uintptr(unix.CTL_MAXNAME) * unsafe.Sizeof(buf[0])

	bname, err := unix.ByteSliceFromString(name)
	if err != nil {
		return nil, err
	}

	mib := []int32{constants.CtlSysctl, constants.SysctlName2OID}
	// The kernel takes the name without its terminator.
	if err := rawSysctl(mib, unsafe.Pointer(&buf[0]), &n, unsafe.Pointer(&bname[0]), uintptr(len(name))); err != nil {
		return nil, err
	}

	used := int(n / unsafe.Sizeof(buf[0]))
	path := make(KeyPath, used)
	copy(path, buf[:used])

	return path, nil
}

func rawSysctl(mib []int32, oldp unsafe.Pointer, oldlen *uintptr, newp unsafe.Pointer, newlen uintptr) error {
	_, _, errno := unix.Syscall6(
		unix.SYS___SYSCTL,
		uintptr(unsafe.Pointer(&mib[0])),
		uintptr(len(mib)),
		uintptr(oldp),
		uintptr(unsafe.Pointer(oldlen)),
		uintptr(newp),
		newlen,
	)
	if errno != 0 {
		return errno
	}
	return nil
}
