//go:build !darwin

package sysctlservice

// DefaultKernel returns the backend for the running system.
func DefaultKernel() (Kernel, error) {
	return NewHostTree()
}
