package capabilities

import (
	"os/exec"
	"runtime"
)

// Platform identifies the system the binary runs on.
type Platform struct {
	OS   string
	Arch string
}

// Detect returns the platform the binary was built for.
func Detect() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}

// IsApple reports whether p runs a Darwin kernel, macOS or iOS.
func (p Platform) IsApple() bool {
	return p.OS == "darwin" || p.IsAppleMobile()
}

// IsAppleMobile reports whether p is an iOS build, device or simulator.
func (p Platform) IsAppleMobile() bool {
	return p.OS == "ios"
}

// IsSimulator reports whether p is an iOS build running on an Intel host.
// Simulators answer hardware queries like the Mac they run on.
func (p Platform) IsSimulator() bool {
	return p.IsAppleMobile() && (p.Arch == "amd64" || p.Arch == "386")
}

// Returns path to a binary, if found (i.e. networksetup -> /usr/sbin/networksetup)
func Which(binary string) (string, error) {
	return exec.LookPath(binary)
}

// Test if a command is available, i.e. 'iwgetid'
func IsCommandAvailable(binary string) bool {
	_, err := Which(binary)

	return err == nil
}
