package platformservice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/redjax/sysfacts/internal/constants"
	"github.com/redjax/sysfacts/internal/services/platformService/capabilities"
	sysctlservice "github.com/redjax/sysfacts/internal/services/sysctlService"
)

// Fact names a single value a profile can offer.
type Fact string

const (
	FactHostname      Fact = "hostname"
	FactOSVersion     Fact = "osversion"
	FactOSRelease     Fact = "osrelease"
	FactOSType        Fact = "ostype"
	FactOSRevision    Fact = "osrevision"
	FactKernelVersion Fact = "kernelversion"
	FactModel         Fact = "model"
	FactMachine       Fact = "machine"
	FactAvailableCPUs Fact = "availablecpus"
	FactCPUBrand      Fact = "cpubrand"
	FactCPUVendor     Fact = "cpuvendor"
	FactPhysicalCores Fact = "physicalcores"
	FactMemSize       Fact = "memsize"
	FactTethering     Fact = "tethering"
	FactNetworkName   Fact = "networkname"
)

// Key locates a fact in the configuration tree, either by literal path or by
// a name resolved at query time.
type Key struct {
	Path sysctlservice.KeyPath
	Name string
}

// Literal builds a Key from fixed ids.
func Literal(ids ...int32) Key {
	return Key{Path: sysctlservice.KeyPath(ids)}
}

// Named builds a Key that is resolved through the kernel's name lookup.
func Named(name string) Key {
	return Key{Name: name}
}

func (k Key) String() string {
	if k.Name != "" {
		return k.Name
	}
	return k.Path.String()
}

// WiFiMethod selects how Wi-Fi state is inferred.
type WiFiMethod string

const (
	// WiFiMultiplicity counts how often an interface name shows up in the
	// interface address list. Apple only, and version dependent.
	WiFiMultiplicity WiFiMethod = "multiplicity"
	// WiFiSysfs reads /sys/class/net directly.
	WiFiSysfs WiFiMethod = "sysfs"
)

// WiFi holds the interface names the Wi-Fi heuristics look for.
type WiFi struct {
	Method WiFiMethod
	// Standard Wi-Fi adapter, e.g. en0.
	Interface string
	// Auxiliary radio that is duplicated while the radio is on, e.g. awdl0.
	AuxInterface string
	// Substring identifying a tethering bridge, e.g. bridge.
	TetherMatch string
}

// SSIDLookup is a command that prints the associated network name.
type SSIDLookup struct {
	Command string
	Args    []string
	// Output prefix stripped before the name. Output without it means no
	// association.
	Prefix string
}

// Family names the key numbering a profile is written against.
type Family string

const (
	FamilyApple Family = "apple"
	FamilyHost  Family = "host"
)

// Profile is the capability table for one platform family.
type Profile struct {
	ID          string
	Description string
	Family      Family
	Keys        map[Fact]Key
	Tethering   bool
	WiFi        WiFi
	SSID        *SSIDLookup
}

// Offers reports whether the profile can answer f.
func (p Profile) Offers(f Fact) bool {
	switch f {
	case FactTethering:
		return p.Tethering
	case FactNetworkName:
		return true
	}
	_, ok := p.Keys[f]
	return ok
}

// KnownKeys lists the keys of the profile's family with their value kinds.
func (p Profile) KnownKeys() []constants.WellKnown {
	if p.Family == FamilyApple {
		return constants.DarwinKeys()
	}
	return append(constants.LinuxKeys(), constants.HostHWKeys()...)
}

// NativeTo reports whether the default kernel of pl speaks this profile's
// numbering.
func (p Profile) NativeTo(pl capabilities.Platform) bool {
	return (p.Family == FamilyApple) == pl.IsApple()
}

// Facts returns the keyed facts of p sorted by name.
func (p Profile) Facts() []Fact {
	out := make([]Fact, 0, len(p.Keys))
	for f := range p.Keys {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func appleKeys() map[Fact]Key {
	return map[Fact]Key{
		FactHostname:      Literal(constants.CtlKern, constants.KernHostname),
		FactOSVersion:     Literal(constants.CtlKern, constants.KernOSVersion),
		FactOSRelease:     Literal(constants.CtlKern, constants.KernOSRelease),
		FactOSType:        Literal(constants.CtlKern, constants.KernOSType),
		FactOSRevision:    Literal(constants.CtlKern, constants.KernOSRev),
		FactKernelVersion: Literal(constants.CtlKern, constants.KernVersion),
		FactModel:         Literal(constants.CtlHW, constants.HWModel),
		FactMachine:       Literal(constants.CtlHW, constants.HWMachine),
		FactAvailableCPUs: Literal(constants.CtlHW, constants.HWAvailCPU),
	}
}

func macOSProfile() Profile {
	keys := appleKeys()
	keys[FactCPUBrand] = Named(constants.NameCPUBrand)
	keys[FactCPUVendor] = Named(constants.NameCPUVendor)
	keys[FactPhysicalCores] = Named(constants.NameCPUCoreCount)
	keys[FactMemSize] = Literal(constants.CtlHW, constants.HWMemSize)

	return Profile{
		ID:          "macos",
		Description: "macOS",
		Family:      FamilyApple,
		Keys:        keys,
		WiFi: WiFi{
			Method:       WiFiMultiplicity,
			Interface:    "en0",
			AuxInterface: "awdl0",
		},
		SSID: &SSIDLookup{
			Command: "networksetup",
			Args:    []string{"-getairportnetwork", "{interface}"},
			Prefix:  "Current Wi-Fi Network:",
		},
	}
}

func iOSProfile(simulator bool) Profile {
	keys := appleKeys()
	id, desc := "ios-simulator", "iOS simulator"
	if !simulator {
		// On devices hw.model and hw.machine report each other's value.
		keys[FactModel], keys[FactMachine] = keys[FactMachine], keys[FactModel]
		id, desc = "ios", "iOS"
	}

	return Profile{
		ID:          id,
		Description: desc,
		Family:      FamilyApple,
		Keys:        keys,
		Tethering:   true,
		WiFi: WiFi{
			Method:       WiFiMultiplicity,
			Interface:    "en0",
			AuxInterface: "awdl0",
			TetherMatch:  "bridge",
		},
	}
}

func hostProfile() Profile {
	hw := func(id int32) Key { return Literal(constants.HostHWRoot, id) }

	return Profile{
		ID:          "host",
		Description: "generic host",
		Family:      FamilyHost,
		Keys: map[Fact]Key{
			FactHostname:      Literal(constants.LinuxCtlKern, constants.LinuxKernNodename),
			FactOSVersion:     hw(constants.HostHWOSVersion),
			FactOSRelease:     Literal(constants.LinuxCtlKern, constants.LinuxKernOSRelease),
			FactOSType:        Literal(constants.LinuxCtlKern, constants.LinuxKernOSType),
			FactKernelVersion: Literal(constants.LinuxCtlKern, constants.LinuxKernVersion),
			FactModel:         hw(constants.HostHWModel),
			FactMachine:       hw(constants.HostHWMachine),
			FactAvailableCPUs: hw(constants.HostHWAvailCPU),
			FactCPUBrand:      Named(constants.NameCPUBrand),
			FactCPUVendor:     Named(constants.NameCPUVendor),
			FactPhysicalCores: Named(constants.NameCPUCoreCount),
			FactMemSize:       hw(constants.HostHWMemSize),
		},
		WiFi: WiFi{
			Method:    WiFiSysfs,
			Interface: "wlan0",
		},
		SSID: &SSIDLookup{
			Command: "iwgetid",
			Args:    []string{"-r"},
		},
	}
}

// Profiles returns every known profile, keyed by id.
func Profiles() map[string]Profile {
	all := []Profile{macOSProfile(), iOSProfile(false), iOSProfile(true), hostProfile()}

	out := make(map[string]Profile, len(all))
	for _, p := range all {
		out[p.ID] = p
	}
	return out
}

// ProfileIDs returns the known profile ids in sorted order.
func ProfileIDs() []string {
	ids := make([]string, 0, 4)
	for id := range Profiles() {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ProfileByID looks up a profile. An empty id selects the detected one.
func ProfileByID(id string) (Profile, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return ProfileFor(capabilities.Detect()), nil
	}

	p, ok := Profiles()[id]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPlatform, id, strings.Join(ProfileIDs(), ", "))
	}
	return p, nil
}

// ProfileFor picks the profile matching a detected platform.
func ProfileFor(p capabilities.Platform) Profile {
	switch {
	case p.IsSimulator():
		return iOSProfile(true)
	case p.IsAppleMobile():
		return iOSProfile(false)
	case p.OS == "darwin":
		return macOSProfile()
	default:
		return hostProfile()
	}
}
