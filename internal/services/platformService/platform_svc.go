package platformservice

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os/exec"

	"github.com/jackpal/gateway"

	"github.com/redjax/sysfacts/internal/services/platformService/capabilities"
	sysctlservice "github.com/redjax/sysfacts/internal/services/sysctlService"
)

// InterfaceLister returns the names of administratively up interfaces, one
// entry per link or address record.
type InterfaceLister interface {
	ActiveInterfaces() ([]string, error)
}

// InterfaceListerFunc adapts a function to InterfaceLister.
type InterfaceListerFunc func() ([]string, error)

func (f InterfaceListerFunc) ActiveInterfaces() ([]string, error) {
	return f()
}

// CommandRunner runs an external command and returns its stdout.
type CommandRunner func(name string, args ...string) ([]byte, error)

// Overrides replaces profile interface names. Empty fields keep the profile
// default.
type Overrides struct {
	WiFiInterface string
	AuxInterface  string
	TetherMatch   string
}

// Options configures a Service. Zero values select the live system.
type Options struct {
	Profile    *Profile
	Kernel     sysctlservice.Kernel
	Interfaces InterfaceLister
	Logger     *slog.Logger
	Overrides  Overrides

	// Used for the SSID lookup.
	RunCommand       CommandRunner
	CommandAvailable func(string) bool

	// Root of the per-interface sysfs tree.
	SysClassNet string

	DiscoverGateway func() (net.IP, error)
}

// Service answers fact queries for one profile. It holds no mutable state
// and is safe for concurrent use.
type Service struct {
	profile          Profile
	kernel           sysctlservice.Kernel
	interfaces       InterfaceLister
	logger           *slog.Logger
	runCommand       CommandRunner
	commandAvailable func(string) bool
	sysClassNet      string
	discoverGateway  func() (net.IP, error)
	// Set when the Wi-Fi adapter name came from configuration.
	pinnedWiFi string
}

// New builds a Service, filling unset options from the running system.
func New(opts Options) (*Service, error) {
	s := &Service{
		kernel:           opts.Kernel,
		interfaces:       opts.Interfaces,
		logger:           opts.Logger,
		runCommand:       opts.RunCommand,
		commandAvailable: opts.CommandAvailable,
		sysClassNet:      opts.SysClassNet,
		discoverGateway:  opts.DiscoverGateway,
		pinnedWiFi:       opts.Overrides.WiFiInterface,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	if opts.Profile != nil {
		s.profile = *opts.Profile
	} else {
		s.profile = ProfileFor(capabilities.Detect())
	}
	s.profile.WiFi = applyOverrides(s.profile.WiFi, opts.Overrides)

	if s.kernel == nil {
		if pl := capabilities.Detect(); !s.profile.NativeTo(pl) {
			s.logger.Warn("profile key numbering does not match the running kernel; values may be wrong",
				"profile", s.profile.ID, "platform", pl.String())
		}

		k, err := sysctlservice.DefaultKernel()
		if err != nil {
			return nil, fmt.Errorf("open configuration tree: %w", err)
		}
		s.kernel = k
	}
	if s.interfaces == nil {
		s.interfaces = systemInterfaces{}
	}
	if s.runCommand == nil {
		s.runCommand = func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		}
	}
	if s.commandAvailable == nil {
		s.commandAvailable = capabilities.IsCommandAvailable
	}
	if s.sysClassNet == "" {
		s.sysClassNet = "/sys/class/net"
	}
	if s.discoverGateway == nil {
		s.discoverGateway = gateway.DiscoverGateway
	}

	s.logger.Debug("platform profile selected", "profile", s.profile.ID, "platform", capabilities.Detect().String())

	return s, nil
}

func applyOverrides(w WiFi, o Overrides) WiFi {
	if o.WiFiInterface != "" {
		w.Interface = o.WiFiInterface
	}
	if o.AuxInterface != "" {
		w.AuxInterface = o.AuxInterface
	}
	if o.TetherMatch != "" {
		w.TetherMatch = o.TetherMatch
	}
	return w
}

// Profile returns the active profile.
func (s *Service) Profile() Profile {
	return s.profile
}

// Kernel returns the configuration tree backend in use.
func (s *Service) Kernel() sysctlservice.Kernel {
	return s.kernel
}

// Offers reports whether the active profile can answer f.
func (s *Service) Offers(f Fact) bool {
	return s.profile.Offers(f)
}

func (s *Service) key(f Fact) (Key, error) {
	k, ok := s.profile.Keys[f]
	if !ok {
		return Key{}, fmt.Errorf("%s: %w", f, ErrNotOffered)
	}
	return k, nil
}

func (s *Service) stringFact(f Fact) (string, error) {
	k, err := s.key(f)
	if err != nil {
		return "", err
	}

	var v string
	if k.Name != "" {
		v, err = sysctlservice.StringByName(s.kernel, k.Name)
	} else {
		v, err = sysctlservice.String(s.kernel, k.Path)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", f, err)
	}
	return v, nil
}

func intFact[T sysctlservice.Integer](s *Service, f Fact) (T, error) {
	k, err := s.key(f)
	if err != nil {
		return 0, err
	}

	var v T
	if k.Name != "" {
		v, err = sysctlservice.ValueByName[T](s.kernel, k.Name)
	} else {
		v, err = sysctlservice.Value[T](s.kernel, k.Path)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", f, err)
	}
	return v, nil
}

// Field is one line of a gathered report.
type Field struct {
	Key   string
	Label string
	// string, bool, int32, uint64 or *string. Nil when Err is set.
	Value any
	Unit  string
	Err   error
}

// Section groups the fields of one subsystem.
type Section struct {
	Key    string
	Title  string
	Fields []Field
}

// PlatformInfo holds every fact gathered in one pass.
type PlatformInfo struct {
	Profile  string
	Sections []Section
}

// Field finds a gathered field by key.
func (p *PlatformInfo) Field(key string) (Field, bool) {
	for _, sec := range p.Sections {
		for _, f := range sec.Fields {
			if f.Key == key {
				return f, true
			}
		}
	}
	return Field{}, false
}

// Section finds a gathered section by key.
func (p *PlatformInfo) Section(key string) (Section, bool) {
	for _, sec := range p.Sections {
		if sec.Key == key {
			return sec, true
		}
	}
	return Section{}, false
}

// Section keys, in report order.
const (
	SectionNetworking = "networking"
	SectionSystem     = "system"
	SectionCPU        = "cpu"
	SectionRAM        = "ram"
)

type fieldSpec struct {
	key   string
	label string
	fact  Fact
	unit  string
	get   func(*Service) (any, error)
}

func wrap[T any](get func(*Service) (T, error)) func(*Service) (any, error) {
	return func(s *Service) (any, error) {
		v, err := get(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

var reportLayout = []struct {
	key, title string
	fields     []fieldSpec
}{
	{SectionNetworking, "Networking Info", []fieldSpec{
		{key: "wifi_enabled", label: "Wi-Fi Enabled", get: func(s *Service) (any, error) { return s.WiFiEnabled(), nil }},
		{key: "wifi_connected", label: "Wi-Fi Connected", get: func(s *Service) (any, error) { return s.WiFiConnected(), nil }},
		{key: "tethering", label: "Tethering", fact: FactTethering, get: wrap((*Service).IsTethering)},
		{key: "network_name", label: "Network Name", fact: FactNetworkName, get: func(s *Service) (any, error) { return s.NetworkName(), nil }},
		{key: "default_gateway", label: "Default Gateway", get: func(s *Service) (any, error) { return s.DefaultGateway(), nil }},
	}},
	{SectionSystem, "System Info", []fieldSpec{
		{key: "hostname", label: "Hostname", fact: FactHostname, get: wrap((*Service).Hostname)},
		{key: "os_version", label: "OS Version", fact: FactOSVersion, get: wrap((*Service).OSVersion)},
		{key: "model", label: "Model", fact: FactModel, get: wrap((*Service).Model)},
		{key: "os_type", label: "OS Type", fact: FactOSType, get: wrap((*Service).OSType)},
		{key: "os_release", label: "OS Release", fact: FactOSRelease, get: wrap((*Service).OSRelease)},
		{key: "os_revision", label: "OS Revision", fact: FactOSRevision, get: wrap((*Service).OSRevision)},
		{key: "kernel_version", label: "Kernel Version", fact: FactKernelVersion, get: wrap((*Service).KernelVersion)},
	}},
	{SectionCPU, "CPU Info", []fieldSpec{
		{key: "cpu_model", label: "CPU Model", fact: FactMachine, get: wrap((*Service).CPUModel)},
		{key: "available_cpus", label: "Available CPUs", fact: FactAvailableCPUs, get: wrap((*Service).AvailableCPUs)},
		{key: "cpu_brand", label: "Brand", fact: FactCPUBrand, get: wrap((*Service).CPUBrand)},
		{key: "cpu_vendor", label: "Vendor", fact: FactCPUVendor, get: wrap((*Service).CPUVendor)},
		{key: "physical_cores", label: "Physical Cores", fact: FactPhysicalCores, get: wrap((*Service).PhysicalCores)},
		{key: "is_64bit", label: "64-bit", get: func(s *Service) (any, error) { return s.Is64Bit(), nil }},
	}},
	{SectionRAM, "RAM", []fieldSpec{
		{key: "ram_size", label: "RAM Size", fact: FactMemSize, unit: "GB", get: wrap((*Service).RAMGigabytes)},
	}},
}

// GatherPlatformInfo queries every offered fact in report order. Failed
// fields keep their error and are logged; they never stop the gather.
func (s *Service) GatherPlatformInfo() *PlatformInfo {
	pi := &PlatformInfo{Profile: s.profile.ID}

	for _, layout := range reportLayout {
		sec := Section{Key: layout.key, Title: layout.title}

		for _, fd := range layout.fields {
			if fd.fact != "" && !s.Offers(fd.fact) {
				continue
			}

			v, err := fd.get(s)
			if errors.Is(err, ErrNotOffered) {
				continue
			}
			if err != nil {
				s.logger.Warn("fact unavailable", "field", fd.key, "error", err)
			}

			sec.Fields = append(sec.Fields, Field{
				Key:   fd.key,
				Label: fd.label,
				Value: v,
				Unit:  fd.unit,
				Err:   err,
			})
		}

		if len(sec.Fields) > 0 {
			pi.Sections = append(pi.Sections, sec)
		}
	}

	return pi
}

// FieldKeys lists every field key a report can contain, in report order.
func FieldKeys() []string {
	var keys []string
	for _, layout := range reportLayout {
		for _, fd := range layout.fields {
			keys = append(keys, fd.key)
		}
	}
	return keys
}
