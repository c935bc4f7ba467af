package platformservice

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
)

// NetworkInterface describes one adapter for the network listing.
type NetworkInterface struct {
	Name            string
	HardwareAddress string
	Flags           []string
	IPAddresses     []string
}

// EnumerateActiveInterfaces lists up interfaces in OS order, repeated once
// per address record. A failed enumeration is logged and yields no names.
func (s *Service) EnumerateActiveInterfaces() []string {
	names, err := s.interfaces.ActiveInterfaces()
	if err != nil {
		s.logger.Warn("interface enumeration failed", "error", &EnumerationError{Err: err})
		return []string{}
	}
	return names
}

func countName(names []string, want string) int {
	n := 0
	for _, name := range names {
		if name == want {
			n++
		}
	}
	return n
}

// WiFiEnabled reports whether the Wi-Fi radio is on.
//
// Apple profiles infer this from the auxiliary radio interface (awdl0)
// showing up more than once in the address list, which only happens while the
// radio is powered. That is an observed behaviour, not a documented one.
func (s *Service) WiFiEnabled() bool {
	if s.profile.WiFi.Method == WiFiSysfs {
		return s.sysfsWiFi(false)
	}
	return countName(s.EnumerateActiveInterfaces(), s.profile.WiFi.AuxInterface) > 1
}

// WiFiConnected reports whether the Wi-Fi adapter holds an association,
// using the same multiplicity rule on the standard adapter.
func (s *Service) WiFiConnected() bool {
	if s.profile.WiFi.Method == WiFiSysfs {
		return s.sysfsWiFi(true)
	}
	return countName(s.EnumerateActiveInterfaces(), s.profile.WiFi.Interface) > 1
}

// IsTethering reports whether a tethering bridge is up. iOS only.
func (s *Service) IsTethering() (bool, error) {
	if !s.profile.Tethering {
		return false, fmt.Errorf("%s: %w", FactTethering, ErrNotOffered)
	}

	match := s.profile.WiFi.TetherMatch
	for _, name := range s.EnumerateActiveInterfaces() {
		if match != "" && strings.Contains(name, match) {
			return true, nil
		}
	}
	return false, nil
}

// sysfsWiFi answers from /sys/class/net: a wireless adapter that is up means
// enabled, one whose operstate is up means connected. A configured Wi-Fi
// interface limits the check to that adapter.
func (s *Service) sysfsWiFi(connected bool) bool {
	entries, err := os.ReadDir(s.sysClassNet)
	if err != nil {
		s.logger.Debug("sysfs network tree unavailable", "path", s.sysClassNet, "error", err)
		return false
	}

	up := make(map[string]bool)
	for _, name := range s.EnumerateActiveInterfaces() {
		up[name] = true
	}

	for _, e := range entries {
		if s.pinnedWiFi != "" && e.Name() != s.pinnedWiFi {
			continue
		}
		dir := filepath.Join(s.sysClassNet, e.Name())
		if _, err := os.Stat(filepath.Join(dir, "wireless")); err != nil {
			continue
		}

		if !connected {
			if up[e.Name()] {
				return true
			}
			continue
		}

		state, err := os.ReadFile(filepath.Join(dir, "operstate"))
		if err == nil && strings.TrimSpace(string(state)) == "up" {
			return true
		}
	}

	return false
}

// NetworkName returns the SSID of the associated network, or nil when there
// is none or the platform has no way to ask.
func (s *Service) NetworkName() *string {
	lookup := s.profile.SSID
	if lookup == nil || !s.commandAvailable(lookup.Command) {
		return nil
	}

	args := make([]string, len(lookup.Args))
	for i, a := range lookup.Args {
		args[i] = strings.ReplaceAll(a, "{interface}", s.profile.WiFi.Interface)
	}

	out, err := s.runCommand(lookup.Command, args...)
	if err != nil {
		s.logger.Debug("ssid lookup failed", "command", lookup.Command, "error", err)
		return nil
	}

	name := strings.TrimSpace(string(out))
	if lookup.Prefix != "" {
		rest, ok := strings.CutPrefix(name, lookup.Prefix)
		if !ok {
			return nil
		}
		name = strings.TrimSpace(rest)
	}
	if name == "" {
		return nil
	}

	return &name
}

// DefaultGateway returns the default IPv4 gateway, or nil without a
// default route.
func (s *Service) DefaultGateway() *string {
	gw, err := s.discoverGateway()
	if err != nil || gw == nil || gw.Equal(net.IPv4zero) {
		s.logger.Debug("no default gateway", "error", err)
		return nil
	}

	v := gw.String()
	return &v
}

// ListNetworkInterfaces gathers interface details for the network listing.
func ListNetworkInterfaces() ([]NetworkInterface, error) {
	var result []NetworkInterface

	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, &EnumerationError{Err: err}
	}

	for _, iface := range ifaces {
		ni := NetworkInterface{
			Name:            iface.Name,
			HardwareAddress: iface.HardwareAddr.String(),
		}

		// Add flags (e.g. up, loopback)
		for _, f := range []net.Flags{
			net.FlagUp, net.FlagLoopback, net.FlagBroadcast,
			net.FlagMulticast, net.FlagPointToPoint,
		} {
			if iface.Flags&f != 0 {
				ni.Flags = append(ni.Flags, f.String())
			}
		}

		addrs, err := iface.Addrs()
		if err == nil {
			for _, addr := range addrs {
				ni.IPAddresses = append(ni.IPAddresses, addr.String())
			}
		}

		result = append(result, ni)
	}

	return result, nil
}

// FormatNetworkInterfaces renders the listing produced by
// ListNetworkInterfaces.
func FormatNetworkInterfaces(ifaces []NetworkInterface) string {
	var builder strings.Builder

	builder.WriteString("Network Interfaces:\n")
	for _, iface := range ifaces {
		builder.WriteString(fmt.Sprintf("  - %s (%s)\n", iface.Name, iface.HardwareAddress))
		if len(iface.Flags) > 0 {
			builder.WriteString(fmt.Sprintf("    Flags: %s\n", strings.Join(iface.Flags, ", ")))
		}
		if len(iface.IPAddresses) > 0 {
			builder.WriteString(fmt.Sprintf("    IPs:   %s\n", strings.Join(iface.IPAddresses, ", ")))
		}
	}

	return builder.String()
}
