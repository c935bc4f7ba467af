//go:build !(darwin || dragonfly || freebsd || netbsd || openbsd)

package platformservice

import "net"

// systemInterfaces expands net.Interfaces into getifaddrs style records:
// the link itself plus one entry per address.
type systemInterfaces struct{}

func (systemInterfaces) ActiveInterfaces() ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var names []string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		names = append(names, iface.Name)

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for range addrs {
			names = append(names, iface.Name)
		}
	}

	return names, nil
}
