//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package platformservice

import (
	"syscall"

	"golang.org/x/net/route"
)

// systemInterfaces walks the kernel's interface list the way getifaddrs does:
// one record for the link and one for every address on it.
type systemInterfaces struct{}

func (systemInterfaces) ActiveInterfaces() ([]string, error) {
	rib, err := route.FetchRIB(syscall.AF_UNSPEC, route.RIBTypeInterface, 0)
	if err != nil {
		return nil, err
	}

	msgs, err := route.ParseRIB(route.RIBTypeInterface, rib)
	if err != nil {
		return nil, err
	}

	type link struct {
		name string
		up   bool
	}
	links := make(map[int]link)

	var names []string
	for _, m := range msgs {
		switch m := m.(type) {
		case *route.InterfaceMessage:
			l := link{name: m.Name, up: m.Flags&syscall.IFF_UP != 0}
			links[m.Index] = l
			if l.up {
				names = append(names, l.name)
			}
		case *route.InterfaceAddrMessage:
			if l, ok := links[m.Index]; ok && l.up {
				names = append(names, l.name)
			}
		}
	}

	return names, nil
}
