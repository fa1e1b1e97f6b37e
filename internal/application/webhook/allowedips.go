package webhook

import (
	"fmt"
	"net/netip"
	"sort"
	"strings"
)

// DefaultAllowedIPs are the addresses WalletPay delivers webhooks from, plus loopback.
var DefaultAllowedIPs = []string{"172.255.248.29", "172.255.248.12", "127.0.0.1"}

// AllowedIPSet is an immutable set of trusted addresses.
type AllowedIPSet struct {
	addrs map[netip.Addr]struct{}
}

func NewAllowedIPSet(ips []string) (*AllowedIPSet, error) {
	addrs := make(map[netip.Addr]struct{}, len(ips))
	for _, ip := range ips {
		addr, err := netip.ParseAddr(strings.TrimSpace(ip))
		if err != nil {
			return nil, fmt.Errorf("invalid allowed ip %q: %w", ip, err)
		}
		addrs[addr.Unmap()] = struct{}{}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("allowed ip set is empty")
	}
	return &AllowedIPSet{addrs: addrs}, nil
}

// MustAllowedIPSet is NewAllowedIPSet for static input.
func MustAllowedIPSet(ips ...string) *AllowedIPSet {
	set, err := NewAllowedIPSet(ips)
	if err != nil {
		panic(err)
	}
	return set
}

// Contains reports whether ip is an IP literal in the set. Anything that does
// not parse as an address is not a member.
func (s *AllowedIPSet) Contains(ip string) bool {
	if s == nil {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	_, ok := s.addrs[addr.Unmap()]
	return ok
}

func (s *AllowedIPSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.addrs)
}

// List returns the members in sorted order.
func (s *AllowedIPSet) List() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.addrs))
	for addr := range s.addrs {
		out = append(out, addr.String())
	}
	sort.Strings(out)
	return out
}
