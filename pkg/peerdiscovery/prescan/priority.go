package prescan

import (
	"bytes"
	"net"
	"sort"
)

// PrioritizedIP holds an IP and its priority score (0-100)
type PrioritizedIP struct {
	IP       net.IP
	Priority int
}

// Order returns a copy of ips sorted by priority (high to low), ties broken
// by address so the result is deterministic.
func Order(ips []net.IP, network *net.IPNet) []net.IP {
	prioritized := make([]PrioritizedIP, 0, len(ips))
	for _, ip := range ips {
		prioritized = append(prioritized, PrioritizedIP{
			IP:       ip,
			Priority: CalculatePriority(ip, network),
		})
	}

	sort.SliceStable(prioritized, func(i, j int) bool {
		if prioritized[i].Priority != prioritized[j].Priority {
			return prioritized[i].Priority > prioritized[j].Priority
		}
		return compareIP(prioritized[i].IP, prioritized[j].IP) < 0
	})

	ordered := make([]net.IP, 0, len(prioritized))
	for _, p := range prioritized {
		ordered = append(ordered, p.IP)
	}
	return ordered
}

// compareIP compares two IPs, IPv4 before IPv6
func compareIP(ip1, ip2 net.IP) int {
	a, b := ip1.To4(), ip2.To4()
	switch {
	case a != nil && b == nil:
		return -1
	case a == nil && b != nil:
		return 1
	case a != nil && b != nil:
		return bytes.Compare(a, b)
	}
	return bytes.Compare(ip1.To16(), ip2.To16())
}
