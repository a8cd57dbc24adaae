package prescan

import (
	"net"

	"github.com/projectdiscovery/lansweep/pkg/peerdiscovery/common"
)

// octetRange maps an inclusive last-octet range to a priority tier
type octetRange struct {
	first, last byte
	priority    int
}

// Priority tiers based on real-world network patterns
const (
	PriorityGateway   = 100
	PriorityReserved  = 90
	PriorityEarlyDHCP = 80
	PriorityDHCPPeak  = 70
	PriorityDHCPPool  = 50
	PriorityLongTail  = 20
	PriorityExcluded  = 0
)

// distribution is matched top to bottom, first hit wins
var distribution = []octetRange{
	{first: 1, last: 1, priority: PriorityGateway},
	{first: 254, last: 254, priority: PriorityGateway},
	{first: 2, last: 5, priority: PriorityReserved},
	{first: 250, last: 253, priority: PriorityReserved},
	{first: 6, last: 10, priority: PriorityEarlyDHCP},
	{first: 50, last: 50, priority: PriorityDHCPPeak},
	{first: 100, last: 100, priority: PriorityDHCPPeak},
	{first: 150, last: 150, priority: PriorityDHCPPeak},
	{first: 51, last: 99, priority: PriorityDHCPPool},
	{first: 101, last: 149, priority: PriorityDHCPPool},
	{first: 151, last: 200, priority: PriorityDHCPPool},
	{first: 11, last: 49, priority: PriorityLongTail},
	{first: 201, last: 249, priority: PriorityLongTail},
}

// CalculatePriority returns the priority score (0-100) of ip inside network.
// Anything that is not a usable IPv4 host of the network falls back to the
// long-tail or excluded tier.
func CalculatePriority(ip net.IP, network *net.IPNet) int {
	ip4 := ip.To4()
	if ip4 == nil {
		return PriorityLongTail
	}
	if common.IsNetworkOrBroadcast(ip4, network) {
		return PriorityExcluded
	}

	last := ip4[3]
	for _, r := range distribution {
		if last >= r.first && last <= r.last {
			return r.priority
		}
	}
	// .0 and .255 inside larger networks are ordinary hosts
	return PriorityLongTail
}
