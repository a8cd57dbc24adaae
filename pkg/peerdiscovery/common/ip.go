package common

import "net"

// IsNetworkOrBroadcast reports whether ip is the network or the broadcast
// address of an IPv4 network. Addresses outside network and non-IPv4
// addresses are never reported.
func IsNetworkOrBroadcast(ip net.IP, network *net.IPNet) bool {
	if network == nil {
		return false
	}

	ip4 := ip.To4()
	base := network.IP.To4()
	if ip4 == nil || base == nil || len(network.Mask) != net.IPv4len {
		return false
	}

	if ip4.Equal(base.Mask(network.Mask)) {
		return true
	}

	broadcast := make(net.IP, net.IPv4len)
	for i := range broadcast {
		broadcast[i] = base[i] | ^network.Mask[i]
	}
	return ip4.Equal(broadcast)
}
