package common

import (
	"fmt"
	"net"
)

// HostsPerSubnet is the number of usable host addresses in a /24
const HostsPerSubnet = 254

// SubnetPrefix holds the three leading octets of an IPv4 /24 network
type SubnetPrefix struct {
	A, B, C byte
}

// SubnetOf returns the /24 prefix of ip. Non-IPv4 input yields the zero prefix.
func SubnetOf(ip net.IP) SubnetPrefix {
	ip4 := ip.To4()
	if ip4 == nil {
		return SubnetPrefix{}
	}
	return SubnetPrefix{A: ip4[0], B: ip4[1], C: ip4[2]}
}

// String returns the prefix in dotted form, e.g. "192.168.1"
func (p SubnetPrefix) String() string {
	return fmt.Sprintf("%d.%d.%d", p.A, p.B, p.C)
}

// Network returns the prefix as a /24 IPNet
func (p SubnetPrefix) Network() *net.IPNet {
	return &net.IPNet{
		IP:   net.IPv4(p.A, p.B, p.C, 0).To4(),
		Mask: net.CIDRMask(24, 32),
	}
}

// Host returns the address formed by the prefix and the given host suffix
func (p SubnetPrefix) Host(suffix byte) net.IP {
	return net.IPv4(p.A, p.B, p.C, suffix).To4()
}
