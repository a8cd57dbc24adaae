package common

import "net"

// probeAddress is only used to make the OS pick the outbound interface,
// nothing is sent to it.
const probeAddress = "8.8.8.8:80"

// LocalIPv4 returns the IPv4 address of the interface the OS would use to
// reach the internet. Every failure collapses into ok == false.
func LocalIPv4() (net.IP, bool) {
	conn, err := net.Dial("udp4", probeAddress)
	if err != nil {
		return nil, false
	}
	defer func() {
		_ = conn.Close()
	}()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return nil, false
	}

	ip4 := addr.IP.To4()
	if ip4 == nil || ip4.IsUnspecified() {
		return nil, false
	}
	return ip4, true
}
