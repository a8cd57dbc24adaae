// Package pingsweep discovers active hosts on a local /24 by running one
// external ping per candidate address.
//
// Discovery is performed by:
//   - Expanding the /24 into its 254 usable host addresses
//   - Ordering them so gateways and early DHCP addresses are launched first
//   - Probing every address in parallel, one ping process per address
//   - Reporting each reply the moment it arrives, then joining on all probes
//
// Example usage:
//
//	prefix := common.SubnetOf(localIP)
//	peers, err := pingsweep.Sweep(ctx, prefix, pingsweep.Options{
//		Prober:   pingsweep.NewPingProber(),
//		OnResult: func(p pingsweep.Peer) { fmt.Println(p.IP) },
//	})
//
// RTT is the wall-clock duration of the ping process, not the echo RTT
// reported by ping itself, so it includes process start-up cost.
//
// Limitations:
//   - Only the Windows ping syntax is supported (see Supported)
//   - Hosts with ICMP disabled or firewalled will not respond
//   - A probe that could not be started is indistinguishable from a silent
//     host in the results; the difference is only visible in debug logs
package pingsweep
