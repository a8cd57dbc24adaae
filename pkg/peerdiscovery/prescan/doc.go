// Package prescan orders the hosts of a /24 so that the addresses most likely
// to be online are probed first. Most active hosts on a LAN sit on routers,
// gateways and early DHCP allocations, so those go to the front of the queue.
//
// Priority tiers (0-100):
//   - 100: .1, .254 (routers/gateways)
//   - 90:  .2-.5, .250-.253 (reserved infrastructure)
//   - 80:  .6-.10 (early DHCP)
//   - 70:  .50, .100, .150 (DHCP peaks)
//   - 50:  .51-.99, .101-.149, .151-.200 (main DHCP pool)
//   - 20:  .11-.49, .201-.249 (long-tail)
//   - 0:   .0, .255 (network/broadcast)
//
// Ordering never adds or drops addresses:
//
//	ordered := prescan.Order(targets, prefix.Network())
package prescan
