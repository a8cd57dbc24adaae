package pingsweep

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/lansweep/pkg/peerdiscovery/common"
	"github.com/projectdiscovery/lansweep/pkg/peerdiscovery/prescan"
	"github.com/projectdiscovery/mapcidr"
	mapsutil "github.com/projectdiscovery/utils/maps"
	syncutil "github.com/projectdiscovery/utils/sync"
	"github.com/rs/xid"
)

// MaxConcurrency bounds the number of probes in flight. It matches the
// number of hosts in a /24, so every probe of a sweep runs at once.
const MaxConcurrency = common.HostsPerSubnet

// Peer represents a host that answered its probe
type Peer struct {
	IP  net.IP
	RTT time.Duration // wall-clock duration of the probe
}

// Options tunes a sweep
type Options struct {
	// Prober performs the per-host check, defaults to NewPingProber()
	Prober Prober
	// OnResult is called from the probing goroutine for every peer, as soon
	// as it answers. It must be safe for concurrent use.
	OnResult func(Peer)
	// Concurrency overrides MaxConcurrency when > 0
	Concurrency int
}

// Targets returns the usable host addresses of prefix (.1 to .254)
func Targets(prefix common.SubnetPrefix) ([]net.IP, error) {
	network := prefix.Network()
	cidr := network.String()

	ips, err := mapcidr.IPAddresses(cidr)
	if err != nil {
		return nil, fmt.Errorf("failed to expand CIDR %s: %w", cidr, err)
	}

	targets := make([]net.IP, 0, common.HostsPerSubnet)
	for _, ipStr := range ips {
		ip := net.ParseIP(ipStr).To4()
		if ip == nil || !network.Contains(ip) {
			continue
		}
		// Skip network and broadcast addresses
		if common.IsNetworkOrBroadcast(ip, network) {
			continue
		}
		targets = append(targets, ip)
	}
	return targets, nil
}

// Sweep probes every host of prefix and returns those that answered.
// Each probe is tried exactly once. Sweep only returns after every probe
// has finished, however early the first replies arrive.
func Sweep(ctx context.Context, prefix common.SubnetPrefix, opts Options) ([]Peer, error) {
	prober := opts.Prober
	if prober == nil {
		prober = NewPingProber()
	}
	size := opts.Concurrency
	if size <= 0 {
		size = MaxConcurrency
	}

	targets, err := Targets(prefix)
	if err != nil {
		return nil, err
	}
	network := prefix.Network()
	targets = prescan.Order(targets, network)

	awg, err := syncutil.New(syncutil.WithSize(size))
	if err != nil {
		return nil, fmt.Errorf("failed to create adaptive waitgroup: %w", err)
	}

	sweepID := xid.New().String()
	gologger.Verbose().Msgf("[%s] probing %d hosts in %s", sweepID, len(targets), network)

	peers := mapsutil.NewSyncLockMap[string, *Peer]()
	started := time.Now()

	for _, ip := range targets {
		awg.Add()
		go func(target net.IP) {
			defer awg.Done()

			rtt, err := prober.Probe(ctx, target)
			if err != nil {
				if errors.Is(err, ErrNoReply) {
					gologger.Debug().Msgf("[%s] %s: no reply", sweepID, target)
				} else {
					gologger.Debug().Msgf("[%s] %s: probe failed: %s", sweepID, target, err)
				}
				return
			}
			if rtt < 0 {
				rtt = 0
			}

			peer := &Peer{IP: target, RTT: rtt}
			_ = peers.Set(target.String(), peer)
			if opts.OnResult != nil {
				opts.OnResult(*peer)
			}
		}(ip)
	}

	awg.Wait()
	gologger.Verbose().Msgf("[%s] sweep of %s finished in %s", sweepID, network, time.Since(started).Round(time.Millisecond))

	var result []Peer
	_ = peers.Iterate(func(key string, peer *Peer) error {
		if peer != nil {
			result = append(result, *peer)
		}
		return nil
	})
	return result, nil
}
