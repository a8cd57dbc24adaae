package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/projectdiscovery/lansweep/pkg/peerdiscovery/pingsweep"
)

type fakeNetwork struct {
	latencies map[string]time.Duration
	probes    atomic.Int32
}

func (f *fakeNetwork) Probe(ctx context.Context, ip net.IP) (time.Duration, error) {
	f.probes.Add(1)
	if rtt, ok := f.latencies[ip.String()]; ok {
		return rtt, nil
	}
	return 0, pingsweep.ErrNoReply
}

func newTestRunner(supported bool, localIP string, network *fakeNetwork) (*Runner, *bytes.Buffer, *atomic.Int32) {
	var out bytes.Buffer
	var resolves atomic.Int32
	r := &Runner{
		options:   &Options{},
		supported: func() bool { return supported },
		resolve: func() (net.IP, bool) {
			resolves.Add(1)
			if localIP == "" {
				return nil, false
			}
			return net.ParseIP(localIP).To4(), true
		},
		prober: network,
		output: &out,
	}
	return r, &out, &resolves
}

func outputLines(out *bytes.Buffer) []string {
	trimmed := strings.TrimRight(out.String(), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func TestRunReportsActiveHosts(t *testing.T) {
	network := &fakeNetwork{latencies: map[string]time.Duration{
		"10.0.0.1":   2 * time.Millisecond,
		"10.0.0.254": 15 * time.Millisecond,
	}}
	r, out, _ := newTestRunner(true, "10.0.0.5", network)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lines := outputLines(out)
	if len(lines) == 0 || lines[0] != "Scanning LAN from IP: 10.0.0.5" {
		t.Fatalf("first line = %q, want startup message", lines)
	}

	var active []string
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "Active IP: ") {
			active = append(active, line)
		} else {
			t.Errorf("unexpected output line %q", line)
		}
	}
	sort.Strings(active)

	want := []string{
		"Active IP: 10.0.0.1, RTT: 2.0 ms",
		"Active IP: 10.0.0.254, RTT: 15.0 ms",
	}
	if len(active) != len(want) {
		t.Fatalf("got %d Active IP lines %v, want %v", len(active), active, want)
	}
	for i := range want {
		if active[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, active[i], want[i])
		}
	}

	if got := network.probes.Load(); got != 254 {
		t.Errorf("probes = %d, want 254", got)
	}
}

func TestRunWithoutLocalAddress(t *testing.T) {
	network := &fakeNetwork{}
	r, out, resolves := newTestRunner(true, "", network)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := out.String(); got != "Could not determine local IP address. Exiting...\n" {
		t.Errorf("output = %q", got)
	}
	if got := resolves.Load(); got != 1 {
		t.Errorf("resolves = %d, want 1", got)
	}
	if got := network.probes.Load(); got != 0 {
		t.Errorf("probes = %d, want 0", got)
	}
}

func TestRunUnsupportedPlatform(t *testing.T) {
	network := &fakeNetwork{}
	r, out, resolves := newTestRunner(false, "10.0.0.5", network)

	err := r.Run(context.Background())
	if !errors.Is(err, pingsweep.ErrUnsupportedPlatform) {
		t.Fatalf("Run() error = %v, want %v", err, pingsweep.ErrUnsupportedPlatform)
	}
	if got := FatalMessage(err); got != "This program only runs on Windows." {
		t.Errorf("FatalMessage() = %q, want %q", got, "This program only runs on Windows.")
	}
	if got := resolves.Load(); got != 0 {
		t.Errorf("resolves = %d, want 0", got)
	}
	if got := network.probes.Load(); got != 0 {
		t.Errorf("probes = %d, want 0", got)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want none", out.String())
	}
}

func TestFatalMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unsupported platform",
			err:  pingsweep.ErrUnsupportedPlatform,
			want: "This program only runs on Windows.",
		},
		{
			name: "wrapped unsupported platform",
			err:  fmt.Errorf("startup: %w", pingsweep.ErrUnsupportedPlatform),
			want: "This program only runs on Windows.",
		},
		{
			name: "other error",
			err:  errors.New("could not sweep 10.0.0.0/24"),
			want: "Could not run lansweep: could not sweep 10.0.0.0/24",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FatalMessage(tt.err); got != tt.want {
				t.Errorf("FatalMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReportFormatsRTT(t *testing.T) {
	tests := []struct {
		name string
		rtt  time.Duration
		want string
	}{
		{name: "whole milliseconds", rtt: 2 * time.Millisecond, want: "Active IP: 192.168.1.7, RTT: 2.0 ms"},
		{name: "rounded fraction", rtt: 1234 * time.Microsecond, want: "Active IP: 192.168.1.7, RTT: 1.2 ms"},
		{name: "zero", rtt: 0, want: "Active IP: 192.168.1.7, RTT: 0.0 ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := &Runner{output: &out}
			r.report(pingsweep.Peer{IP: net.ParseIP("192.168.1.7"), RTT: tt.rtt})
			if got := strings.TrimSuffix(out.String(), "\n"); got != tt.want {
				t.Errorf("report() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReportIsLineAtomic(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{output: &out}

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(suffix byte) {
			defer wg.Done()
			r.report(pingsweep.Peer{IP: net.IPv4(10, 0, 0, suffix), RTT: time.Millisecond})
		}(byte(i))
	}
	wg.Wait()

	lines := outputLines(&out)
	if len(lines) != 50 {
		t.Fatalf("got %d lines, want 50", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "Active IP: 10.0.0.") || !strings.HasSuffix(line, ", RTT: 1.0 ms") {
			t.Errorf("malformed line %q", line)
		}
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	r, err := NewRunner(nil)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	if r.options == nil || r.supported == nil || r.resolve == nil || r.prober == nil || r.output == nil {
		t.Error("NewRunner() left a dependency unset")
	}
}
