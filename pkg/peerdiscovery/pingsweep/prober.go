package pingsweep

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/exec"
	"time"
)

// ErrNoReply is returned when the probe ran but the host did not answer
var ErrNoReply = errors.New("no reply")

// ProcessGrace is the default time a probe process may outlive its own
// timeout before it is killed.
const ProcessGrace = 5 * time.Second

// Prober performs a single reachability check against one address
type Prober interface {
	Probe(ctx context.Context, ip net.IP) (time.Duration, error)
}

// ProberFunc adapts a plain function to the Prober interface
type ProberFunc func(ctx context.Context, ip net.IP) (time.Duration, error)

// Probe calls f(ctx, ip)
func (f ProberFunc) Probe(ctx context.Context, ip net.IP) (time.Duration, error) {
	return f(ctx, ip)
}

// CommandProber probes a host by running an external command once and
// reading its exit status. Output is discarded.
type CommandProber struct {
	// Command is the executable to run, e.g. "ping"
	Command string
	// Timeout is handed to Args and bounds how long the command waits for a reply
	Timeout time.Duration
	// Args builds the argument list for a target
	Args func(ip net.IP, timeout time.Duration) []string
	// Grace is how long the process may run past Timeout before it is
	// killed, defaults to ProcessGrace. A killed process counts as no reply.
	Grace time.Duration
}

// Probe runs the command against ip. The returned duration is the
// wall-clock time of the whole invocation.
func (p *CommandProber) Probe(ctx context.Context, ip net.IP) (time.Duration, error) {
	grace := p.Grace
	if grace <= 0 {
		grace = ProcessGrace
	}
	ctx, cancel := context.WithTimeout(ctx, p.Timeout+grace)
	defer cancel()

	var args []string
	if p.Args != nil {
		args = p.Args(ip, p.Timeout)
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, p.Command, args...)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return 0, fmt.Errorf("%s %s: %w (exit code %d)", p.Command, ip, ErrNoReply, exitErr.ExitCode())
		}
		return 0, fmt.Errorf("failed to run %s for %s: %w", p.Command, ip, err)
	}
	return time.Since(start), nil
}
