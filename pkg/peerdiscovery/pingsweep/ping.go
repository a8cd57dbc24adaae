package pingsweep

import (
	"errors"
	"net"
	"strconv"
	"time"

	osutils "github.com/projectdiscovery/utils/os"
)

const (
	// PingCommand is the system utility used for probing
	PingCommand = "ping"
	// ProbeTimeout is how long ping waits for the echo reply
	ProbeTimeout = 100 * time.Millisecond
)

// ErrUnsupportedPlatform is returned when the ping syntax used by
// NewPingProber is not available on the running OS. The text is shown to
// the user as is.
var ErrUnsupportedPlatform = errors.New("This program only runs on Windows.")

// Supported reports whether the running OS provides the ping syntax used
// by NewPingProber.
func Supported() bool {
	return osutils.IsWindows()
}

// NewPingProber returns a prober sending exactly one echo request with
// ProbeTimeout as reply deadline.
func NewPingProber() *CommandProber {
	return &CommandProber{
		Command: PingCommand,
		Timeout: ProbeTimeout,
		Args:    windowsPingArgs,
	}
}

// windowsPingArgs builds "-n 1 -w <ms> <ip>"
func windowsPingArgs(ip net.IP, timeout time.Duration) []string {
	return []string{
		"-n", "1",
		"-w", strconv.FormatInt(timeout.Milliseconds(), 10),
		ip.String(),
	}
}
