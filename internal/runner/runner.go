package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/lansweep/pkg/peerdiscovery/common"
	"github.com/projectdiscovery/lansweep/pkg/peerdiscovery/pingsweep"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// Runner contains the internal logic of the program
type Runner struct {
	options *Options

	supported func() bool
	resolve   func() (net.IP, bool)
	prober    pingsweep.Prober

	outputMutex sync.Mutex
	output      io.Writer
}

// NewRunner instance
func NewRunner(options *Options) (*Runner, error) {
	if options == nil {
		options = &Options{}
	}
	return &Runner{
		options:   options,
		supported: pingsweep.Supported,
		resolve:   common.LocalIPv4,
		prober:    pingsweep.NewPingProber(),
		output:    os.Stdout,
	}, nil
}

// Run checks the platform, resolves the local address and sweeps its /24
func (r *Runner) Run(ctx context.Context) error {
	if !r.supported() {
		return pingsweep.ErrUnsupportedPlatform
	}

	localIP, ok := r.resolve()
	if !ok {
		r.println("Could not determine local IP address. Exiting...")
		return nil
	}
	r.println(fmt.Sprintf("Scanning LAN from IP: %s", localIP))

	prefix := common.SubnetOf(localIP)
	peers, err := pingsweep.Sweep(ctx, prefix, pingsweep.Options{
		Prober:   r.prober,
		OnResult: r.report,
	})
	if err != nil {
		return errorutil.NewWithErr(err).Msgf("could not sweep %s", prefix.Network())
	}

	gologger.Info().Msgf("%d active hosts found in %s", len(peers), prefix.Network())
	return nil
}

// FatalMessage returns the text shown to the user when Run fails
func FatalMessage(err error) string {
	if errors.Is(err, pingsweep.ErrUnsupportedPlatform) {
		return pingsweep.ErrUnsupportedPlatform.Error()
	}
	return fmt.Sprintf("Could not run lansweep: %s", err)
}

// report prints a single active host
func (r *Runner) report(peer pingsweep.Peer) {
	r.println(fmt.Sprintf("Active IP: %s, RTT: %.1f ms", peer.IP, milliseconds(peer)))
}

func (r *Runner) println(line string) {
	r.outputMutex.Lock()
	defer r.outputMutex.Unlock()
	_, _ = fmt.Fprintln(r.output, line)
}

func milliseconds(peer pingsweep.Peer) float64 {
	return float64(peer.RTT) / float64(time.Millisecond)
}
