package runner

import (
	"os"

	"github.com/logrusorgru/aurora/v4"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/lansweep/pkg/version"
	envutil "github.com/projectdiscovery/utils/env"
)

var au *aurora.Aurora

var (
	VerboseEnv = envutil.GetEnvOrDefault("LANSWEEP_VERBOSE", "")
	DebugEnv   = envutil.GetEnvOrDefault("LANSWEEP_DEBUG", "")
)

// Options contains the output configuration of a sweep. Subnet, timeout
// and concurrency are fixed and deliberately absent here.
type Options struct {
	Verbose bool
	Debug   bool
	Silent  bool
	NoColor bool
	Version bool
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`lansweep finds active hosts on the local /24 network using ping`)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", isTrue(VerboseEnv), "show verbose output"),
		flagSet.BoolVar(&options.Debug, "debug", isTrue(DebugEnv), "show every probe outcome"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only results in output"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version.GetVersion())
		os.Exit(0)
	}

	return options
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	au = aurora.New(aurora.WithColors(!options.NoColor))

	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.Debug {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelDebug)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}

func isTrue(value string) bool {
	return value == "1" || value == "true"
}
