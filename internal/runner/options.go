package runner

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora/v4"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	envutil "github.com/projectdiscovery/utils/env"
	fileutil "github.com/projectdiscovery/utils/file"
	sliceutil "github.com/projectdiscovery/utils/slice"

	"github.com/edgescout/edgescout/pkg/ranges"
	"github.com/edgescout/edgescout/pkg/version"
)

var au *aurora.Aurora

var (
	RangesURLEnv = envutil.GetEnvOrDefault("EDGESCOUT_RANGES_URL", ranges.DefaultEndpoint)
)

// Options contains the configuration options for one discovery run.
type Options struct {
	RangesURL    string
	SkipPrefixes goflags.StringSlice
	ConfigFile   string

	Host     string
	Port     int
	Attempts int
	Timeout  int

	Count  int
	Output string

	Verbose bool
	Silent  bool
	NoColor bool
	Version bool
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`edgescout discovers provider edge addresses that are reachable over TLS and ranks them by connection latency`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&options.RangesURL, "ranges-url", "url", RangesURLEnv, "directory service publishing the provider ipv4 ranges"),
		flagSet.StringSliceVarP(&options.SkipPrefixes, "skip-prefixes", "sp", nil, "ip address prefixes to skip (comma separated)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringVar(&options.ConfigFile, "config", "", "cli flag configuration file"),
	)

	flagSet.CreateGroup("probe", "Probe",
		flagSet.StringVar(&options.Host, "host", "cloudflare.com", "hostname verified during the tls handshake"),
		flagSet.IntVar(&options.Port, "port", 443, "port to probe"),
		flagSet.IntVarP(&options.Attempts, "attempts", "a", 100, "number of addresses to probe"),
		flagSet.IntVar(&options.Timeout, "timeout", 1, "timeout in seconds for each connect and handshake phase"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.IntVarP(&options.Count, "count", "c", 5, "number of fastest addresses to keep"),
		flagSet.StringVarP(&options.Output, "output", "o", "", "file to write discovered addresses to"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only results in output"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	// configure aurora for logging
	au = aurora.New(aurora.WithColors(true))

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version.GetVersion())
		os.Exit(0)
	}

	if options.ConfigFile != "" {
		if err := options.loadConfigFrom(options.ConfigFile); err != nil {
			gologger.Fatal().Msgf("Could not load config file %s: %s\n", options.ConfigFile, err)
		}
	}

	options.SkipPrefixes = sliceutil.Dedupe(options.SkipPrefixes)

	if err := options.validate(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	return options
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	// If the user desires verbose output, show verbose output
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
		au = aurora.New(aurora.WithColors(false))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}

func (options *Options) loadConfigFrom(location string) error {
	data, err := os.ReadFile(location)
	if err != nil {
		return err
	}
	return fileutil.Unmarshal(fileutil.YAML, data, options)
}

func (options *Options) validate() error {
	if options.Host == "" {
		return fmt.Errorf("a target hostname is required")
	}
	if options.Port <= 0 || options.Port > 65535 {
		return fmt.Errorf("invalid port: %d", options.Port)
	}
	if options.Attempts <= 0 {
		return fmt.Errorf("attempts must be positive")
	}
	if options.Count <= 0 {
		return fmt.Errorf("count must be positive")
	}
	if options.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
