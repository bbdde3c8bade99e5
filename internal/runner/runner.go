package runner

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/rs/xid"

	"github.com/edgescout/edgescout/pkg/output"
	"github.com/edgescout/edgescout/pkg/probe"
	"github.com/edgescout/edgescout/pkg/ranges"
	"github.com/edgescout/edgescout/pkg/sysinfo"
)

// Runner contains the internal logic of the program
type Runner struct {
	options *Options
}

// NewRunner instance
func NewRunner(options *Options) (*Runner, error) {
	return &Runner{options: options}, nil
}

// Run executes the discovery pipeline: fetch the published ranges, expand
// and filter them, probe a random sample over TLS and print the fastest
// addresses. The two fatal failure classes are a directory fetch error
// and a malformed address block, everything after sampling is absorbed
// into the size of the result.
func (r *Runner) Run(ctx context.Context) error {
	runID := xid.New().String()
	gologger.Verbose().Msgf("run %s: probing %s:%d via %s", runID, r.options.Host, r.options.Port, r.options.RangesURL)

	client := ranges.NewClient(r.options.RangesURL)
	cidrs, err := client.IPv4Ranges(ctx)
	if err != nil {
		return err
	}
	gologger.Info().Msgf("fetched %d address blocks", len(cidrs))

	pool, err := ranges.Expand(cidrs)
	if err != nil {
		return err
	}

	pool = ranges.FilterPrefixes(pool, r.options.SkipPrefixes)
	gologger.Verbose().Msgf("run %s: %d candidate addresses after prefix filtering", runID, len(pool))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sampled := ranges.Sample(rng, pool, r.options.Attempts)
	if len(sampled) == 0 {
		gologger.Info().Msg("no candidate addresses to probe")
		return nil
	}

	r.preflight(runID, len(sampled))

	engine := probe.NewEngine(r.options.Host, r.options.Port,
		probe.WithTimeout(time.Duration(r.options.Timeout)*time.Second))
	results := engine.Probe(ctx, sampled)
	gologger.Info().Msgf("%d of %d probes completed the handshake", len(results), len(sampled))

	ranked := probe.Rank(results, r.options.Count)
	if len(ranked) == 0 {
		gologger.Info().Msg("no reachable addresses found")
		return nil
	}

	if err := output.WriteTable(os.Stdout, ranked); err != nil {
		return err
	}

	if r.options.Output != "" {
		if err := output.WriteHostsFile(ranked, r.options.Output); err != nil {
			return err
		}
	}
	return nil
}

// preflight logs resource headroom before the engine launches one
// goroutine per sampled address with no concurrency cap.
func (r *Runner) preflight(runID string, sampleSize int) {
	if limit, err := sysinfo.FileDescriptorLimit(); err == nil {
		if uint64(sampleSize) >= limit {
			gologger.Warning().Msgf("attempt budget %d reaches the open file limit %d, expect dial failures", sampleSize, limit)
		}
		gologger.Verbose().Msgf("run %s: sample=%d fd-limit=%d", runID, sampleSize, limit)
	}
	if available, err := sysinfo.AvailableMemory(); err == nil {
		gologger.Verbose().Msgf("run %s: available memory %d MB", runID, available/(1024*1024))
	}
}

// Close releases resources held by the runner. Present for symmetry with
// the signal handler in main, the pipeline itself holds no global state.
func (r *Runner) Close() {}
