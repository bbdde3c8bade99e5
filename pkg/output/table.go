package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/edgescout/edgescout/pkg/probe"
)

// WriteTable renders the ranked results as an aligned table with rank,
// address and latency columns.
func WriteTable(w io.Writer, results []probe.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	if _, err := fmt.Fprintln(tw, "#\tIP Address\tLatency (ms)"); err != nil {
		return err
	}
	for i, result := range results {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%d\n", i+1, result.IP, result.Latency.Milliseconds()); err != nil {
			return err
		}
	}
	return tw.Flush()
}
