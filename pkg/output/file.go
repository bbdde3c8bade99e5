package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"

	"github.com/edgescout/edgescout/pkg/probe"
)

// operatorTags are the operator labels each discovered address is written
// under in the hosts file.
var operatorTags = []string{"MTN", "MCI", "RTL", "ZTL", "SHT"}

// operatorDomains is a static table of per-operator edge domains appended
// after the discovered addresses.
var operatorDomains = [][2]string{
	{"mci.ircf.space", "MCI"},
	{"mcic.ircf.space", "MCI"},
	{"mtn.ircf.space", "MTN"},
	{"mtnc.ircf.space", "MTN"},
	{"mkh.ircf.space", "MKH"},
	{"rtl.ircf.space", "RTL"},
	{"hwb.ircf.space", "HWB"},
	{"ast.ircf.space", "AST"},
	{"sht.ircf.space", "SHT"},
	{"prs.ircf.space", "PRS"},
	{"mbt.ircf.space", "MBT"},
	{"ask.ircf.space", "ASK"},
	{"rsp.ircf.space", "RSP"},
	{"afn.ircf.space", "AFN"},
	{"ztl.ircf.space", "ZTL"},
	{"psm.ircf.space", "PSM"},
	{"arx.ircf.space", "ARX"},
	{"smt.ircf.space", "SMT"},
	{"shm.ircf.space", "SHM"},
	{"fnv.ircf.space", "FNV"},
	{"dbn.ircf.space", "DBN"},
	{"apt.ircf.space", "APT"},
	{"fnp.ircf.space", "FNP"},
	{"ryn.ircf.space", "RYN"},
	{"sbn.ircf.space", "SBN"},
	{"ptk.ircf.space", "PTK"},
	{"atc.ircf.space", "ATC"},
}

// WriteHostsFile writes every ranked address once per operator tag,
// followed by the static operator-domain table.
func WriteHostsFile(results []probe.Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		if os.IsPermission(err) {
			return errorutil.NewWithErr(err).Msgf("permission denied writing to %s, choose a different location or adjust permissions", path)
		}
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	w := bufio.NewWriter(file)
	for _, result := range results {
		for _, tag := range operatorTags {
			if _, err := fmt.Fprintf(w, "%s %s\n", result.IP, tag); err != nil {
				return errorutil.NewWithErr(err).Msgf("could not write address entries to %s", path)
			}
		}
	}
	for _, entry := range operatorDomains {
		if _, err := fmt.Fprintf(w, "%s %s\n", entry[0], entry[1]); err != nil {
			return errorutil.NewWithErr(err).Msgf("could not write domain entries to %s", path)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	gologger.Info().Msgf("wrote %d addresses and %d domains to %s", len(results), len(operatorDomains), path)
	return nil
}
