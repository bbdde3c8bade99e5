package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/edgescout/edgescout/pkg/probe"
)

func TestWriteHostsFile(t *testing.T) {
	results := []probe.Result{
		{IP: "192.0.2.10", Latency: 80 * time.Millisecond},
		{IP: "198.51.100.20", Latency: 120 * time.Millisecond},
	}

	path := filepath.Join(t.TempDir(), "hosts.txt")
	if err := WriteHostsFile(results, path); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %s", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	wantLines := len(results)*len(operatorTags) + len(operatorDomains)
	if len(lines) != wantLines {
		t.Fatalf("expected %d lines, got %d", wantLines, len(lines))
	}

	if lines[0] != "192.0.2.10 MTN" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	// Each address appears once per operator tag before the domain table.
	for i, tag := range operatorTags {
		if lines[i] != "192.0.2.10 "+tag {
			t.Errorf("line %d: expected tag %s, got %q", i, tag, lines[i])
		}
	}
	if lines[len(results)*len(operatorTags)] != "mci.ircf.space MCI" {
		t.Errorf("expected domain table after addresses, got %q", lines[len(results)*len(operatorTags)])
	}
}

func TestWriteHostsFileEmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts.txt")
	if err := WriteHostsFile(nil, path); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %s", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != len(operatorDomains) {
		t.Errorf("expected only the domain table, got %d lines", len(lines))
	}
}

func TestWriteHostsFileBadPath(t *testing.T) {
	err := WriteHostsFile(nil, filepath.Join(t.TempDir(), "missing", "hosts.txt"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
