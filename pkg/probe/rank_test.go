package probe

import (
	"testing"
	"time"
)

func TestRank(t *testing.T) {
	results := []Result{
		{IP: "192.0.2.1", Latency: 120 * time.Millisecond},
		{IP: "192.0.2.2", Latency: 80 * time.Millisecond},
		{IP: "192.0.2.3", Latency: 200 * time.Millisecond},
		{IP: "192.0.2.4", Latency: 80 * time.Millisecond},
	}

	tests := []struct {
		name     string
		results  []Result
		limit    int
		wantLen  int
		validate func(t *testing.T, ranked []Result)
	}{
		{
			name:    "sorted ascending and truncated",
			results: results,
			limit:   2,
			wantLen: 2,
			validate: func(t *testing.T, ranked []Result) {
				if ranked[0].IP != "192.0.2.2" {
					t.Errorf("expected fastest first, got %s", ranked[0].IP)
				}
				if ranked[1].Latency != 80*time.Millisecond {
					t.Errorf("expected 80ms second, got %s", ranked[1].Latency)
				}
			},
		},
		{
			name:    "stable tie break keeps original order",
			results: results,
			limit:   4,
			wantLen: 4,
			validate: func(t *testing.T, ranked []Result) {
				if ranked[0].IP != "192.0.2.2" || ranked[1].IP != "192.0.2.4" {
					t.Errorf("equal latencies reordered: %s, %s", ranked[0].IP, ranked[1].IP)
				}
			},
		},
		{
			name:    "limit above result count clamps",
			results: results[:2],
			limit:   10,
			wantLen: 2,
		},
		{
			name:    "single winner",
			results: []Result{{IP: "192.0.2.5", Latency: 120 * time.Millisecond}, {IP: "192.0.2.6", Latency: 80 * time.Millisecond}},
			limit:   1,
			wantLen: 1,
			validate: func(t *testing.T, ranked []Result) {
				if ranked[0].IP != "192.0.2.6" || ranked[0].Latency != 80*time.Millisecond {
					t.Errorf("expected the 80ms candidate, got %+v", ranked[0])
				}
			},
		},
		{
			name:    "empty input",
			results: nil,
			limit:   5,
			wantLen: 0,
		},
		{
			name:    "zero limit",
			results: results,
			limit:   0,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Rank(tt.results, tt.limit)
			if len(ranked) != tt.wantLen {
				t.Fatalf("expected %d results, got %d", tt.wantLen, len(ranked))
			}
			for i := 1; i < len(ranked); i++ {
				if ranked[i].Latency < ranked[i-1].Latency {
					t.Errorf("results not ascending at %d: %s < %s", i, ranked[i].Latency, ranked[i-1].Latency)
				}
			}
			if tt.validate != nil {
				tt.validate(t, ranked)
			}
		})
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	results := []Result{
		{IP: "192.0.2.1", Latency: 300 * time.Millisecond},
		{IP: "192.0.2.2", Latency: 100 * time.Millisecond},
	}

	Rank(results, 2)
	if results[0].IP != "192.0.2.1" {
		t.Errorf("input reordered by Rank: %+v", results)
	}
}
