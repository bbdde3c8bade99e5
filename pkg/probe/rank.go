package probe

import (
	"sort"
)

// Rank sorts results ascending by latency and keeps the first
// min(limit, len(results)) entries. Equal latencies keep their original
// order. The input slice is not modified.
func Rank(results []Result, limit int) []Result {
	if limit <= 0 || len(results) == 0 {
		return nil
	}

	ranked := make([]Result, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Latency < ranked[j].Latency
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}
	return ranked[:limit]
}
