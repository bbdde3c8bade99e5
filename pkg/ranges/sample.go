package ranges

import (
	"math/rand"
)

// Sample selects min(budget, len(pool)) distinct addresses uniformly at
// random without replacement. The randomness source is supplied by the
// caller so selection is reproducible under test with a seeded source.
// An empty pool or non-positive budget yields an empty selection.
func Sample(rng *rand.Rand, pool []string, budget int) []string {
	if budget <= 0 || len(pool) == 0 {
		return nil
	}
	if budget > len(pool) {
		budget = len(pool)
	}

	// Partial Fisher-Yates over an owned copy: only the first budget
	// positions need shuffling.
	candidates := make([]string, len(pool))
	copy(candidates, pool)
	for i := 0; i < budget; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:budget]
}
