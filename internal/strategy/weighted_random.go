package strategy

import (
	"math/rand/v2"
)

type weightedRandomStrategy struct {
	uint64N func(n uint64) uint64
}

// NewWeightedRandomStrategy creates a strategy drawing from the global
// random source.
func NewWeightedRandomStrategy() Strategy {
	return &weightedRandomStrategy{uint64N: rand.Uint64N}
}

// NewWeightedRandomStrategyWithSource creates a strategy drawing with
// uint64N, which returns a uniform integer in [0, n). Pass the method of a
// seeded *rand.Rand for reproducible draws; it must be safe for the
// goroutines sharing the strategy.
func NewWeightedRandomStrategyWithSource(uint64N func(n uint64) uint64) Strategy {
	return &weightedRandomStrategy{uint64N: uint64N}
}

func (w *weightedRandomStrategy) Select(candidates []Candidate) (int, bool) {
	total := TotalWeight(candidates)
	if total == 0 {
		return 0, false
	}

	remainder := w.uint64N(total) + 1
	for i, c := range candidates {
		if remainder <= c.Weight {
			return i, true
		}
		remainder -= c.Weight
	}

	// unreachable while the draw stays within [1, total]
	return len(candidates) - 1, true
}
