package scheduling

import (
	"fmt"
	"math/rand/v2"
)

// used marks a consumed slot in the working weight slice. Distinct from a
// zero weight: zero-weight items stay drawable once only zeros remain.
const used = -1.0

// WeightedShuffle returns a permutation of items where each position is
// drawn without replacement with probability proportional to the
// remaining weights. Selection is by index, so duplicate item values are
// disambiguated naturally. When every remaining weight is zero the draw
// degrades to uniform among the remainder.
func WeightedShuffle[T any](rng *rand.Rand, items []T, weights []float64) ([]T, error) {
	if len(items) != len(weights) {
		return nil, fmt.Errorf("weighted shuffle: %d items but %d weights", len(items), len(weights))
	}

	remaining := make([]float64, len(weights))
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("weighted shuffle: negative weight %g at index %d", w, i)
		}
		remaining[i] = w
	}

	out := make([]T, 0, len(items))
	for range items {
		idx := pickIndex(rng, remaining)
		out = append(out, items[idx])
		remaining[idx] = used
	}

	return out, nil
}

func pickIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}

	if total <= 0 {
		unused := make([]int, 0, len(weights))
		for i, w := range weights {
			if w != used {
				unused = append(unused, i)
			}
		}
		return unused[rng.IntN(len(unused))]
	}

	r := rng.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		r -= w
		if r < 0 {
			return i
		}
	}

	// Rounding can leave a sliver of r; fall back to the final positive
	// weight.
	return last
}
