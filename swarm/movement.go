package swarm

import (
	"fmt"

	"github.com/Lufajardo/antgrid/grid"
)

// RouletteDecision is the default movement strategy: a random-
// proportional draw where each candidate's weight is its pheromone
// value, so stronger trails attract proportionally more traffic.
//
// Fallbacks keeping the walk alive on a blank field:
//   - All weights equal (including all-zero): uniform choice.
//   - Negative cell values (a host-written layer quirk) weigh as zero.
//
// Determinism: one RNG draw per call on the weighted path and one on
// the uniform path, so trajectories replay exactly under a fixed seed.
// Complexity: O(d) for d candidates (≤ 8).
func RouletteDecision(w *World, _ *Agent, candidates []grid.Position) (grid.Position, error) {
	// 1. Collect weights in candidate order
	weights := make([]float64, len(candidates))
	var (
		total   float64
		uniform = true
	)
	for i, p := range candidates {
		v, err := w.Pheromone(p)
		if err != nil {
			return grid.Position{}, fmt.Errorf("sensing %s: %w", p, err)
		}
		if v < 0 {
			v = 0
		}
		weights[i] = v
		total += v
		if v != weights[0] {
			uniform = false
		}
	}

	// 2. Uniform fallback: equal weights carry no signal
	if uniform || total <= 0 {
		return candidates[w.rng.Intn(len(candidates))], nil
	}

	// 3. Roulette wheel: land the draw in the cumulative weight span
	r := w.rng.Float64() * total
	var acc float64
	for i, wt := range weights {
		acc += wt
		if r < acc {
			return candidates[i], nil
		}
	}

	// Floating-point tail: r == total after rounding.
	return candidates[len(candidates)-1], nil
}

// GreedyDecision is an alternative strategy that always takes the
// strongest-scented candidate, breaking ties by candidate order. Useful
// for extracting an established corridor without exploration noise.
// Complexity: O(d) for d candidates.
func GreedyDecision(w *World, _ *Agent, candidates []grid.Position) (grid.Position, error) {
	best := candidates[0]
	bestV := -1.0
	for _, p := range candidates {
		v, err := w.Pheromone(p)
		if err != nil {
			return grid.Position{}, fmt.Errorf("sensing %s: %w", p, err)
		}
		if v > bestV {
			best, bestV = p, v
		}
	}

	return best, nil
}
