// Package aco - the transition probability model.
//
// For an ant at node `current` with candidate set `unvisited`, each candidate
// j scores tau(current,j)^alpha / d(current,j)^beta; scores are normalized by
// their sum to obtain the selection distribution. Selection itself is a
// roulette (cumulative) scan over the normalized mass.
//
// Two explicit numeric policies (the modeled system left both undefined):
//
//   - DegenerateDistance: distances below distanceFloor (duplicate
//     coordinates) are floored before exponentiation, so scores stay finite.
//   - NumericInstability: when the score mass is zero or non-finite, the
//     ant falls back to a uniform choice over the candidates instead of
//     failing the round.
package aco

import (
	"math"
	"math/rand"

	"github.com/pkruczek/antcolony/matrix"
)

// distanceFloor is the minimum distance (in kilometers) fed into the
// score denominator and the deposit divisor. 1e-9 km is far below any
// meaningful coordinate resolution, so it only ever masks exact duplicates.
const distanceFloor = 1e-9

// transitionScores fills scores[k] with the unnormalized desirability of
// moving current→unvisited[k]. scores must have len(unvisited).
//
// Contracts:
//   - current and every candidate index are within [0..n-1] (the walk loop
//     maintains this; matrix bounds errors are mapped to ErrStartOutOfRange
//     defensively).
//
// Complexity: O(len(unvisited)).
func transitionScores(
	ph *Pheromone,
	dist *matrix.Dense,
	current int,
	unvisited []int,
	alpha, beta float64,
	scores []float64,
) error {
	var (
		k   int     // candidate position
		j   int     // candidate node index
		tau float64 // pheromone level of arc current→j
		d   float64 // distance current→j, floored
		err error
	)
	for k = 0; k < len(unvisited); k++ {
		j = unvisited[k]

		tau, err = ph.At(current, j)
		if err != nil {
			return ErrStartOutOfRange
		}
		d, err = dist.At(current, j)
		if err != nil {
			return ErrStartOutOfRange
		}
		// Degenerate-distance policy: floor before exponentiation.
		if d < distanceFloor {
			d = distanceFloor
		}

		scores[k] = fastPow(tau, alpha) / fastPow(d, beta)
	}

	return nil
}

// selectNext picks one candidate position according to the normalized score
// mass, using a single roulette pass. When the mass is non-positive or
// non-finite (all-zero pheromone after a full wipe, overflowed exponents),
// it falls back to a uniform pick — the instability policy above.
//
// Returns a position into the candidate slice, never a node index.
//
// Complexity: O(len(scores)).
func selectNext(rng *rand.Rand, scores []float64) int {
	var (
		total float64 // score mass
		k     int
	)
	for k = 0; k < len(scores); k++ {
		total += scores[k]
	}

	// Instability fallback: unusable mass ⇒ uniform choice.
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return rng.Intn(len(scores))
	}

	// Roulette scan over the cumulative normalized mass.
	var (
		r   = rng.Float64() * total
		acc float64
	)
	for k = 0; k < len(scores); k++ {
		acc += scores[k]
		if r <= acc {
			return k
		}
	}

	// Floating-point slack can leave r marginally above the final acc.
	return len(scores) - 1
}

// fastPow shortcuts the common exponents so the hot selection loop avoids
// math.Pow for the default alpha=beta=1 configuration.
//
// Complexity: O(1).
func fastPow(x, p float64) float64 {
	if p == 0 {
		return 1.0
	}
	if p == 1 {
		return x
	}
	if p == 2 {
		return x * x
	}

	return math.Pow(x, p)
}
