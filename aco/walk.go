// Package aco - one ant's stochastic walk.
package aco

import (
	"math/rand"

	"github.com/pkruczek/antcolony/matrix"
)

// BuildPath constructs one ant's tour: it starts at start, repeatedly scores
// the unvisited nodes with the transition model, samples the next node from
// the normalized distribution, and advances until every node is visited.
//
// Returns the full permutation of {0..n−1} (beginning at start) and the
// open-tour length: the sum of the n−1 traversed edges in kilometers. The
// implicit return leg start←last is NOT included (the pheromone deposit
// nevertheless reinforces it; see Pheromone.Deposit).
//
// Contracts:
//   - dist is the run's frozen n×n snapshot; it is only read.
//   - ph is read-only during the walk (the driver's round barrier).
//   - rng is owned by this walk; it must not be shared across goroutines.
//
// Errors: ErrStartOutOfRange if start ∉ [0..n−1]; ErrTooFewLocations if the
// snapshot and pheromone orders disagree or are degenerate.
//
// Complexity: O(n²) time, O(n) extra space.
func BuildPath(
	dist *matrix.Dense,
	ph *Pheromone,
	start int,
	alpha, beta float64,
	rng *rand.Rand,
) ([]int, float64, error) {
	// Stage 1: shape guards.
	if dist == nil || ph == nil {
		return nil, 0, ErrTooFewLocations
	}
	n := ph.Size()
	if n < 2 || dist.Rows() != n || dist.Cols() != n {
		return nil, 0, ErrTooFewLocations
	}
	if start < 0 || start >= n {
		return nil, 0, ErrStartOutOfRange
	}

	// Stage 2: walk state. Buffers are sized once; the candidate and score
	// slices are re-sliced each step instead of reallocated.
	var (
		visited   = make([]bool, n)      // visit mask
		path      = make([]int, 1, n)    // the permutation under construction
		unvisited = make([]int, 0, n-1)  // candidate node indices, rebuilt per step
		scores    = make([]float64, n-1) // score buffer, re-sliced per step
		current   = start                // ant position
		length    float64                // open-tour accumulator
	)
	visited[start] = true
	path[0] = start

	var (
		j, k, next int
		d          float64
		err        error
	)
	for len(path) < n {
		// Rebuild the candidate set for this step.
		unvisited = unvisited[:0]
		for j = 0; j < n; j++ {
			if !visited[j] {
				unvisited = append(unvisited, j)
			}
		}

		// Score candidates and sample the successor.
		step := scores[:len(unvisited)]
		if err = transitionScores(ph, dist, current, unvisited, alpha, beta, step); err != nil {
			return nil, 0, err
		}
		k = selectNext(rng, step)
		next = unvisited[k]

		// Advance: append, accumulate the true edge distance, move on.
		// The floor applied inside the score does not leak into the length.
		d, err = dist.At(current, next)
		if err != nil {
			return nil, 0, ErrStartOutOfRange
		}
		length += d
		path = append(path, next)
		visited[next] = true
		current = next
	}

	return path, length, nil
}
