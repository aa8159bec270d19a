// Package aco - the pheromone state owned by one run.
//
// The matrix is directed: entry (i,j) is the desirability of traveling i→j;
// it is never symmetrized. It is created once per run, initialized to 1.0
// everywhere (including the never-meaningfully-read diagonal), and persists
// across every starting point and iteration — it is never reset mid-run.
package aco

import "github.com/pkruczek/antcolony/matrix"

// Pheromone owns the n×n pheromone matrix of one run.
// It is the run's only shared mutable state; the driver guarantees that
// Evaporate/Deposit never overlap with concurrent reads (round barrier).
type Pheromone struct {
	mat *matrix.Dense // n×n non-negative entries
	n   int           // matrix order, cached
}

// NewPheromone creates the n×n pheromone state with every entry at 1.0.
//
// Errors: ErrTooFewLocations for n < 2 (no meaningful trail exists).
//
// Complexity: O(n²) time and memory.
func NewPheromone(n int) (*Pheromone, error) {
	if n < 2 {
		return nil, ErrTooFewLocations
	}
	mat, err := matrix.NewDenseFilled(n, n, 1.0)
	if err != nil {
		return nil, err
	}

	return &Pheromone{mat: mat, n: n}, nil
}

// Size returns the matrix order n.
// Complexity: O(1).
func (p *Pheromone) Size() int {
	return p.n
}

// At returns the pheromone level of arc i→j.
// Errors: matrix.ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (p *Pheromone) At(i, j int) (float64, error) {
	return p.mat.At(i, j)
}

// Evaporate multiplies every entry by rate — applied verbatim, so rate is a
// retention factor: 1.0 keeps everything, 0.0 wipes the matrix. Do not
// "correct" call sites to pass 1−rate; the modeled semantics are exactly this.
//
// Errors: ErrBadEvaporation if rate lies outside [0,1] (the range that keeps
// every entry non-negative).
//
// Complexity: O(n²).
func (p *Pheromone) Evaporate(rate float64) error {
	if rate < 0 || rate > 1 {
		return ErrBadEvaporation
	}
	p.mat.Scale(rate)

	return nil
}

// Deposit reinforces the arcs of path with q/length each: the n−1 consecutive
// arcs path[i]→path[i+1] plus the closing arc path[n−1]→path[0]. The closing
// arc is reinforced even though length, as produced by BuildPath, excludes
// that leg's distance — this asymmetry is part of the modeled behavior and is
// reproduced deliberately.
//
// A zero (or sub-floor) length is floored to distanceFloor before the
// division so a fully-degenerate tour cannot inject +Inf into the matrix.
//
// Errors: ErrBadPath if path is not a permutation of {0..n−1};
// ErrBadQ if q < 0 (would break the non-negativity invariant).
//
// Complexity: O(n).
func (p *Pheromone) Deposit(path []int, length, q float64) error {
	// Stage 1: guards. The permutation check keeps index arithmetic safe and
	// the non-negativity invariant honest.
	if err := validatePermutation(path, p.n); err != nil {
		return err
	}
	if q < 0 {
		return ErrBadQ
	}
	if length < distanceFloor {
		length = distanceFloor
	}

	// Stage 2: reinforce the n−1 traversed arcs plus the closing arc.
	var (
		delta = q / length // per-arc reinforcement
		i     int
	)
	for i = 0; i < p.n-1; i++ {
		// Add cannot fail: indices were validated as a permutation.
		_ = p.mat.Add(path[i], path[i+1], delta)
	}
	_ = p.mat.Add(path[p.n-1], path[0], delta)

	return nil
}

// validatePermutation checks that path is a permutation of {0..n-1} of
// length n. It does not allocate besides a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func validatePermutation(path []int, n int) error {
	if n <= 0 || len(path) != n {
		return ErrBadPath
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = path[i]
		// Out-of-range element violates the permutation contract.
		if v < 0 || v >= n {
			return ErrBadPath
		}
		// So does a duplicate.
		if seen[v] {
			return ErrBadPath
		}
		seen[v] = true
	}

	return nil
}
