// Package aco - RNG utilities shared by the driver and the path builder.
//
// This file centralizes deterministic random generation for the colony.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms AND across
//     any Workers setting (streams are derived from indices, not scheduling).
//   - Encapsulation: a single RNG derivation point; no time-based sources.
//   - Performance: O(1) helpers, no hidden allocations in hot paths.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each ant walk receives its own
//     derived stream; no *rand.Rand is ever shared across goroutines.
package aco

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// normalizeSeed applies the seed==0 policy.
//
// Complexity: O(1).
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Every (round, ant) pair needs an independent substream so that parallel
//     walks stay decorrelated yet schedule-independent.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     adjacent stream ids.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer; small
//     input changes produce large, well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG returns the deterministic RNG for one stream of a run.
// The driver assigns stream = round*ants + ant, which is unique per walk.
//
// Complexity: O(1); allocates one generator (called once per walk, outside
// the selection loop).
func streamRNG(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(normalizeSeed(seed), stream)))
}
