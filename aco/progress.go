// Package aco - the per-round progress stream.
//
// Entries are emitted in round order, synchronously, between a round's
// pheromone update and the next round's fan-out — an ordered, append-only
// stream a caller can forward to a live UI incrementally instead of waiting
// for the run to finish.
package aco

import "fmt"

// ProgressEntry describes one completed round: `ants` paths built from a
// fixed start node followed by one evaporation+deposit update.
type ProgressEntry struct {
	// Round is the 0-based ordinal across the whole run (0..n×iterations−1).
	Round int

	// Start is the starting node all of this round's ants departed from.
	Start int

	// Iteration is the 0-based ordinal of this round within its start.
	Iteration int

	// BestLength is the shortest open-tour length among this round's ants.
	BestLength float64

	// BestPath is the corresponding permutation (first minimum on ties).
	// The slice is an independent copy owned by the receiver.
	BestPath []int
}

// String renders the entry as one progress-log line, e.g.
// "312 km --> [0 4 2 1 3]". Kilometers are truncated toward zero.
func (e ProgressEntry) String() string {
	return fmt.Sprintf("%d km --> %v", int(e.BestLength), e.BestPath)
}

// ProgressFunc consumes progress entries. Implementations must be fast:
// the driver calls them on its own goroutine, blocking the next round.
type ProgressFunc func(ProgressEntry)
