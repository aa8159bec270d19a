// Package aco — core types and sentinel errors.
//
// Sentinel errors (matched via errors.Is):
//
//	– ErrTooFewLocations if fewer than two locations are supplied.
//	– ErrBadAnts         if the colony size is below 1.
//	– ErrBadIterations   if the iteration count is below 1.
//	– ErrBadEvaporation  if the retention factor lies outside [0,1].
//	– ErrBadQ            if the deposit constant is negative.
//	– ErrBadMetric       if the metric mode is not a known enum value.
//	– ErrBadWorkers      if the worker bound is negative.
//	– ErrStartOutOfRange if a start node index is outside [0..n-1].
//	– ErrBadPath         if a path is not a permutation of the node set.
//	– ErrBadCoordinate   if a string-encoded coordinate cannot be parsed.
//	– ErrCancelled       if the run was stopped through its context.
package aco

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the solver. No function in this package
// logs, retries, or panics on user input — callers get these instead.
var (
	// ErrTooFewLocations indicates a degenerate instance (n < 2); the walk
	// loop would never execute, so the input is rejected up front.
	ErrTooFewLocations = errors.New("aco: at least two locations are required")

	// ErrBadAnts indicates a colony size below 1.
	ErrBadAnts = errors.New("aco: ants must be at least 1")

	// ErrBadIterations indicates an iteration count below 1.
	ErrBadIterations = errors.New("aco: iterations must be at least 1")

	// ErrBadEvaporation indicates a retention factor outside [0,1].
	// The factor multiplies every pheromone entry directly, so values in
	// this range are what keep the matrix non-negative.
	ErrBadEvaporation = errors.New("aco: evaporation rate must lie within [0,1]")

	// ErrBadQ indicates a negative deposit constant.
	ErrBadQ = errors.New("aco: deposit constant Q must be non-negative")

	// ErrBadMetric indicates an unknown metric mode value.
	ErrBadMetric = errors.New("aco: unknown metric mode")

	// ErrBadWorkers indicates a negative worker bound.
	ErrBadWorkers = errors.New("aco: workers must be non-negative")

	// ErrStartOutOfRange indicates a start node index outside [0..n-1].
	ErrStartOutOfRange = errors.New("aco: start node out of range")

	// ErrBadPath indicates a path that is not a permutation of {0..n-1}.
	ErrBadPath = errors.New("aco: path is not a permutation of the locations")

	// ErrBadCoordinate indicates a string-encoded coordinate that failed to
	// parse as a float.
	ErrBadCoordinate = errors.New("aco: malformed coordinate")

	// ErrCancelled indicates that the run's context was cancelled between
	// rounds; the result returned alongside carries the best tour so far.
	ErrCancelled = errors.New("aco: run cancelled")
)

// Location is one labeled point of the instance. Coordinates are either
// planar offsets or latitude/longitude in degrees depending on the metric
// mode; the engine treats them as an opaque numeric pair. Immutable once
// handed to Run.
type Location struct {
	// ID is the opaque caller-supplied label, carried through to the result.
	ID string

	// Lat is the first coordinate (latitude in degrees for geodesic mode).
	Lat float64

	// Lon is the second coordinate (longitude in degrees for geodesic mode).
	Lon float64
}

// Result holds the outcome of one completed (or cancelled) run.
// It is created once per invocation and never mutated afterwards.
type Result struct {
	// BestTour is the best permutation of internal node indices found,
	// in visiting order. len(BestTour) == n.
	BestTour []int

	// BestPath is BestTour translated back to the caller's Locations.
	BestPath []Location

	// BestLength is the open-tour length of BestTour in kilometers:
	// the sum of the n−1 traversed edges, excluding the return leg.
	BestLength float64

	// Log is the ordered per-round progress log, one line per completed
	// round, formatted like "312 km --> [0 4 2 1 3]".
	Log []string
}

// BestLengthLabel renders BestLength the way the surrounding UI displays it:
// truncated to whole kilometers with a unit suffix, e.g. "312 km".
func (r Result) BestLengthLabel() string {
	return fmt.Sprintf("%d km", int(r.BestLength))
}
