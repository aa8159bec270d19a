// Package aco - distance metrics and the frozen distance snapshot.
//
// Two policies are supported:
//
//   - MetricFast: planar approximation — Euclidean distance over the raw
//     degree offsets, scaled by kilometers-per-degree-of-latitude. No
//     curvature correction; intended for small-scale offsets.
//   - MetricAccurate: great-circle distance in kilometers between two
//     latitude/longitude points (haversine over the mean Earth radius).
//
// Contract shared by both modes: identical points return exactly 0.
package aco

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/pkruczek/antcolony/matrix"
)

// degreeKilometers converts one degree of latitude to kilometers; it scales
// the planar approximation so both metric modes report kilometers.
const degreeKilometers = 111.32

// Metric selects the distance policy for a run.
type Metric int

const (
	// MetricFast uses the scaled-Euclidean planar approximation.
	MetricFast Metric = iota

	// MetricAccurate uses the great-circle (haversine) distance.
	MetricAccurate
)

// String returns the wire-level name of the metric mode.
func (m Metric) String() string {
	if m == MetricFast {
		return "fast"
	}

	return "accurate"
}

// ParseMetric maps the form-layer mode string onto a Metric.
// Policy (kept from the modeled system): "fast" selects the planar
// approximation; every other value selects the geodesic metric.
func ParseMetric(mode string) Metric {
	if mode == "fast" {
		return MetricFast
	}

	return MetricAccurate
}

// validMetric reports whether m is a known enum value; Run rejects anything
// else with ErrBadMetric (an int cast can produce arbitrary values).
func validMetric(m Metric) bool {
	return m == MetricFast || m == MetricAccurate
}

// Distance returns the distance in kilometers between a and b under mode.
//
// Contracts:
//   - Result is ≥ 0 and finite for finite inputs.
//   - Distance(p, p, mode) == 0 exactly, for both modes.
//
// Note: distinct points with identical coordinates also yield 0; the
// probability model floors such distances (see distanceFloor), the reported
// path lengths do not.
//
// Complexity: O(1).
func Distance(a, b Location, mode Metric) float64 {
	// Identical coordinates short-circuit to an exact zero in both modes;
	// haversine on equal points already yields 0, the shortcut keeps the
	// guarantee independent of the backend.
	if a.Lat == b.Lat && a.Lon == b.Lon {
		return 0
	}

	if mode == MetricFast {
		// Planar approximation over degree offsets, scaled to kilometers.
		return math.Hypot(a.Lat-b.Lat, a.Lon-b.Lon) * degreeKilometers
	}

	// Great-circle kilometers; orb points are (lon, lat) ordered.
	return geo.DistanceHaversine(
		orb.Point{a.Lon, a.Lat},
		orb.Point{b.Lon, b.Lat},
	) / 1000.0
}

// DistanceMatrix precomputes the full n×n distance snapshot for locs under
// mode. The snapshot is immutable for the run: every ant of every round reads
// it, so paying O(n²) once beats recomputing geodesics inside the walk loop.
//
// Errors: ErrTooFewLocations for n < 2; ErrBadMetric for unknown modes.
//
// Complexity: O(n²) time and memory.
func DistanceMatrix(locs []Location, mode Metric) (*matrix.Dense, error) {
	// Stage 1: input shape.
	n := len(locs)
	if n < 2 {
		return nil, ErrTooFewLocations
	}
	if !validMetric(mode) {
		return nil, ErrBadMetric
	}

	// Stage 2: allocate and fill. The matrix is directed in storage but the
	// two supported metrics are symmetric, so fill both triangles per pair.
	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int     // pair indices
		d    float64 // distance for the current pair
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(locs[i], locs[j], mode)
			// Set cannot fail here: indices are within the freshly built shape.
			_ = dist.Set(i, j, d)
			_ = dist.Set(j, i, d)
		}
	}

	return dist, nil
}
