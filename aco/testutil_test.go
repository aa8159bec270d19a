// Package aco_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal and
// avoid duplicating functionality that already lives in focused test files.
package aco_test

import (
	"errors"
	"math"
	"testing"

	"github.com/pkruczek/antcolony/aco"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// kmPerDegree mirrors the engine's planar conversion constant.
	kmPerDegree = 111.32

	// epsLoose is a relaxed tolerance for geometric comparisons.
	epsLoose = 1e-6

	// seedDet is the deterministic seed used across tests.
	seedDet = int64(42)
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// unitSquare returns the four corners of the unit square in boundary order.
// Under MetricFast the optimal open tour walks the boundary: 3 × 111.32 km.
func unitSquare() []aco.Location {
	return []aco.Location{
		{ID: "sw", Lat: 0, Lon: 0},
		{ID: "nw", Lat: 0, Lon: 1},
		{ID: "ne", Lat: 1, Lon: 1},
		{ID: "se", Lat: 1, Lon: 0},
	}
}

// polishCities returns the real geodecoded fixture the modeled system ships
// for manual testing; handy for integration-flavored accurate-metric runs.
func polishCities() []aco.Location {
	return []aco.Location{
		{ID: "Wrocław", Lat: 51.1089776, Lon: 17.0326689},
		{ID: "Bydgoszcz", Lat: 53.12974625, Lon: 18.029369658534854},
		{ID: "Lublin", Lat: 51.250559, Lon: 22.5701022},
		{ID: "Gorzów Wielkopolski", Lat: 52.7309926, Lon: 15.2400451},
		{ID: "Łódź", Lat: 51.7728245, Lon: 19.478485931307937},
		{ID: "Kraków", Lat: 50.0469432, Lon: 19.997153435836697},
		{ID: "Warszawa", Lat: 52.2319581, Lon: 21.0067249},
		{ID: "Opole", Lat: 50.6668184, Lon: 17.9236408},
		{ID: "Rzeszów", Lat: 50.0374531, Lon: 22.0047174},
		{ID: "Białystok", Lat: 53.132398, Lon: 23.1591679},
	}
}

// tinyOpts returns a fast-running deterministic configuration for driver tests.
func tinyOpts(extra ...aco.Option) aco.Options {
	base := []aco.Option{
		aco.WithAnts(4),
		aco.WithIterations(2),
		aco.WithSeed(seedDet),
	}

	return aco.DefaultOptions(append(base, extra...)...)
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustPermutation asserts that path is a permutation of {0..n-1}.
func mustPermutation(t *testing.T, path []int, n int) {
	t.Helper()
	if len(path) != n {
		t.Fatalf("path length = %d; want %d", len(path), n)
	}
	seen := make([]bool, n)
	for _, v := range path {
		if v < 0 || v >= n {
			t.Fatalf("path element %d out of range [0,%d)", v, n)
		}
		if seen[v] {
			t.Fatalf("path element %d repeated: %v", v, path)
		}
		seen[v] = true
	}
}

// mustFloatClose asserts |got-want| <= tol.
func mustFloatClose(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("float mismatch: got=%.12g want=%.12g (tol=%.1e)", got, want, tol)
	}
}
