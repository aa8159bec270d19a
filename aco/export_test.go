package aco

// Test-bridge (white-box) for private engine pieces.
//
// Purpose:
//   - Expose the unexported probability model and RNG derivation to the
//     aco_test package only, without widening the production API.
//   - Test files live in aco_test (black-box) by default; everything they
//     need beyond the public surface is funneled through here.

var (
	// ExportedTransitionScores exposes transitionScores for white-box tests.
	ExportedTransitionScores = transitionScores

	// ExportedSelectNext exposes selectNext for white-box tests.
	ExportedSelectNext = selectNext

	// ExportedFastPow exposes fastPow for white-box tests.
	ExportedFastPow = fastPow

	// ExportedValidatePermutation exposes validatePermutation for white-box tests.
	ExportedValidatePermutation = validatePermutation

	// ExportedStreamRNG exposes streamRNG for white-box tests.
	ExportedStreamRNG = streamRNG

	// ExportedDeriveSeed exposes deriveSeed for white-box tests.
	ExportedDeriveSeed = deriveSeed
)

// ExportedDistanceFloor mirrors distanceFloor for white-box tests.
const ExportedDistanceFloor = distanceFloor
