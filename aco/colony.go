// Package aco - the multi-start optimization driver.
//
// Run executes the nested loop the modeled system performs:
//
//	for start in 0..n-1:
//	    for iter in 0..iterations-1:
//	        build `ants` paths from start against the frozen pheromone
//	        evaporate once, then deposit every path
//	        emit one progress entry; update the global best
//
// Total rounds = n × iterations. The pheromone matrix is never reinitialized
// between starts: later starting points inherit (and contend with) trail laid
// while exploring earlier ones. That cross-start carry-over is a deliberate
// property of the modeled algorithm and is preserved here.
//
// Concurrency model: within a round, all ants read the same frozen pheromone
// snapshot, so their walks fan out across Options.Workers goroutines; the
// evaporation+deposit step runs strictly after every walk returned (barrier)
// and strictly before the next round begins. Determinism holds for any
// Workers value because each walk's RNG stream is derived from the seed and
// the (round, ant) pair, never from scheduling order.
package aco

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/pkruczek/antcolony/matrix"
)

// Run optimizes a tour over locations and returns the best tour found, its
// open-tour length, and the ordered per-round progress log.
//
// The context is checked once per round, between barriers; on cancellation
// Run returns the best-so-far Result together with an error matching both
// ErrCancelled and ctx.Err().
//
// Errors: ErrTooFewLocations, ErrBadAnts, ErrBadIterations, ErrBadEvaporation,
// ErrBadQ, ErrBadMetric, ErrBadWorkers, ErrCancelled.
//
// Complexity: O(n × iterations × ants × n²) time, O(n² + ants·n) space.
func Run(ctx context.Context, locations []Location, opts Options) (Result, error) {
	// Stage 1: validation. Fail fast — a degenerate instance must never
	// silently produce an empty result.
	n := len(locations)
	if n < 2 {
		return Result{}, ErrTooFewLocations
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	// Stage 2: run state. The distance snapshot and the pheromone matrix are
	// created here and die with the run; nothing is ambient or global.
	dist, err := DistanceMatrix(locations, opts.Metric)
	if err != nil {
		return Result{}, err
	}
	ph, err := NewPheromone(n)
	if err != nil {
		return Result{}, err
	}

	var (
		bestLength = math.Inf(1)                          // global best, non-increasing
		bestPath   []int                                  // global best permutation
		log        = make([]string, 0, n*opts.Iterations) // one line per round
		round      int                                    // 0-based round ordinal
	)

	// Stage 3: the nested multi-start loop.
	var (
		start, iter int
		paths       [][]int
		lengths     []float64
	)
	for start = 0; start < n; start++ {
		for iter = 0; iter < opts.Iterations; iter++ {
			// Cancellation boundary: between rounds the pheromone state is
			// consistent, so this is the only safe place to stop.
			if cerr := ctx.Err(); cerr != nil {
				return finishResult(locations, bestPath, bestLength, log),
					fmt.Errorf("round %d: %w (%w)", round, ErrCancelled, cerr)
			}

			// Fan out this round's ants against the frozen pheromone.
			paths, lengths, err = buildRoundPaths(dist, ph, start, round, opts)
			if err != nil {
				return Result{}, err
			}

			// Barrier passed: apply the round's update atomically w.r.t.
			// subsequent reads — evaporate once, then deposit every path.
			if err = ph.Evaporate(opts.EvaporationRate); err != nil {
				return Result{}, err
			}
			var a int
			for a = 0; a < opts.Ants; a++ {
				if err = ph.Deposit(paths[a], lengths[a], opts.Q); err != nil {
					return Result{}, err
				}
			}

			// Round best: strict minimum, first occurrence wins ties.
			var (
				roundBest = math.Inf(1)
				roundIdx  = 0
			)
			for a = 0; a < opts.Ants; a++ {
				if lengths[a] < roundBest {
					roundBest = lengths[a]
					roundIdx = a
				}
			}

			// Emit progress before best-tracking, mirroring the modeled
			// order (log line first, then the best update).
			entry := ProgressEntry{
				Round:      round,
				Start:      start,
				Iteration:  iter,
				BestLength: roundBest,
				BestPath:   copyPath(paths[roundIdx]),
			}
			log = append(log, entry.String())
			if opts.OnProgress != nil {
				opts.OnProgress(entry)
			}

			if roundBest < bestLength {
				bestLength = roundBest
				bestPath = copyPath(paths[roundIdx])
			}

			round++
		}
	}

	return finishResult(locations, bestPath, bestLength, log), nil
}

// buildRoundPaths constructs opts.Ants independent paths from start against
// the current pheromone state. With Workers ≤ 1 the walks run sequentially;
// otherwise they fan out under an errgroup bounded by Workers. Either way,
// ant a of round r consumes RNG stream r×ants+a, so the outputs are
// identical regardless of scheduling.
//
// Complexity: O(ants × n²) work per round.
func buildRoundPaths(
	dist *matrix.Dense,
	ph *Pheromone,
	start, round int,
	opts Options,
) ([][]int, []float64, error) {
	var (
		paths   = make([][]int, opts.Ants)
		lengths = make([]float64, opts.Ants)
		base    = uint64(round) * uint64(opts.Ants) // first stream id of this round
	)

	if opts.Workers <= 1 {
		var (
			a   int
			err error
		)
		for a = 0; a < opts.Ants; a++ {
			paths[a], lengths[a], err = BuildPath(
				dist, ph, start, opts.Alpha, opts.Beta,
				streamRNG(opts.Seed, base+uint64(a)),
			)
			if err != nil {
				return nil, nil, err
			}
		}

		return paths, lengths, nil
	}

	// Parallel fan-out. Each goroutine writes only its own slot, and the
	// group wait is the read barrier for the round's update step.
	g := new(errgroup.Group)
	g.SetLimit(opts.Workers)
	for a := 0; a < opts.Ants; a++ {
		a := a
		g.Go(func() error {
			p, l, werr := BuildPath(
				dist, ph, start, opts.Alpha, opts.Beta,
				streamRNG(opts.Seed, base+uint64(a)),
			)
			if werr != nil {
				return werr
			}
			paths[a] = p
			lengths[a] = l

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return paths, lengths, nil
}

// finishResult translates the best internal permutation back to the caller's
// labeled Locations. A cancelled run may have no best yet (bestPath == nil);
// the zero-length slices keep the Result well-formed in that case.
//
// Complexity: O(n).
func finishResult(locations []Location, bestPath []int, bestLength float64, log []string) Result {
	visit := make([]Location, len(bestPath))
	var i int
	for i = 0; i < len(bestPath); i++ {
		visit[i] = locations[bestPath[i]]
	}

	return Result{
		BestTour:   bestPath,
		BestPath:   visit,
		BestLength: bestLength,
		Log:        log,
	}
}

// copyPath returns an independent copy of a path slice.
//
// Complexity: O(n).
func copyPath(path []int) []int {
	out := make([]int, len(path))
	copy(out, path)

	return out
}
