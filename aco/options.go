// Package aco - run configuration.
//
// Options follows the functional-options pattern: start from
// DefaultOptions() and override with With* setters, or fill the struct
// directly. Validation happens once, inside Run — setters never panic.
//
// Recommended ranges (mirrors the tuning form this engine is driven by;
// only the hard bounds below are enforced as errors):
//
//	Ants            1–100   (default 50)
//	Iterations      1–250   (default 125)
//	Alpha, Beta     0.1–2.0 (default 1.0; any real exponent is accepted)
//	EvaporationRate [0,1]   (default 0.5; retention factor, see below)
//	Q               1–10    (default 1.0; any non-negative value accepted)
package aco

// Options configures one optimization run.
//
// EvaporationRate deliberately keeps the semantics of the system this engine
// models: it is the multiplier applied to every pheromone entry each round —
// a *retention* factor, not a decay fraction. 1.0 means no evaporation at
// all; 0.0 wipes the matrix every round.
type Options struct {
	// Ants is the number of independent paths built per round. Must be ≥ 1.
	Ants int

	// Iterations is the number of rounds performed per starting point;
	// the driver runs n×Iterations rounds in total. Must be ≥ 1.
	Iterations int

	// Alpha weights pheromone influence in the transition probability.
	Alpha float64

	// Beta weights (inverse) distance influence in the transition probability.
	Beta float64

	// EvaporationRate is the per-round retention multiplier in [0,1].
	EvaporationRate float64

	// Q is the deposit constant: each path adds Q/length to its arcs. Must be ≥ 0.
	Q float64

	// Metric selects the distance policy (MetricFast or MetricAccurate).
	Metric Metric

	// Seed drives all randomness. 0 selects a fixed default stream, so the
	// zero value is still fully deterministic.
	Seed int64

	// Workers bounds the number of concurrent ant walks within one round.
	// 0 or 1 means sequential. Results are identical for any value:
	// per-ant RNG streams are derived from Seed, not from scheduling.
	Workers int

	// OnProgress, when non-nil, receives one entry per completed round, in
	// round order, synchronously between the round barrier and the next
	// round. The entry's path slice is owned by the callee.
	OnProgress ProgressFunc
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithAnts sets the colony size.
func WithAnts(ants int) Option {
	return func(o *Options) { o.Ants = ants }
}

// WithIterations sets the per-start round count.
func WithIterations(iterations int) Option {
	return func(o *Options) { o.Iterations = iterations }
}

// WithWeights sets the pheromone (alpha) and distance (beta) exponents.
func WithWeights(alpha, beta float64) Option {
	return func(o *Options) {
		o.Alpha = alpha
		o.Beta = beta
	}
}

// WithEvaporationRate sets the per-round retention multiplier (see Options).
func WithEvaporationRate(rate float64) Option {
	return func(o *Options) { o.EvaporationRate = rate }
}

// WithQ sets the deposit constant.
func WithQ(q float64) Option {
	return func(o *Options) { o.Q = q }
}

// WithMetric sets the distance policy.
func WithMetric(m Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// WithSeed fixes the RNG seed; 0 selects the default deterministic stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers bounds concurrent ant walks per round; 0 or 1 is sequential.
func WithWorkers(workers int) Option {
	return func(o *Options) { o.Workers = workers }
}

// WithProgress installs a per-round progress hook.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) { o.OnProgress = fn }
}

// DefaultOptions returns an Options value with the engine's defaults
// (the initial values of the tuning form this engine is driven by).
// Apply overrides and hand the result to Run.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		Ants:            50,
		Iterations:      125,
		Alpha:           1.0,
		Beta:            1.0,
		EvaporationRate: 0.5,
		Q:               1.0,
		Metric:          MetricFast,
		Seed:            0,
		Workers:         1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// validateOptions checks internal consistency of Options without referencing
// the instance. Alpha and Beta are free real exponents — not range-checked.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.Ants < 1 {
		return ErrBadAnts
	}
	if o.Iterations < 1 {
		return ErrBadIterations
	}
	// The retention factor must stay in [0,1] to keep every pheromone entry
	// non-negative under any evaporate/deposit sequence.
	if o.EvaporationRate < 0 || o.EvaporationRate > 1 {
		return ErrBadEvaporation
	}
	if o.Q < 0 {
		return ErrBadQ
	}
	if !validMetric(o.Metric) {
		return ErrBadMetric
	}
	if o.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}
