// Package antcolony is an in-memory ant colony optimization (ACO) engine
// for Traveling-Salesman-style tours over labeled 2-D points.
//
// 🐜 What is antcolony?
//
//	A small, deterministic, pure-Go solver that takes an ordered list of
//	labeled coordinates plus a parameter set, and iteratively constructs
//	tours with a colony of stochastic ants:
//		• Pheromone state: a directed n×n matrix, reinforced by good tours
//		• Transition rule: tau^alpha / distance^beta roulette selection
//		• Update rule: multiplicative retention + Q/length deposits
//		• Multi-start: every node serves as a starting point in turn
//
// ✨ Why choose antcolony?
//
//   - Deterministic – seeded RNG streams; identical runs for identical inputs
//   - Safe – sentinel errors, no panics on user input, no hidden logging
//   - Cancellable – context-aware driver, checked between rounds
//   - Parallel-ready – ants within a round fan out across workers
//
// Everything is organized under two subpackages:
//
//	aco/    — metric, pheromone, probability, path builder & run driver
//	matrix/ — dense float64 matrix backing pheromone and distance state
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four cities on a square; the colony converges to the boundary tour.
//
// See examples/ for a runnable demo on a real city list.
//
//	go get github.com/pkruczek/antcolony/aco
package antcolony
