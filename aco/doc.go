// Package aco provides an ant colony optimization solver for
// Traveling-Salesman-style tours over labeled coordinates.
//
// The engine is built from small, testable parts:
//
//   - Distance: planar-approximate (fast) or geodesic (accurate) kilometers.
//   - Pheromone: a directed n×n desirability matrix, reinforced by tours.
//   - BuildPath: one ant's stochastic walk guided by tau^alpha / d^beta.
//   - Run: the multi-start driver — every node serves as a starting point,
//     sharing one pheromone matrix for the whole run.
//
// Semantics follow the classic formulation with two deliberate quirks kept
// from the system this package models:
//
//   - EvaporationRate is a retention multiplier: 1.0 keeps all pheromone,
//     0.0 wipes the matrix.
//   - Deposits always close the tour (last→first arc) even though reported
//     path lengths cover only the n−1 traversed edges.
//
// Use this package when you need a progressively improving heuristic tour
// with live per-round progress, determinism under a fixed seed, and
// cancellation between rounds (n·iterations·ants work is otherwise unbounded).
package aco
