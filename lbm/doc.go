// Package lbm implements a D2Q9 lattice-Boltzmann solver for 2D channel flow
// around an obstacle.
//
// # Reading Guide
//
// Start with these three files to understand the numerical kernel:
//   - lattice.go: the D2Q9 discrete velocity set, weights, and direction groups
//   - solver.go: the per-iteration phase sequence and buffer ownership
//   - boundary.go: inflow, outflow, and obstacle bounce-back corrections
//
// # Architecture
//
// The solver marches a population field f[i,x,y] (direction i, cell (x,y))
// through alternating collision and streaming phases. Each iteration runs a
// fixed sequence:
//
//	outflow → macroscopic → inflow (density reconstruction) → equilibrium →
//	inflow (population correction) → collision → obstacle bounce-back → streaming
//
// Macroscopic density and velocity are recomputed every iteration from the
// populations and handed to an optional Probe at a configured cadence; the
// probe (for example render.Heatmap) is a read-only side channel and has no
// influence on the solve.
//
// Phases never read and write the same buffer: the solver ping-pongs between a
// current and a staging population array, and every phase is a full-grid
// barrier before the next begins. The bulk phases sweep columns across a small
// worker pool; boundary corrections touch single columns and run serially.
//
// # Extension points
//
//   - Shape: obstacle geometry as a per-cell predicate (ellipse, cylinder,
//     or any ShapeFunc)
//   - Probe: consumer of per-cadence (iteration, density, velocity) snapshots
package lbm
