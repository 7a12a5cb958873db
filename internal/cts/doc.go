// Package cts implements a continuous-time, stochastic, pair-based
// cellular automaton kernel.
//
// Cell states evolve through randomly-timed transitions defined on
// oriented pairs of adjacent cells rather than synchronous global
// updates. The package provides:
//
//   - [Table]: static lookup from a pair-state to its transition channels
//   - [Engine]: owns cell states, the link bookkeeping, the event queue
//     and the simulation clock
//   - [Topology]: the adjacency contract a lattice must satisfy
//
// Each active link carries an independent exponential clock. When a
// neighbouring transition changes a link's pair-state, its epoch counter
// is bumped and the pending event becomes stale; stale events are
// discarded lazily when popped. Because the exponential distribution is
// memoryless, re-drawing a waiting time on any state change does not
// bias the statistics.
//
// An Engine is single-threaded. Callers may read snapshots only between
// [Engine.RunUntil] calls; with a fixed seed, rule set and lattice, runs
// are bit-for-bit reproducible.
package cts
