// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the determinant family.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves derived values.
//
// Design goals:
//   - Deterministic behavior: parallel runs sum partial terms in index order,
//     so the result never depends on goroutine scheduling for integer T.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matrix

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelThreshold is the smallest n whose first-row expansion is
	// fanned out across goroutines. Below it the recursion is too cheap to
	// amortize scheduling.
	DefaultParallelThreshold = 8

	// DefaultWorkers = 0 means "use runtime.GOMAXPROCS(0)" at resolution time.
	DefaultWorkers = 0

	// DefaultParallel enables fan-out for n >= threshold.
	DefaultParallel = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "matrix: WithWorkers: k must be >= 1"
	panicThresholdInvalid = "matrix: WithParallelThreshold: n must be >= 2"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	parallel  bool // DefaultParallel
	threshold int  // >= 2; DefaultParallelThreshold
	workers   int  // >= 1 after finalize; DefaultWorkers resolves to GOMAXPROCS
}

// WithWorkers bounds the number of goroutines evaluating expansion terms.
// Panics when k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = k }
}

// WithParallelThreshold sets the smallest size that is expanded in parallel.
// Panics when n < 2 (a 1×1 determinant has no terms to distribute).
func WithParallelThreshold(n int) Option {
	if n < 2 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = n }
}

// WithParallel enables fan-out for sizes at or above the threshold (default).
func WithParallel() Option {
	return func(o *Options) { o.parallel = true }
}

// WithSequential disables fan-out entirely.
func WithSequential() Option {
	return func(o *Options) { o.parallel = false }
}

// gatherOptions applies user setters on top of defaults (last writer wins)
// and resolves derived values.
func gatherOptions(user ...Option) Options {
	o := Options{
		parallel:  DefaultParallel,
		threshold: DefaultParallelThreshold,
		workers:   DefaultWorkers,
	}
	for _, set := range user {
		set(&o)
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// fanOut reports whether an n×n expansion should run in parallel.
func (o Options) fanOut(n int) bool {
	return o.parallel && o.workers > 1 && n >= o.threshold
}
