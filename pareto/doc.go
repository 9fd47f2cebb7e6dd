// Package pareto enumerates the complete Pareto front of a
// multi-objective optimization problem whose objective values are
// integers lying in bounded, finite ranges.
//
// 🚀 What is pareto?
//
//	A small, synchronous library that finds every minimal feasible point
//	of a monotone integer feasibility oracle, without ever asking the
//	oracle a question whose answer is already implied by monotonicity:
//
//	  • Dominance primitives (point)    — componentwise ≤ / < on integer vectors
//	  • Antichain maintenance (antichain) — the cover / negative-buffer abstraction
//	  • Descent localization (descent)  — binary search a witness down to a Pareto point
//	  • Enumeration (this package)      — the driving loop tying the above together
//
// ✨ Why choose pareto?
//   - Non-redundant   — never re-queries a point whose feasibility
//     already follows from an earlier answer and the monotonicity
//     contract (see Oracle's doc comment).
//   - Deterministic   — a deterministic oracle yields a deterministic
//     call sequence; no goroutines, no scheduling nondeterminism.
//   - Pure Go         — no cgo; the algorithmic core depends only on
//     the standard library.
//
// The caller supplies a feasibility oracle Oracle and a Bounds (from the
// point package) describing the domain; Enumerate returns the Pareto
// front as an unordered slice of point.Point.
//
// Quick example:
//
//	front, err := pareto.Enumerate(
//	    func(p point.Point) (bool, error) { return p[0]+p[1] >= 0, nil },
//	    point.Bounds{{Lo: -3, Hi: 3}, {Lo: -3, Hi: 3}},
//	)
//
// Complexity:
//   - Each discovered Pareto point costs at most
//     Σ_i ⌈log2(hi_i - lo_i + 1)⌉ oracle calls for its descent, minus any
//     pruned by the negative-result buffer.
//   - The driving loop's cover-refinement step is O(d) new candidates
//     per discovered point, each re-cleaned in O(|S|²).
//
// Errors:
//   - ErrInvalidBounds      some coordinate has Lo > Hi.
//   - ErrShapeMismatch      oracle probed with a mismatched-length Point.
//   - ErrCallBudgetExceeded WithOracleCallLimit's budget was exhausted.
//   - any error Oracle itself returns, wrapped with the probed Point.
//
// Functions:
//   - Enumerate(oracle Oracle, bounds point.Bounds, opts ...Option) ([]point.Point, error)
//   - WithOracleCallLimit(n int) Option
//   - WithCallRecorder(fn func(point.Point, bool)) Option
package pareto
