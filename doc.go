// Package paretofront enumerates the complete Pareto front of a
// monotone integer feasibility oracle over a bounded product-of-intervals
// domain.
//
// 🚀 What is paretofront?
//
//	A small, synchronous library that finds every minimal feasible point
//	of a monotone predicate f without ever asking f a question whose
//	answer already follows from an earlier one:
//
//	  • Dominance primitives (point)     — componentwise ≤ / < on integer vectors
//	  • Antichain maintenance (antichain) — the cover / negative-buffer abstraction
//	  • Descent localization (descent)    — binary search a witness down to a Pareto point
//	  • Enumeration (pareto)              — the driving loop and public Enumerate API
//
// ✨ Why choose paretofront?
//
//   - Non-redundant — never re-queries a point whose feasibility already
//     follows from an earlier answer and the oracle's monotonicity contract.
//   - Deterministic — a deterministic oracle yields a deterministic call
//     sequence; no goroutines, no scheduling nondeterminism.
//   - Pure Go       — the algorithmic core depends only on the standard
//     library.
//
// Quick example:
//
//	front, err := pareto.Enumerate(
//	    func(p point.Point) (bool, error) { return p[0]+p[1] >= 0, nil },
//	    point.Bounds{{Lo: -3, Hi: 3}, {Lo: -3, Hi: 3}},
//	)
//
//	go get github.com/arkturov/paretofront
package paretofront
