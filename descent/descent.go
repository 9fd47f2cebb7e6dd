// Package descent implements the per-coordinate binary-search reduction
// of a feasible witness to a minimal feasible (Pareto) point.
//
// Given t with f(t) = true, Localize pushes each coordinate down to the
// smallest value still feasible, holding the other coordinates fixed at
// their already-minimized values, consulting the shared negative-result
// buffer before every oracle call so no deducible answer is re-queried.
package descent

import (
	"fmt"

	"github.com/arkturov/paretofront/antichain"
	"github.com/arkturov/paretofront/point"
)

// Recorder, if non-nil, is invoked once per actual oracle call (not per
// answer deduced from the negative buffer) with the probed point and the
// oracle's answer. It exists purely for diagnostics and the
// property-based non-redundancy harness; Localize's return value does
// not depend on it.
type Recorder func(p point.Point, feasible bool)

// localizer encapsulates state during a single descent: the oracle it
// consults, the negative-result buffer it reads and feeds, the working
// point being reduced coordinate by coordinate, and the domain bounding
// it. A dedicated struct keeps these dependencies explicit instead of
// threading five parameters through a closure chain, and keeps the
// per-coordinate search loop free of captured mutable state.
type localizer struct {
	oracle func(point.Point) (bool, error)
	neg    *antichain.Set
	bounds point.Bounds
	rec    Recorder
	x      point.Point
}

// Localize reduces the feasible witness t to a componentwise-minimal
// feasible point x ≤ t: for each coordinate i in ascending index order,
// binary-searches the smallest value v ∈ [bounds[i].Lo, x[i]] for which
// f(x with x[i] := v) holds, then fixes x[i] = v before moving to i+1.
//
// neg is the enumeration driver's shared negative-result buffer: it is
// consulted before every oracle call (skipping calls on deducibly
// infeasible points) and updated with every negative answer Localize
// itself discovers, so later descents and the driver's own cover
// refinement benefit from what this descent learns.
//
// oracle errors are wrapped with the probed point for context and
// propagated; neg's own errors (shape mismatches) propagate unchanged.
func Localize(oracle func(point.Point) (bool, error), neg *antichain.Set, t point.Point, bounds point.Bounds, rec Recorder) (point.Point, error) {
	l := &localizer{
		oracle: oracle,
		neg:    neg,
		bounds: bounds,
		rec:    rec,
		x:      t.Clone(),
	}

	return l.run()
}

// run drives the per-coordinate reduction described by Localize.
func (l *localizer) run() (point.Point, error) {
	// 1. Walk coordinates in ascending index order; earlier coordinates
	//    stay fixed at their reduced value while later ones search.
	for i := range l.x {
		// 2. Binary-search [bounds[i].Lo, x[i]] for the smallest feasible
		//    value, holding every other coordinate at its current value.
		min := l.bounds[i].Lo
		max := l.x[i] + 1

		for max-min > 1 {
			mid := min + (max-min-1)/2

			// 3. Probe the midpoint with the coordinate tentatively set.
			l.x[i] = mid
			feasible, err := l.probe(l.x)
			if err != nil {
				return nil, err
			}

			// 4. Narrow the search window from the probe's answer.
			if feasible {
				max = mid + 1
			} else {
				min = mid + 1
			}
		}

		// 5. Fix this coordinate at the reduced value before moving on.
		l.x[i] = min
	}

	return l.x, nil
}

// probe answers whether candidate is feasible, preferring a deduction
// from neg over an oracle call. On a fresh negative answer, candidate is
// recorded into neg so no later probe — in this descent or any
// subsequent one sharing neg — repeats the query.
func (l *localizer) probe(candidate point.Point) (bool, error) {
	deducedInfeasible, err := l.neg.Contains(candidate)
	if err != nil {
		return false, err
	}
	if deducedInfeasible {
		return false, nil
	}

	feasible, err := l.oracle(candidate.Clone())
	if err != nil {
		return false, fmt.Errorf("descent: oracle(%v): %w", candidate, err)
	}

	if l.rec != nil {
		l.rec(candidate.Clone(), feasible)
	}

	if !feasible {
		if err := l.neg.Insert(candidate.Clone()); err != nil {
			return false, err
		}
	}

	return feasible, nil
}
