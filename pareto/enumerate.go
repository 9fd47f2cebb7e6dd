package pareto

import (
	"fmt"

	"github.com/arkturov/paretofront/antichain"
	"github.com/arkturov/paretofront/descent"
	"github.com/arkturov/paretofront/point"
)

// Enumerate returns the complete Pareto front of oracle over the domain
// described by bounds: the set of minimal points p with oracle(p) true
// and no p' < p also feasible. Order of the returned points is
// unspecified.
//
// Enumerate drives three private structures for the duration of the
// call:
//   - the co-Pareto cover, an antichain of upper witnesses guaranteed to
//     dominate every undiscovered Pareto point, seeded with the domain's
//     top corner;
//   - the negative-result buffer, maximal known-infeasible points,
//     consulted before every oracle call so no deducible answer is
//     re-queried;
//   - the result, append-only.
//
// Fails with ErrInvalidBounds if any coordinate has Lo > Hi. Any error
// returned by oracle aborts enumeration immediately and is propagated
// (wrapped with the probed Point); no partial result is returned.
func Enumerate(oracle Oracle, bounds point.Bounds, opts ...Option) ([]point.Point, error) {
	// 1. Validate the domain.
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	// 2. Apply options.
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var calls int
	countingOracle := func(p point.Point) (bool, error) {
		if cfg.callLimit > 0 && calls >= cfg.callLimit {
			return false, ErrCallBudgetExceeded
		}
		calls++

		return oracle(p)
	}

	// 3. Seed the cover with the domain's top corner and start with an
	// empty negative buffer and result.
	neg := antichain.NewSet(point.Leq)
	cover := []point.Point{bounds.Top()}

	var result []point.Point

	// 4. Drain the cover: test its first witness, deduce or query, then
	// either drop it, localize it to a Pareto point and refine, or
	// record it as infeasible.
	for len(cover) > 0 {
		t := cover[0]

		deduced, err := neg.Contains(t)
		if err != nil {
			return nil, err
		}
		if deduced {
			cover = cover[1:]
			continue
		}

		feasible, err := countingOracle(t.Clone())
		if err != nil {
			return nil, fmt.Errorf("pareto: oracle(%v): %w", t, err)
		}
		if cfg.recorder != nil {
			cfg.recorder(t.Clone(), feasible)
		}

		if !feasible {
			if err := neg.Insert(t.Clone()); err != nil {
				return nil, err
			}
			cover = cover[1:]
			continue
		}

		x, err := descent.Localize(countingOracle, neg, t, bounds, cfg.recorder)
		if err != nil {
			return nil, err
		}
		result = append(result, x)

		cover, err = refine(cover, x, bounds)
		if err != nil {
			return nil, err
		}
		cover, err = antichain.Clean(cover)
		if err != nil {
			return nil, err
		}
	}

	// 5. The cover is empty: every undiscovered region has been
	// accounted for, so result is the complete front.
	return result, nil
}

// refine rebuilds the cover after discovering Pareto point x: every
// member dominated by x (x ≤ s) is replaced by up to d shrunk
// descendants — one per coordinate i with x[i] > bounds[i].Lo, each s
// with coordinate i lowered to x[i]-1. This covers exactly the region
// below s that x does not already dominate, so nothing reachable is
// lost and nothing already known feasible is revisited. Members not
// dominated by x are kept unchanged. The result is not yet cleaned to an
// antichain; callers pass it through antichain.Clean.
func refine(cover []point.Point, x point.Point, bounds point.Bounds) ([]point.Point, error) {
	next := make([]point.Point, 0, len(cover))

	for _, s := range cover {
		dominated, err := point.Leq(x, s)
		if err != nil {
			return nil, err
		}
		if !dominated {
			next = append(next, s)
			continue
		}

		for i := range s {
			if x[i] > bounds[i].Lo {
				child := s.Clone()
				child[i] = x[i] - 1
				next = append(next, child)
			}
		}
	}

	return next, nil
}
