package antichain

import "github.com/arkturov/paretofront/point"

// Order reports whether a is dominated by b under the relation the
// caller wants the antichain maintained under: point.StrictLess for a
// strict antichain, point.Leq for a ≤-antichain (the negative-result
// buffer). The co-Pareto cover's cleaning pass does not use a Set; it
// goes through Clean.
type Order func(a, b point.Point) (bool, error)

// Set is a collection of point.Point values maintained as an antichain
// under Order: inserting a new point removes every stored point the new
// one dominates. Set is not safe for concurrent use; callers own one Set
// per enumeration call, matching the single-call-private lifecycle of N
// and S described in the data model.
type Set struct {
	order Order
	items []point.Point
}

// NewSet returns an empty Set maintained under order.
func NewSet(order Order) *Set {
	return &Set{order: order}
}

// Len reports the number of points currently stored.
func (s *Set) Len() int {
	return len(s.items)
}

// Points returns the stored points. The returned slice aliases Set's
// internal storage and must not be mutated by the caller.
func (s *Set) Points() []point.Point {
	return s.items
}

// Contains reports whether some stored point q satisfies order(p, q) —
// i.e. p is dominated by a point already known to the Set, and is
// therefore deducible without consulting whatever oracle populated it.
func (s *Set) Contains(p point.Point) (bool, error) {
	for _, q := range s.items {
		dominated, err := s.order(p, q)
		if err != nil {
			return false, err
		}
		if dominated {
			return true, nil
		}
	}

	return false, nil
}

// Insert installs p, first discarding every stored point p subsumes
// (every q with order(q, p) true). Insert assumes the caller has already
// established p is not itself dominated by an existing member — callers
// achieve this by checking Contains(p) before every Insert; the descent
// and enumeration loops never insert a point without first failing that
// check.
func (s *Set) Insert(p point.Point) error {
	kept := s.items[:0]
	for _, q := range s.items {
		subsumed, err := s.order(q, p)
		if err != nil {
			return err
		}
		if !subsumed {
			kept = append(kept, q)
		}
	}
	s.items = append(kept, p)

	return nil
}

// Clean reduces pts to its maximal antichain under point.StrictLess: an
// element survives unless some other element of pts strictly dominates
// it. Duplicates are preserved — two equal points are never strictly
// less than one another, so both survive a pass; callers that require
// set semantics must deduplicate separately. In this system duplicates
// never arise among the co-Pareto cover's descendants, since refinement
// lowers a different coordinate for each sibling it produces, so no two
// siblings are ever identical.
//
// Complexity: O(n²) in len(pts).
func Clean(pts []point.Point) ([]point.Point, error) {
	out := make([]point.Point, 0, len(pts))

	for i, x := range pts {
		dominated := false
		for j, y := range pts {
			if i == j {
				continue
			}
			lt, err := point.StrictLess(x, y)
			if err != nil {
				return nil, err
			}
			if lt {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, x)
		}
	}

	return out, nil
}
