// Package antichain implements the antichain maintenance behind two
// structures named in the enumeration algorithm: the negative-result
// buffer N (a Set) and the cleaning step applied to the co-Pareto
// cover S (Clean, run over the plain slice the enumeration driver keeps
// S in).
//
// What:
//
//   - Set: a collection of point.Point values maintained as an antichain
//     under a caller-supplied dominance Order. Insert prunes every stored
//     element the new element subsumes; it does not check whether the new
//     element is itself subsumed. Contains answers whether some stored
//     element dominates a query point.
//   - Clean: a standalone function reducing an arbitrary slice of Points
//     to its maximal antichain under strict <, without mutating or
//     requiring a Set. It compares with point.StrictLess directly rather
//     than through an Order.
//
// Why:
//   - The negative buffer N (antichain under ≤, keeps only maximal
//     known-infeasible witnesses) and the co-Pareto cover S (antichain
//     under <) are the same maintenance problem with a different order
//     predicate; keeping both in one package keeps their O(n²) pruning
//     side by side.
//
// Complexity:
//   - Clean: O(n²) in the length of the input slice — acceptable because
//     the antichains this package maintains stay small relative to the
//     domain they cover.
//   - Set.Insert, Set.Contains: O(n) per call against the current Set
//     size, since the internal representation is a flat slice. A
//     trie-backed representation keyed on coordinate prefixes would only
//     change this asymptotically, not the external contract, and has no
//     natural encoding of componentwise ≤/< over signed integers.
//
// Errors:
//   - point.ErrShapeMismatch propagates from Order whenever points of
//     mismatched length are compared.
//
// Functions:
//   - Clean(pts []point.Point) ([]point.Point, error)
//   - NewSet(order Order) *Set
//   - (*Set) Insert(p point.Point) error
//   - (*Set) Contains(p point.Point) (bool, error)
//   - (*Set) Points() []point.Point
package antichain
