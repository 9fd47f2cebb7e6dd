// Package point defines the integer vector type at the core of Pareto
// front enumeration, plus the dominance orders it is compared under.
//
// What:
//
//   - Point: a fixed-length tuple of signed integers, one coordinate per
//     objective.
//   - Bounds: a length-d sequence of [Lo, Hi] intervals describing the
//     product domain a Point may range over.
//   - Leq / StrictLess: the componentwise ≤ and < orders Points are
//     compared under everywhere else in this module.
//
// Why:
//   - Every other package (antichain, descent, pareto) compares Points
//     under these two orders in its innermost loop; centralizing them
//     here keeps the comparison semantics — and the short-circuit
//     behavior on the first counterexample coordinate — in one place.
//
// Complexity:
//   - Leq, StrictLess: O(d) worst case, O(1) best case (the first
//     coordinate already has a_i > b_i).
//
// Errors:
//   - ErrShapeMismatch  operands have different lengths.
//   - ErrInvalidBounds  some Bounds[i].Lo > Bounds[i].Hi.
//
// Functions:
//   - Leq(a, b Point) (bool, error)
//   - StrictLess(a, b Point) (bool, error)
//   - Bounds.Validate() error
//   - Bounds.Top() Point        — the coordinatewise-maximal point (all Hi)
//   - Bounds.Bottom() Point     — the coordinatewise-minimal point (all Lo)
//   - Bounds.Dim() int
package point
