package pareto

import (
	"errors"

	"github.com/arkturov/paretofront/point"
)

// ErrInvalidBounds indicates some coordinate of the supplied Bounds had
// Lo > Hi, making the domain empty. Identical to point.ErrInvalidBounds;
// exposed under this package too so callers need not import point just
// to check errors.Is.
var ErrInvalidBounds = point.ErrInvalidBounds

// ErrShapeMismatch indicates the oracle was probed with a point whose
// length did not match the supplied Bounds. Identical to
// point.ErrShapeMismatch.
var ErrShapeMismatch = point.ErrShapeMismatch

// ErrCallBudgetExceeded indicates WithOracleCallLimit's budget was
// exhausted before enumeration finished. The limit is a defensive valve,
// not part of the algorithm's correctness contract: it caps the number
// of oracle calls, and any oracle, monotone or not, hits it when the
// limit is below the number of calls the enumeration needs.
var ErrCallBudgetExceeded = errors.New("pareto: oracle call budget exceeded")
