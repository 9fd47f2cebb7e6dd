package pareto

import "github.com/arkturov/paretofront/point"

// Oracle classifies a Point in the domain as feasible (true) or
// infeasible (false). Implementations MUST be monotone: if
// oracle(p) == (true, nil) and p ≤ q componentwise, then oracle(q) must
// also be (true, nil). Enumerate's behavior is undefined if this
// contract is violated.
//
// Oracle may return a non-nil error for any reason (e.g. the callable it
// wraps failed); Enumerate propagates it unchanged, wrapped with the
// probed Point for context, and aborts with no partial result.
type Oracle func(point.Point) (bool, error)

// Option configures optional behavior of Enumerate. No option changes
// the set of points Enumerate returns for a conforming oracle; a
// WithOracleCallLimit below the number of calls the enumeration needs
// makes Enumerate fail with ErrCallBudgetExceeded instead.
type Option func(*config)

type config struct {
	callLimit int
	recorder  func(p point.Point, feasible bool)
}

func defaultConfig() config {
	return config{
		callLimit: 0,
		recorder:  nil,
	}
}

// WithOracleCallLimit caps the number of oracle calls Enumerate and its
// descent passes may issue before failing with ErrCallBudgetExceeded.
// n <= 0 means unlimited (the default). The limit applies to every
// oracle, monotone or not: with n below the number of calls an
// enumeration needs, Enumerate fails even for a conforming oracle.
func WithOracleCallLimit(n int) Option {
	return func(c *config) {
		c.callLimit = n
	}
}

// WithCallRecorder installs fn to be invoked once per actual oracle call
// issued by Enumerate (including calls made during descent), with the
// probed Point and the oracle's answer. Points deduced from the
// negative-result buffer without consulting the oracle are not reported.
// Intended for diagnostics and for property-based tests asserting that
// no two oracle calls ever probe the same point, or a point whose
// answer already follows from an earlier one, without instrumenting the
// oracle itself.
func WithCallRecorder(fn func(p point.Point, feasible bool)) Option {
	return func(c *config) {
		c.recorder = fn
	}
}
