package pareto_test

import (
	"testing"

	"github.com/arkturov/paretofront/pareto"
	"github.com/arkturov/paretofront/point"
)

var benchSinkFront []point.Point

// BenchmarkEnumerate_SumThreshold measures a full enumeration of a
// single-facet sum-threshold front across a moderately high-dimensional
// domain, the case where cover refinement does the most work.
func BenchmarkEnumerate_SumThreshold(b *testing.B) {
	const d = 6
	bounds := make(point.Bounds, d)
	for i := range bounds {
		bounds[i] = point.Interval{Lo: 0, Hi: 9}
	}
	oracle := func(p point.Point) (bool, error) {
		sum := 0
		for _, v := range p {
			sum += v
		}

		return sum >= 30, nil
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkFront, _ = pareto.Enumerate(oracle, bounds)
	}
}

// BenchmarkEnumerate_SingleMinimum measures the cheap case: a single
// Pareto point, whose refinement leaves the cover only two infeasible
// descendants of the top corner.
func BenchmarkEnumerate_SingleMinimum(b *testing.B) {
	bounds := point.Bounds{{Lo: 0, Hi: 1000}, {Lo: 0, Hi: 1000}}
	oracle := func(p point.Point) (bool, error) {
		return p[0] >= 500 && p[1] >= 500, nil
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkFront, _ = pareto.Enumerate(oracle, bounds)
	}
}
