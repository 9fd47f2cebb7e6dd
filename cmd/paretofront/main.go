// Command paretofront is a self-test harness, not part of the library's
// importable package surface: it generates random monotone oracles
// backed by a hidden generating antichain, runs Enumerate against each,
// and checks that the recovered front matches the hidden antichain
// exactly and that no point is passed to the oracle twice. It does not
// check whether a query's answer already followed from earlier answers.
// Exit status is 0 if every trial passes, 1 otherwise.
//
// Usage:
//
//	paretofront [seed]
//
// With no argument the seed is drawn from the current time, so repeated
// runs explore different domains; pass an integer to reproduce a run.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/arkturov/paretofront/antichain"
	"github.com/arkturov/paretofront/pareto"
	"github.com/arkturov/paretofront/point"
)

const trials = 50

func main() {
	seed := time.Now().UnixNano()
	if len(os.Args) > 1 {
		parsed, err := strconv.ParseInt(os.Args[1], 10, 64)
		if err != nil {
			color.Red("paretofront: invalid seed %q: %v", os.Args[1], err)
			os.Exit(1)
		}
		seed = parsed
	}

	fmt.Printf("paretofront self-test, seed=%d, trials=%d\n", seed, trials)
	rng := rand.New(rand.NewSource(seed))

	failures := 0
	for trial := 0; trial < trials; trial++ {
		if err := runTrial(rng); err != nil {
			color.Red("FAIL  trial %3d: %v", trial, err)
			failures++
			continue
		}
		color.Green("PASS  trial %3d", trial)
	}

	if failures > 0 {
		color.Red("\n%d/%d trials failed", failures, trials)
		os.Exit(1)
	}
	color.Green("\nall %d trials passed", trials)
}

// runTrial builds a random bounded domain and a random generating
// antichain, enumerates against the antichain-backed oracle, and checks
// that no returned point is ≤ a point returned before it, that the
// recovered front exactly matches the generating antichain, that the
// instrumented oracle wrapper never sees the same point probed twice,
// and that a second run with a fresh oracle returns as many points as
// the first (the two fronts' contents are not compared).
func runTrial(rng *rand.Rand) error {
	d := 2 + rng.Intn(5)
	bounds := make(point.Bounds, d)
	for i := range bounds {
		width := 1 + rng.Intn(8)
		lo := rng.Intn(4)
		bounds[i] = point.Interval{Lo: lo, Hi: lo + width}
	}

	n := 1 + rng.Intn(10)
	raw := make([]point.Point, n)
	for i := range raw {
		p := make(point.Point, d)
		for j := range p {
			p[j] = bounds[j].Lo + rng.Intn(bounds[j].Hi-bounds[j].Lo+1)
		}
		raw[i] = p
	}
	generating, err := antichain.Clean(raw)
	if err != nil {
		return fmt.Errorf("building generating antichain: %w", err)
	}

	seen := antichain.NewSet(point.Leq)
	queried := make(map[string]bool)
	oracle := func(p point.Point) (bool, error) {
		key := fmt.Sprint(p)
		if queried[key] {
			return false, fmt.Errorf("oracle called twice on %v", p)
		}
		queried[key] = true

		for _, q := range generating {
			leq, err := point.Leq(q, p)
			if err != nil {
				return false, err
			}
			if leq {
				return true, nil
			}
		}

		return false, nil
	}

	front, err := pareto.Enumerate(oracle, bounds)
	if err != nil {
		return fmt.Errorf("Enumerate: %w", err)
	}

	for _, p := range front {
		contained, err := seen.Contains(p)
		if err != nil {
			return err
		}
		if contained {
			return fmt.Errorf("minimality violated: %v dominated by an earlier returned point", p)
		}
		if err := seen.Insert(p.Clone()); err != nil {
			return err
		}
	}

	if len(front) != len(generating) {
		return fmt.Errorf("recovered %d points, want %d matching the generating antichain", len(front), len(generating))
	}
	for _, g := range generating {
		found := false
		for _, p := range front {
			if g.Equal(p) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("generating point %v missing from recovered front", g)
		}
	}

	second, err := pareto.Enumerate(oracle2(generating), bounds)
	if err != nil {
		return fmt.Errorf("idempotence re-run: %w", err)
	}
	if len(second) != len(front) {
		return fmt.Errorf("idempotence violated: re-run returned %d points, first run returned %d", len(second), len(front))
	}

	return nil
}

func oracle2(generating []point.Point) func(point.Point) (bool, error) {
	return func(p point.Point) (bool, error) {
		for _, q := range generating {
			leq, err := point.Leq(q, p)
			if err != nil {
				return false, err
			}
			if leq {
				return true, nil
			}
		}

		return false, nil
	}
}
