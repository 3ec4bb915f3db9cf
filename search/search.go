// Package search counts the single-square obstructions that trap a guard in
// a loop.
//
// Every candidate square is tried on its own Clone of the template grid:
// place an obstruction there, run simulate.Run, and record whether the run
// loops. Candidates are independent, so they run on a bounded worker pool
// and the result does not depend on evaluation order or worker count.
//
// Candidates are normally the squares visited by the unmodified patrol
// (see CandidatesFrom). An obstruction on a square the guard never enters
// can not change its path, so no other square can produce a loop.
//
// The guard's own starting square is refused by grid.Grid.Obstruct and is
// skipped, never counted.
//
// Complexity:
//
//   - Time:   O(C×W×H) total, spread over Workers goroutines (C = #candidates).
//   - Memory: O(Workers×W×H) for the live clones and visited tables.
package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/simulate"
)

// CandidatesFrom returns the squares visited by an unmodified run in
// row-major order. A Looping result has no visited squares.
func CandidatesFrom(res *simulate.Result) []grid.Position {
	if res == nil {
		return nil
	}
	return res.Sorted()
}

// Count returns how many candidates trap the guard in a loop when turned
// into an obstruction. Candidates are expected to be distinct.
// Returns ErrGridNil, simulate.ErrNoGuard, ErrOptionViolation, or the
// context error on cancellation.
func Count(template *grid.Grid, candidates []grid.Position, opts ...Option) (int, error) {
	loops, err := evaluate(template, candidates, opts)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, l := range loops {
		if l {
			n++
		}
	}

	return n, nil
}

// Positions is like Count but returns the looping candidates themselves, in
// the order they were given.
func Positions(template *grid.Grid, candidates []grid.Position, opts ...Option) ([]grid.Position, error) {
	loops, err := evaluate(template, candidates, opts)
	if err != nil {
		return nil, err
	}
	var out []grid.Position
	for i, l := range loops {
		if l {
			out = append(out, candidates[i])
		}
	}

	return out, nil
}

// evaluate runs every candidate and reports, per index, whether it loops.
// Each goroutine writes only its own slot.
func evaluate(template *grid.Grid, candidates []grid.Position, opts []Option) ([]bool, error) {
	if template == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, ok := template.Guard(); !ok {
		return nil, simulate.ErrNoGuard
	}

	loops := make([]bool, len(candidates))
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for i, p := range candidates {
		g.Go(func() error {
			l, err := trapped(ctx, template, p)
			loops[i] = l
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return loops, nil
}

// trapped reports whether obstructing p on a private copy of template makes
// the guard loop.
func trapped(ctx context.Context, template *grid.Grid, p grid.Position) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	g := template.Clone()
	if !g.Obstruct(p) {
		return false, nil
	}
	res, err := simulate.Run(g, simulate.WithContext(ctx))
	if err != nil {
		return false, err
	}

	return res.Verdict == simulate.Looping, nil
}
