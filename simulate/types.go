// Package simulate provides tunable options, results and error definitions
// for running a guard patrol to completion.
package simulate

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/patrol/grid"
)

// Sentinel errors for Run.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("simulate: grid is nil")

	// ErrNoGuard is returned when the grid's guard has already left the map.
	ErrNoGuard = errors.New("simulate: grid has no guard on the map")
)

// Verdict classifies how a patrol ended.
type Verdict uint8

const (
	// Terminated means the guard walked off the map.
	Terminated Verdict = iota
	// Looping means the guard re-entered a (position, heading) state.
	Looping
)

func (v Verdict) String() string {
	if v == Looping {
		return "looping"
	}
	return "terminated"
}

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked before every step.
	Ctx context.Context

	// OnStep is called after every tick with the state the guard was in
	// before the tick and what the tick did.
	OnStep func(before grid.State, out grid.Outcome)
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func(grid.State, grid.Outcome) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a callback run after every tick.
func WithOnStep(fn func(before grid.State, out grid.Outcome)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Result holds the outcome of a patrol:
//   - Verdict: Terminated or Looping.
//   - Positions: distinct squares visited, headings discarded. Only filled
//     for Terminated runs; a looping run carries no positional data.
//   - States: distinct (position, heading) states recorded.
//   - Steps: number of ticks taken.
type Result struct {
	Verdict   Verdict
	Positions map[grid.Position]struct{}
	States    int
	Steps     int
}

// Distinct returns the number of distinct positions visited.
func (r *Result) Distinct() int {
	return len(r.Positions)
}

// Visited reports whether p was visited. Suitable as a grid.Render mark.
func (r *Result) Visited(p grid.Position) bool {
	_, ok := r.Positions[p]
	return ok
}

// Sorted returns the visited positions in row-major order.
func (r *Result) Sorted() []grid.Position {
	out := make([]grid.Position, 0, len(r.Positions))
	for p := range r.Positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})

	return out
}
