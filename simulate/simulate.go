// Package simulate drives a grid.Grid until the guard either leaves the map
// or repeats a (position, heading) state.
//
// Before every tick the current state is recorded; recording a state twice
// classifies the run as Looping and stops it at once. A tick that reports
// grid.Exited classifies it as Terminated. The state space holds
// width×height×4 states, so a run takes at most that many ticks.
//
// Complexity:
//
//   - Time:   O(W×H)
//   - Memory: O(W×H) for the dense visited-state table.
package simulate

import (
	"github.com/katalvlaran/patrol/grid"
)

// walker encapsulates mutable run state.
type walker struct {
	grid  *grid.Grid
	opts  Options
	seen  []bool // indexed by stateIndex
	width int
	res   *Result
}

// Run drives g to completion and classifies the patrol.
// Run mutates g; pass a Clone when the layout is needed afterwards.
// Returns ErrGridNil, ErrNoGuard, or the context error on cancellation.
func Run(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if _, ok := g.Guard(); !ok {
		return nil, ErrNoGuard
	}

	w, h := g.Width(), g.Height()
	wk := &walker{
		grid:  g,
		opts:  o,
		seen:  make([]bool, w*h*4),
		width: w,
		res:   &Result{},
	}

	return wk.res, wk.loop()
}

// stateIndex packs a state into the dense table: (y*width+x)*4 + heading.
func (w *walker) stateIndex(s grid.State) int {
	return (s.Pos.Y*w.width+s.Pos.X)*4 + int(s.Heading)
}

// loop ticks until exit, loop or cancellation.
func (w *walker) loop() error {
	for {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		s, _ := w.grid.Guard()
		idx := w.stateIndex(s)
		if w.seen[idx] {
			w.res.Verdict = Looping
			return nil
		}
		w.seen[idx] = true
		w.res.States++

		out := w.grid.Step()
		w.res.Steps++
		w.opts.OnStep(s, out)

		if out == grid.Exited {
			w.res.Verdict = Terminated
			w.res.Positions = w.positions()
			return nil
		}
	}
}

// positions collapses the recorded states to distinct squares.
func (w *walker) positions() map[grid.Position]struct{} {
	out := make(map[grid.Position]struct{}, w.res.States)
	for idx := 0; idx < len(w.seen); idx += 4 {
		if w.seen[idx] || w.seen[idx+1] || w.seen[idx+2] || w.seen[idx+3] {
			out[w.grid.Coordinate(idx/4)] = struct{}{}
		}
	}

	return out
}
