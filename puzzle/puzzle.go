// Package puzzle answers the two questions asked about a patrol layout:
// how many squares the guard covers before leaving, and how many single
// obstructions would keep it walking forever.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/search"
	"github.com/katalvlaran/patrol/simulate"
)

// ErrBaseRunLoops is returned when the unmodified layout already traps the
// guard; neither answer is defined for such input.
var ErrBaseRunLoops = errors.New("puzzle: unmodified patrol never leaves the map")

// Report carries both answers and the wall time spent on each.
type Report struct {
	Width, Height int

	// Visited is the number of distinct squares of the unmodified patrol.
	Visited     int
	VisitedTook time.Duration

	// Obstructions is the number of single squares that cause a loop.
	Obstructions     int
	ObstructionsTook time.Duration
}

// Visited returns the number of distinct squares the guard covers.
func Visited(input string) (int, error) {
	_, base, err := baseline(context.Background(), input)
	if err != nil {
		return 0, err
	}
	return base.Distinct(), nil
}

// Obstructions returns the number of squares that, obstructed on their own,
// trap the guard in a loop.
func Obstructions(input string, opts ...search.Option) (int, error) {
	template, base, err := baseline(context.Background(), input)
	if err != nil {
		return 0, err
	}
	return search.Count(template, search.CandidatesFrom(base), opts...)
}

// Solve parses input once and computes both answers. ctx bounds the whole
// computation; opts tune the obstruction search and may override ctx.
func Solve(ctx context.Context, input string, opts ...search.Option) (*Report, error) {
	start := time.Now()
	template, base, err := baseline(ctx, input)
	if err != nil {
		return nil, err
	}
	rep := &Report{
		Width:       template.Width(),
		Height:      template.Height(),
		Visited:     base.Distinct(),
		VisitedTook: time.Since(start),
	}

	start = time.Now()
	opts = append([]search.Option{search.WithContext(ctx)}, opts...)
	n, err := search.Count(template, search.CandidatesFrom(base), opts...)
	if err != nil {
		return nil, fmt.Errorf("puzzle: obstruction search: %w", err)
	}
	rep.Obstructions = n
	rep.ObstructionsTook = time.Since(start)

	return rep, nil
}

// baseline parses input and runs the unmodified patrol on a clone, returning
// the untouched template and the Terminated result.
func baseline(ctx context.Context, input string) (*grid.Grid, *simulate.Result, error) {
	template, err := grid.Parse(input)
	if err != nil {
		return nil, nil, err
	}
	res, err := simulate.Run(template.Clone(), simulate.WithContext(ctx))
	if err != nil {
		return nil, nil, fmt.Errorf("puzzle: baseline patrol: %w", err)
	}
	if res.Verdict == simulate.Looping {
		return nil, nil, ErrBaseRunLoops
	}

	return template, res, nil
}
