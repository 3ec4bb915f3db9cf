package search

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for the obstruction search.
var (
	// ErrGridNil is returned if a nil template grid is passed.
	ErrGridNil = errors.New("search: template grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures the search via functional arguments. An invalid Option
// is recorded and surfaced as ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Ctx allows cancellation; it is shared by every candidate run.
	Ctx context.Context

	// Workers is the number of candidates simulated concurrently.
	Workers int

	err error
}

// DefaultOptions returns a background context and one worker per
// available CPU.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
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

// WithWorkers bounds the number of concurrent candidate runs.
//
//	n > 0: at most n runs at a time (1 runs candidates sequentially)
//	n == 0: one per available CPU
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}
