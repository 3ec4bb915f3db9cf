package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Input adds the layout source (file path or "-").
func Input(path string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("input", path)
	}
}

// Dimensions adds the grid width and height.
func Dimensions(width, height int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("width", width).Int("height", height)
	}
}

// Visited adds the distinct-square count of the unmodified patrol.
func Visited(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("visited", n)
	}
}

// Obstructions adds the looping-obstruction count.
func Obstructions(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("obstructions", n)
	}
}

// Verdict adds a run classification.
func Verdict(v string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("verdict", v)
	}
}

// Workers adds the search pool size.
func Workers(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("workers", n)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field; a nil error adds nothing.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}
