package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and access.
var (
	// ErrParse is matched by every error returned from Parse.
	ErrParse = errors.New("grid: invalid layout")
	// ErrEmptyGrid indicates the layout has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCell indicates a character that is not '.', '#' or '^'.
	ErrUnknownCell = errors.New("grid: unknown cell character")
	// ErrNoGuard indicates the layout has no '^' marker.
	ErrNoGuard = errors.New("grid: no guard marker")
	// ErrMultipleGuards indicates the layout has more than one '^' marker.
	ErrMultipleGuards = errors.New("grid: more than one guard marker")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrGuardBlocked indicates the guard would start on an obstruction.
	ErrGuardBlocked = errors.New("grid: guard starts on an obstruction")
)

// Cell is the static content of one grid square.
type Cell uint8

const (
	// Empty is a walkable square.
	Empty Cell = iota
	// Obstruction blocks the guard, which turns right in front of it.
	Obstruction
)

// Layout characters.
const (
	glyphEmpty       = '.'
	glyphObstruction = '#'
	glyphGuard       = '^'
	glyphVisited     = 'X'
)

// Heading is one of the four compass directions, ordered clockwise.
type Heading uint8

const (
	Up Heading = iota
	Right
	Down
	Left

	numHeadings = 4
)

// headingTable holds the unit vector and glyph of every Heading.
var headingTable = [numHeadings]struct {
	dx, dy int
	glyph  byte
	name   string
}{
	Up:    {0, -1, '^', "up"},
	Right: {1, 0, '>', "right"},
	Down:  {0, 1, 'v', "down"},
	Left:  {-1, 0, '<', "left"},
}

// Rotate returns the heading 90° clockwise from h.
func (h Heading) Rotate() Heading {
	return (h + 1) % numHeadings
}

// Delta returns the unit vector of h; y grows downwards.
func (h Heading) Delta() (dx, dy int) {
	e := headingTable[h%numHeadings]
	return e.dx, e.dy
}

// Glyph returns the character used to draw a guard facing h.
func (h Heading) Glyph() byte {
	return headingTable[h%numHeadings].glyph
}

func (h Heading) String() string {
	if h >= numHeadings {
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
	return headingTable[h].name
}

// Position is a 0-indexed (x, y) coordinate; x is the column, y the row.
type Position struct {
	X, Y int
}

// Step returns the neighbouring position in direction h.
func (p Position) Step(h Heading) Position {
	dx, dy := h.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// State is the guard's full machine state. Two visits to the same cell with
// different headings are different states.
type State struct {
	Pos     Position
	Heading Heading
}

func (s State) String() string {
	return fmt.Sprintf("%s %s", s.Pos, s.Heading)
}

// Outcome reports what a single Step did.
type Outcome uint8

const (
	// Moved means the guard advanced one square.
	Moved Outcome = iota
	// Rotated means the guard turned right in place.
	Rotated
	// Exited means the guard walked off the map.
	Exited
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Rotated:
		return "rotated"
	case Exited:
		return "exited"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}
