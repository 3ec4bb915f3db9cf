package grid

import "strings"

// Grid is a rectangular floor plan with one guard on it.
// A Grid is not safe for concurrent mutation; use Clone to hand each
// goroutine its own copy.
type Grid struct {
	width, height int
	cells         []Cell // row-major: cells[y*width+x]
	guard         State
	active        bool // false once the guard has left the map
}

// New builds a Grid from a non-empty, rectangular cell matrix and the
// guard's starting state. It deep-copies cells.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrOutOfBounds when the guard
// does not start inside the grid, or ErrGuardBlocked.
func New(cells [][]Cell, guard State) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	flat := make([]Cell, 0, w*h)
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		flat = append(flat, row...)
	}
	g := &Grid{width: w, height: h, cells: flat, guard: guard, active: true}
	if !g.InBounds(guard.Pos) {
		return nil, ErrOutOfBounds
	}
	if g.cells[g.index(guard.Pos)] == Obstruction {
		return nil, ErrGuardBlocked
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// index maps p to its row-major offset. p must be in bounds.
func (g *Grid) index(p Position) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}

// At returns the cell at p, or ErrOutOfBounds.
func (g *Grid) At(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return Empty, ErrOutOfBounds
	}
	return g.cells[g.index(p)], nil
}

// Guard returns the guard's current state; ok is false once it has exited.
func (g *Grid) Guard() (s State, ok bool) {
	return g.guard, g.active
}

// Occupied reports whether the guard currently stands on p.
func (g *Grid) Occupied(p Position) bool {
	return g.active && g.guard.Pos == p
}

// Step advances the guard by one tick:
//
//   - next square outside the grid: the guard leaves, Exited;
//   - next square is an Obstruction: turn right in place, Rotated;
//   - otherwise: move forward keeping the heading, Moved.
//
// Step on a grid whose guard already left is a no-op returning Exited.
func (g *Grid) Step() Outcome {
	if !g.active {
		return Exited
	}
	next := g.guard.Pos.Step(g.guard.Heading)
	if !g.InBounds(next) {
		g.active = false
		return Exited
	}
	if g.cells[g.index(next)] == Obstruction {
		g.guard.Heading = g.guard.Heading.Rotate()
		return Rotated
	}
	g.guard.Pos = next

	return Moved
}

// Obstruct turns the cell at p into an Obstruction and reports success.
// It refuses (false) positions outside the grid, the square the guard is
// standing on, and grids whose guard already left.
func (g *Grid) Obstruct(p Position) bool {
	if !g.active || !g.InBounds(p) || g.guard.Pos == p {
		return false
	}
	g.cells[g.index(p)] = Obstruction
	return true
}

// Clone returns a deep, independent copy of g.
func (g *Grid) Clone() *Grid {
	out := *g
	out.cells = make([]Cell, len(g.cells))
	copy(out.cells, g.cells)
	return &out
}

// Render draws the grid one row per line. Squares for which mark returns
// true are drawn as 'X'; the guard is drawn with its heading glyph and
// takes precedence over marks. A nil mark draws no marks.
func (g *Grid) Render(mark func(Position) bool) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			p := Position{X: x, Y: y}
			switch {
			case g.Occupied(p):
				sb.WriteByte(g.guard.Heading.Glyph())
			case g.cells[g.index(p)] == Obstruction:
				sb.WriteByte(glyphObstruction)
			case mark != nil && mark(p):
				sb.WriteByte(glyphVisited)
			default:
				sb.WriteByte(glyphEmpty)
			}
		}
	}

	return sb.String()
}

// String renders the grid without marks.
func (g *Grid) String() string {
	return g.Render(nil)
}
