package grid

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// layoutLexer splits a layout into single-character cells and line breaks.
// Anything that is not a known cell becomes an Invalid token so the error can
// carry the cell coordinates instead of a generic lexer failure.
var layoutLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Cell", Pattern: `[.#^]`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Invalid", Pattern: `[^\n]`},
})

type layout struct {
	Rows []*layoutRow `parser:"@@ ( EOL @@ )*"`
}

type layoutRow struct {
	Cells []*layoutCell `parser:"@@+"`
}

type layoutCell struct {
	Pos   lexer.Position
	Glyph string `parser:"@( Cell | Invalid )"`
}

var layoutParser = participle.MustBuild[layout](participle.Lexer(layoutLexer))

// Parse reads a textual layout into a Grid.
//
// Leading and trailing blank lines are dropped and every line is trimmed of
// surrounding whitespace. The remaining lines must be of equal length and use
// only '.' (Empty), '#' (Obstruction) and exactly one '^' (guard facing Up).
//
// Every returned error matches ErrParse and one of ErrEmptyGrid,
// ErrNonRectangular, ErrUnknownCell, ErrNoGuard or ErrMultipleGuards.
// No partial grid is returned on failure.
func Parse(text string) (*Grid, error) {
	text = normalize(text)
	if text == "" {
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrEmptyGrid)
	}

	ast, err := layoutParser.ParseString("", text)
	if err != nil {
		// The only structural failure left after normalize is an empty
		// interior row.
		return nil, fmt.Errorf("%w: %w: %v", ErrParse, ErrNonRectangular, err)
	}

	width := len(ast.Rows[0].Cells)
	cells := make([][]Cell, len(ast.Rows))
	var (
		guard  Position
		guards int
	)
	for y, row := range ast.Rows {
		if len(row.Cells) != width {
			return nil, fmt.Errorf("%w: %w: row %d has %d cells, want %d",
				ErrParse, ErrNonRectangular, y, len(row.Cells), width)
		}
		cells[y] = make([]Cell, width)
		for x, c := range row.Cells {
			switch c.Glyph[0] {
			case glyphEmpty:
				cells[y][x] = Empty
			case glyphObstruction:
				cells[y][x] = Obstruction
			case glyphGuard:
				cells[y][x] = Empty
				guard = Position{X: x, Y: y}
				guards++
			default:
				return nil, fmt.Errorf("%w: %w %q at %s (line %d, column %d)",
					ErrParse, ErrUnknownCell, c.Glyph, Position{X: x, Y: y}, c.Pos.Line, c.Pos.Column)
			}
		}
	}

	switch {
	case guards == 0:
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrNoGuard)
	case guards > 1:
		return nil, fmt.Errorf("%w: %w: found %d", ErrParse, ErrMultipleGuards, guards)
	}

	g, err := New(cells, State{Pos: guard, Heading: Up})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// normalize trims every line and drops blank lines at both ends.
func normalize(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}
