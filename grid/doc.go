// Package grid models a bounded 2D floor plan patrolled by a single guard.
//
// What:
//
//   - Grid holds a rectangular, row-major slice of cells (Empty or Obstruction)
//     plus the guard's State (Position + Heading).
//   - Step advances the guard by one tick: move forward, turn right in front
//     of an obstruction, or leave the map.
//   - Obstruct promotes a single cell to an obstruction on a private copy
//     (see Clone) so callers can explore "what if" layouts.
//   - Parse reads the textual layout ('.', '#', '^').
//
// Why:
//
//   - Guard occupancy is derived from State, never stored in the cells, so a
//     cell and the guard can not disagree about where the guard stands.
//   - Heading is a closed four-value enum; rotation is (h+1) mod 4 and the
//     movement vector comes from a fixed table.
//
// Complexity:
//
//   - Parse:     O(W×H) time and memory.
//   - Step:      O(1).
//   - Obstruct:  O(1).
//   - Clone:     O(W×H).
//
// Errors:
//
//   - ErrParse:          umbrella for every layout error below.
//   - ErrEmptyGrid:      no rows or no columns after trimming.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell:    a character outside ".#^".
//   - ErrNoGuard:        no '^' marker.
//   - ErrMultipleGuards: more than one '^' marker.
//   - ErrOutOfBounds:    At was asked for a position outside the grid.
package grid
