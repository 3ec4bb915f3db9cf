// Package patrol simulates a single guard walking a bounded floor plan and
// finds the single added obstructions that trap it in a loop.
//
// What is patrol?
//
//	A small, deterministic toolkit built from three layers:
//		• grid      – the floor plan, the guard's (position, heading) state and Step
//		• simulate  – drives Step until the guard leaves or repeats a state
//		• search    – tries an obstruction on every visited square, in parallel
//
// Rules of the walk:
//
//   - The guard starts on '^' facing up.
//   - Each tick: if the square ahead is off the map, the guard leaves; if it is
//     '#', the guard turns 90° right in place; otherwise it steps forward.
//   - A repeated (position, heading) state means the guard will loop forever.
//
// Layout of the module:
//
//	grid/      - cells, Heading table, Parse, Step, Obstruct, Clone, Render
//	simulate/  - Run → Result{Verdict, Positions, States, Steps}
//	search/    - Count / Positions over candidate squares on a worker pool
//	puzzle/    - text in, both answers out (Visited, Obstructions, Solve)
//	cmd/patrol - command-line front end (run, trace, version)
//
// Quick ASCII example:
//
//	..#..      ..#..
//	....#  →   ..XX#     terminated, 4 squares
//	..^..      ..^X.
//
//	go install github.com/katalvlaran/patrol/cmd/patrol@latest
package patrol
