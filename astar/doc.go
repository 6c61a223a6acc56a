// Package astar computes cost-aware paths between the start and end
// markers of a classified terrain grid.
//
// What:
//
//   - Find runs classic A* over a sparse lattice: successors sit a fixed
//     step away in four or eight compass directions, and every candidate
//     move is validated as a full sampled segment against the transition
//     policy before it may enter the frontier.
//   - Arrival is goal-proximity based: a popped node within the goal radius
//     terminates the search, since the lattice rarely overlaps the goal
//     cell exactly.
//   - The frontier orders by (f, insertion counter), making exploration and
//     the returned path fully deterministic for identical inputs.
//
// Why:
//
//   - Segment validation keeps large lattice steps honest on a pixel map:
//     a forbidden tile anywhere along the straight move rejects the move.
//   - A lattice step trades search resolution for runtime on big images;
//     the iteration cap bounds the worst case.
//
// Complexity:
//
//   - Time:  O(N·step + N log N), N = generated lattice nodes.
//   - Space: O(N).
//
// Options:
//
//   - WithStep, WithDirections, WithMaxIterations, WithGoalRadius,
//     WithCosts, WithContext, WithProgress. See Options.
//
// Errors:
//
//   - ErrNilGrid: nil grid.
//   - ErrNoPath: frontier exhausted or iteration cap reached; the wrapped
//     message carries the number of nodes explored.
//   - Context errors propagate wrapped when Ctx is canceled.
package astar
