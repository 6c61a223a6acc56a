// Package policy decides whether movement between terrain categories is
// legal and at what cost, including validation of straight-line segments
// sampled across the grid.
//
// What:
//
//   - CanMove applies the transition rules between two categories:
//     Abyss is always forbidden, Start/End behave as Sand for adjacency,
//     Ramp connects everything, and Sand↔Mountain requires a Ramp between.
//   - Policy.StepCost prices one tile of a given category.
//   - Policy.Segment validates a straight segment between two positions by
//     sampling intermediate points, and returns the worst per-tile cost
//     found along it (a single slow tile dominates the whole segment).
//
// Why:
//
//   - Elevation changes must route through ramps; encoding that as a pure
//     transition predicate keeps the search engine free of terrain logic.
//   - Sampling approximates continuous terrain checking on a discrete image,
//     so lattice steps larger than one pixel stay honest.
//
// Complexity:
//
//   - CanMove, StepCost: O(1).
//   - Segment: O(L) with L = max(|dx|,|dy|) sampled points.
//
// Options:
//
//   - Costs: per-category traversal cost; DefaultCosts uses Sand=1,
//     Mountain=2, Ramp=1.5.
package policy
