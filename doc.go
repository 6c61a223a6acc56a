// Package terrapath finds cost-aware routes across terrain maps encoded as
// raster images: classify pixels into terrain, locate the start/end
// markers, search, simplify, and draw the result.
//
// 🧭 What is terrapath?
//
//	A small, deterministic pathfinding library built from five subpackages:
//		• terrain/  — pixel → category classification, grid + marker centroids
//		• policy/   — transition legality (ramp rule) and the cost model
//		• astar/    — lattice A* with goal-proximity termination
//		• simplify/ — greedy waypoint reduction preserving valid transitions
//		• render/   — image adapters and path drawing (the outer boundary)
//
// ✨ Why choose terrapath?
//
//   - Deterministic – f-ties break by insertion order; identical inputs
//     yield byte-identical paths
//   - Honest on coarse lattices – every candidate move is validated as a
//     fully sampled segment, so a single forbidden pixel rejects it
//   - Configurable – thresholds, costs, step size, direction set, iteration
//     cap and goal radius are all plain options, not compiled-in constants
//   - Pure Go core – image decoding/encoding stays at the cmd boundary
//
// Typical flow:
//
//	pixels := render.FromImage(img)
//	grid, err := terrain.BuildGrid(pixels, terrain.DefaultThresholds())
//	path, stats, err := astar.Find(grid)
//	path = simplify.Simplify(grid, policy.New(policy.DefaultCosts()), path)
//	out, err := render.Draw(img, path, render.DefaultOptions())
//
// The terrain rulebook in one line: ramps are the only doorway between sand
// and mountain, and the abyss is always forbidden.
//
//	go get github.com/atlasvia/terrapath
package terrapath
