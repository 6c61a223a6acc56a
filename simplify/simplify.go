// Package simplify removes redundant waypoints from a found path while
// preserving transition validity.
//
// The pass is greedy forward skipping: from the current anchor it scans
// backward from the path's end for the furthest waypoint reachable via one
// policy-valid straight segment, adopts it as the next anchor, and repeats.
// A single left-to-right pass: not globally optimal, but deterministic,
// idempotent, and bounded at O(n²) segment validations.
package simplify

import (
	"github.com/atlasvia/terrapath/policy"
	"github.com/atlasvia/terrapath/terrain"
)

// Simplify returns a subsequence of path with the same first and last
// waypoints, in which every consecutive pair is connected by a
// policy-valid straight segment and no interior waypoint can be dropped
// by the greedy pass. Paths of two or fewer waypoints are returned as a
// copy unchanged. The input path is never mutated.
//
// Running Simplify on an already-simplified path yields the same path.
//
// Complexity: O(n²) segment checks, each O(segment length).
func Simplify(g *terrain.Grid, pol policy.Policy, path terrain.Path) terrain.Path {
	if len(path) <= 2 {
		return append(terrain.Path(nil), path...)
	}

	out := terrain.Path{path[0]}
	i := 0

	for i < len(path)-1 {
		// Furthest waypoint reachable from the anchor in one segment.
		// Adjacent waypoints came from validated moves, so j=i+1 always
		// terminates the scan.
		next := i + 1
		for j := len(path) - 1; j > i; j-- {
			if _, ok := pol.Segment(g, path[i], path[j]); ok {
				next = j
				break
			}
		}
		out = append(out, path[next])
		i = next
	}

	return out
}
