// Package astar implements terrain-constrained A* search over a sparse
// lattice of grid positions.
//
// From each position the engine expands up to eight neighbors offset by a
// fixed step size, validating the full straight-line segment to each
// candidate against the transition policy. The open frontier is a min-heap
// keyed by (f, insertion counter); the counter breaks f-ties in insertion
// order so exploration—and therefore the returned path—is deterministic.
//
// Complexity:
//
//   - Time:  O(N log N) with N = number of generated lattice nodes,
//     each neighbor expansion paying an extra O(step) for segment sampling.
//   - Space: O(N) for the cost, predecessor, and closed maps plus the heap.
package astar

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/atlasvia/terrapath/policy"
	"github.com/atlasvia/terrapath/terrain"
)

// Find computes a cost-aware path between the grid's start and end marker
// centers. It accepts functional options to customize behavior (step size,
// direction set, iteration cap, goal radius, costs, context, progress).
//
// Returns:
//
//   - path:  ordered waypoints from the start center into the goal region;
//     every consecutive pair is a policy-valid straight segment.
//   - stats: search effort, populated on success and on failure alike.
//   - err:   ErrNilGrid for a nil grid; ErrNoPath (wrapped with the number
//     of nodes explored) when the frontier is exhausted or the iteration
//     cap is reached; the context error if Ctx is canceled.
//
// No partial path is ever returned: on error the path is nil.
func Find(g *terrain.Grid, opts ...Option) (terrain.Path, Stats, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the grid.
	if g == nil {
		return nil, Stats{}, ErrNilGrid
	}

	// 3) Resolve the goal-proximity radius: default is twice the step, so a
	//    popped node within one lattice hop of the goal counts as arrival.
	radius := cfg.GoalRadius
	if radius == 0 {
		radius = 2 * float64(cfg.Step)
	}

	// 4) Precompute scaled neighbor offsets for the chosen direction set.
	var offsets [][2]int
	if cfg.Dirs == Dir4 {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	} else {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	for i := range offsets {
		offsets[i][0] *= cfg.Step
		offsets[i][1] *= cfg.Step
	}

	// 5) Initialize runner state and execute the search loop.
	r := &runner{
		grid:     g,
		options:  cfg,
		radius:   radius,
		offsets:  offsets,
		pol:      policy.New(cfg.Costs),
		goal:     g.EndCenter(),
		gScore:   make(map[terrain.Position]float64),
		cameFrom: make(map[terrain.Position]terrain.Position),
		closed:   make(map[terrain.Position]struct{}),
	}
	r.init(g.StartCenter())

	return r.process()
}

// runner holds the mutable state of a single search invocation. The
// frontier and closed set are exclusively owned by this run; nothing is
// shared across invocations.
type runner struct {
	grid    *terrain.Grid
	options Options
	radius  float64
	offsets [][2]int
	pol     policy.Policy
	goal    terrain.Position

	// gScore holds the best-known cumulative cost per discovered position;
	// cameFrom the predecessor references for path reconstruction; closed
	// the finalized positions that are never revisited.
	gScore   map[terrain.Position]float64
	cameFrom map[terrain.Position]terrain.Position
	closed   map[terrain.Position]struct{}

	pq    nodePQ
	seq   uint64 // monotonically increasing tie-break counter
	stats Stats
}

// init seeds the frontier with the start position at cost 0.
func (r *runner) init(start terrain.Position) {
	heap.Init(&r.pq)
	r.gScore[start] = 0
	heap.Push(&r.pq, &nodeItem{pos: start, f: r.heuristic(start), seq: r.seq})
	r.seq++
}

// process is the main A* loop.
//
// Loop termination:
//
//   - A popped position lies within the goal radius → reconstruct and return.
//   - The heap empties, or Iterations reaches MaxIterations → ErrNoPath.
//   - The context is canceled → wrapped ctx.Err().
func (r *runner) process() (terrain.Path, Stats, error) {
	// Default to Background if the caller left Ctx nil.
	ctx := r.options.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	for r.pq.Len() > 0 {
		// 1) Honor the iteration cap before popping; large images with no
		//    valid route would otherwise grind through the whole lattice.
		if r.stats.Iterations >= r.options.MaxIterations {
			return nil, r.stats, fmt.Errorf("%w: iteration cap reached after exploring %d nodes", ErrNoPath, r.stats.NodesExplored)
		}

		// 2) Cancellation point between frontier pops.
		select {
		case <-ctx.Done():
			return nil, r.stats, fmt.Errorf("astar: %w", ctx.Err())
		default:
		}

		// 3) Pop the lowest (f, seq) entry; skip stale lazy-decrease-key
		//    duplicates of already-finalized positions.
		item := heap.Pop(&r.pq).(*nodeItem)
		r.stats.Iterations++
		current := item.pos
		if _, done := r.closed[current]; done {
			continue
		}

		// 4) Goal-proximity termination: the lattice rarely lands a node on
		//    the exact goal cell, so arrival within the radius counts.
		if current.Distance(r.goal) < r.radius {
			return r.reconstruct(current), r.stats, nil
		}

		// 5) Finalize the position.
		r.closed[current] = struct{}{}
		r.stats.NodesExplored++
		if r.options.Progress != nil && r.stats.NodesExplored%progressInterval == 0 {
			r.options.Progress(r.stats)
		}

		// 6) Expand neighbors.
		r.expand(current)
	}

	return nil, r.stats, fmt.Errorf("%w: frontier exhausted after exploring %d nodes", ErrNoPath, r.stats.NodesExplored)
}

// expand generates the step-offset successors of current, validates each
// full segment against the transition policy, and relaxes improved routes
// into the frontier. An invalid segment only skips the candidate; it never
// aborts the search.
func (r *runner) expand(current terrain.Position) {
	w, h := r.grid.Width(), r.grid.Height()

	for _, d := range r.offsets {
		n := terrain.Position{X: current.X + d[0], Y: current.Y + d[1]}

		// Clamp to grid bounds so border cells off the step lattice stay
		// reachable; a fully clamped-away offset collapses onto current.
		n.X = clamp(n.X, 0, w-1)
		n.Y = clamp(n.Y, 0, h-1)
		if n == current {
			continue
		}
		if _, done := r.closed[n]; done {
			continue
		}

		// Validate the whole straight segment; the returned multiplier is
		// the worst per-tile cost sampled along it.
		mult, ok := r.pol.Segment(r.grid, current, n)
		if !ok {
			continue
		}

		tentative := r.gScore[current] + current.Distance(n)*mult

		if best, seen := r.gScore[n]; seen && tentative >= best {
			continue
		}

		r.gScore[n] = tentative
		r.cameFrom[n] = current
		heap.Push(&r.pq, &nodeItem{pos: n, f: tentative + r.heuristic(n), seq: r.seq})
		r.seq++
	}
}

// heuristic estimates remaining cost to the goal. Euclidean distance is
// admissible for 8-directional movement; Manhattan for 4-directional.
func (r *runner) heuristic(p terrain.Position) float64 {
	if r.options.Dirs == Dir4 {
		return math.Abs(float64(p.X-r.goal.X)) + math.Abs(float64(p.Y-r.goal.Y))
	}

	return p.Distance(r.goal)
}

// reconstruct backtracks predecessor references from the accepting position
// to the start, reverses the sequence, and snaps the tail onto the exact
// goal center when that closing segment is itself policy-valid.
func (r *runner) reconstruct(current terrain.Position) terrain.Path {
	path := terrain.Path{current}
	for {
		prev, ok := r.cameFrom[current]
		if !ok {
			break
		}
		current = prev
		path = append(path, current)
	}

	// Reverse in place: backtracking produced goal→start order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	last := path[len(path)-1]
	if last != r.goal {
		if _, ok := r.pol.Segment(r.grid, last, r.goal); ok {
			path = append(path, r.goal)
		}
	}

	return path
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// nodeItem is one frontier entry: a position, its estimated total cost f,
// and the insertion sequence number used to break f-ties deterministically.
type nodeItem struct {
	pos terrain.Position
	f   float64
	seq uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (f, seq) ascending. It uses
// the lazy-decrease-key approach: improved routes push duplicates, and
// stale entries are discarded on pop via the closed set.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f, then by insertion sequence for deterministic ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
