// Package policy defines the terrain transition rules and cost model
// shared by the search engine and the path simplifier.
package policy

import (
	"math"

	"github.com/atlasvia/terrapath/terrain"
)

// Costs holds the per-category traversal cost per unit of distance.
// Start and End tiles are priced as Sand.
type Costs struct {
	Sand     float64
	Mountain float64
	Ramp     float64
}

// DefaultCosts returns the baseline cost model: Sand is the unit cost,
// Mountain twice as slow, Ramp in between.
func DefaultCosts() Costs {
	return Costs{Sand: 1, Mountain: 2, Ramp: 1.5}
}

// Policy bundles the cost model with the transition rules. The zero value
// is not useful; construct with New.
type Policy struct {
	Costs Costs
}

// New returns a Policy using the given cost model.
func New(c Costs) Policy {
	return Policy{Costs: c}
}

// CanMove reports whether a direct transition between two terrain
// categories is legal. Rules, applied in order:
//
//   - Either side Abyss → forbidden. Never relaxed.
//   - Start/End are treated as Sand for adjacency purposes.
//   - Same category on both sides → allowed.
//   - Either side Ramp → allowed (ramps connect elevation bands).
//   - Sand directly against Mountain → forbidden; elevation changes must
//     route through a Ramp tile.
//   - Anything else → allowed.
//
// Complexity: O(1).
func CanMove(from, to terrain.Category) bool {
	if from == terrain.Abyss || to == terrain.Abyss {
		return false
	}

	from = asTraversable(from)
	to = asTraversable(to)

	if from == to {
		return true
	}
	if from == terrain.Ramp || to == terrain.Ramp {
		return true
	}
	if (from == terrain.Sand && to == terrain.Mountain) ||
		(from == terrain.Mountain && to == terrain.Sand) {
		return false
	}

	return true
}

// asTraversable collapses the marker categories onto Sand; markers behave
// as regular sand for movement (but not for classification).
func asTraversable(c terrain.Category) terrain.Category {
	if c == terrain.Start || c == terrain.End {
		return terrain.Sand
	}

	return c
}

// StepCost returns the per-unit traversal cost of one tile. Abyss costs
// +Inf; it is unreachable through CanMove anyway.
func (p Policy) StepCost(c terrain.Category) float64 {
	switch asTraversable(c) {
	case terrain.Mountain:
		return p.Costs.Mountain
	case terrain.Ramp:
		return p.Costs.Ramp
	case terrain.Abyss:
		return math.Inf(1)
	default:
		return p.Costs.Sand
	}
}

// Segment validates the straight line from a to b by sampling
// max(|dx|,|dy|,1)+1 evenly spaced points. The segment is invalid if either
// endpoint is out of bounds, any sampled tile is Abyss, or any consecutive
// sampled pair fails CanMove. On success it returns the maximum per-tile
// cost observed along the segment: one slow tile prices the whole move.
//
// Complexity: O(max(|dx|,|dy|)).
func (p Policy) Segment(g *terrain.Grid, a, b terrain.Position) (mult float64, ok bool) {
	if !g.InBounds(a.X, a.Y) || !g.InBounds(b.X, b.Y) {
		return 0, false
	}

	steps := absInt(b.X - a.X)
	if dy := absInt(b.Y - a.Y); dy > steps {
		steps = dy
	}
	if steps < 1 {
		steps = 1
	}

	prev := g.At(a.X, a.Y)
	if prev == terrain.Abyss {
		return 0, false
	}
	mult = p.StepCost(prev)

	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := a.X + int(t*float64(b.X-a.X))
		y := a.Y + int(t*float64(b.Y-a.Y))

		cur := g.At(x, y)
		if !CanMove(prev, cur) {
			return 0, false
		}
		if c := p.StepCost(cur); c > mult {
			mult = c
		}
		prev = cur
	}

	return mult, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
