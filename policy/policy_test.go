package policy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atlasvia/terrapath/policy"
	"github.com/atlasvia/terrapath/terrain"
)

// TestCanMove_Rules exercises the full transition matrix rule by rule.
func TestCanMove_Rules(t *testing.T) {
	cases := []struct {
		name     string
		from, to terrain.Category
		want     bool
	}{
		{"AbyssFromForbidden", terrain.Abyss, terrain.Sand, false},
		{"AbyssToForbidden", terrain.Ramp, terrain.Abyss, false},
		{"AbyssBothForbidden", terrain.Abyss, terrain.Abyss, false},
		{"SameSand", terrain.Sand, terrain.Sand, true},
		{"SameMountain", terrain.Mountain, terrain.Mountain, true},
		{"RampToSand", terrain.Ramp, terrain.Sand, true},
		{"MountainToRamp", terrain.Mountain, terrain.Ramp, true},
		{"SandToMountainForbidden", terrain.Sand, terrain.Mountain, false},
		{"MountainToSandForbidden", terrain.Mountain, terrain.Sand, false},
		{"StartActsAsSand", terrain.Start, terrain.Sand, true},
		{"EndActsAsSand", terrain.Sand, terrain.End, true},
		{"StartToMountainForbidden", terrain.Start, terrain.Mountain, false},
		{"EndToRamp", terrain.End, terrain.Ramp, true},
		{"StartToEnd", terrain.Start, terrain.End, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, policy.CanMove(tc.from, tc.to))
		})
	}
}

// TestStepCost verifies the per-category pricing, marker aliasing, and the
// infinite cost of Abyss.
func TestStepCost(t *testing.T) {
	p := policy.New(policy.DefaultCosts())

	require.Equal(t, 1.0, p.StepCost(terrain.Sand))
	require.Equal(t, 2.0, p.StepCost(terrain.Mountain))
	require.Equal(t, 1.5, p.StepCost(terrain.Ramp))
	require.Equal(t, 1.0, p.StepCost(terrain.Start), "markers priced as sand")
	require.Equal(t, 1.0, p.StepCost(terrain.End), "markers priced as sand")
	require.True(t, math.IsInf(p.StepCost(terrain.Abyss), 1))
}

// rowGrid builds a single-row grid from cells, bracketing it with the
// mandatory start/end markers on extra rows so construction succeeds.
func rowGrid(t *testing.T, cells ...terrain.Category) *terrain.Grid {
	t.Helper()

	w := len(cells)
	markers := make([]terrain.Category, w)
	for i := range markers {
		markers[i] = terrain.Sand
	}
	markers[0] = terrain.Start
	markers[w-1] = terrain.End

	g, err := terrain.FromCategories([][]terrain.Category{cells, markers})
	require.NoError(t, err)

	return g
}

// TestSegment_Valid samples a pure sand run and expects the sand cost.
func TestSegment_Valid(t *testing.T) {
	g := rowGrid(t, terrain.Sand, terrain.Sand, terrain.Sand, terrain.Sand, terrain.Sand)
	p := policy.New(policy.DefaultCosts())

	mult, ok := p.Segment(g, terrain.Position{X: 0, Y: 0}, terrain.Position{X: 4, Y: 0})
	require.True(t, ok)
	require.Equal(t, 1.0, mult)
}

// TestSegment_MaxCostDominates expects the worst tile along the segment to
// set the multiplier: one ramp tile inside a sand run prices the move at
// the ramp cost.
func TestSegment_MaxCostDominates(t *testing.T) {
	g := rowGrid(t, terrain.Sand, terrain.Sand, terrain.Ramp, terrain.Sand, terrain.Sand)
	p := policy.New(policy.DefaultCosts())

	mult, ok := p.Segment(g, terrain.Position{X: 0, Y: 0}, terrain.Position{X: 4, Y: 0})
	require.True(t, ok)
	require.Equal(t, 1.5, mult)
}

// TestSegment_RampBridgesElevation validates sand→ramp→mountain crossings
// and prices them at the mountain cost.
func TestSegment_RampBridgesElevation(t *testing.T) {
	g := rowGrid(t, terrain.Sand, terrain.Sand, terrain.Ramp, terrain.Mountain, terrain.Mountain)
	p := policy.New(policy.DefaultCosts())

	mult, ok := p.Segment(g, terrain.Position{X: 0, Y: 0}, terrain.Position{X: 4, Y: 0})
	require.True(t, ok)
	require.Equal(t, 2.0, mult)
}

// TestSegment_Invalid covers the rejection cases: direct sand↔mountain
// contact, any abyss tile, abyss endpoints, and out-of-bounds endpoints.
func TestSegment_Invalid(t *testing.T) {
	p := policy.New(policy.DefaultCosts())

	t.Run("SandMountainContact", func(t *testing.T) {
		g := rowGrid(t, terrain.Sand, terrain.Sand, terrain.Mountain, terrain.Mountain, terrain.Sand)
		_, ok := p.Segment(g, terrain.Position{X: 0, Y: 0}, terrain.Position{X: 4, Y: 0})
		require.False(t, ok)
	})

	t.Run("AbyssMidSegment", func(t *testing.T) {
		g := rowGrid(t, terrain.Sand, terrain.Sand, terrain.Abyss, terrain.Sand, terrain.Sand)
		_, ok := p.Segment(g, terrain.Position{X: 0, Y: 0}, terrain.Position{X: 4, Y: 0})
		require.False(t, ok)
	})

	t.Run("AbyssOrigin", func(t *testing.T) {
		g := rowGrid(t, terrain.Abyss, terrain.Sand, terrain.Sand, terrain.Sand, terrain.Sand)
		_, ok := p.Segment(g, terrain.Position{X: 0, Y: 0}, terrain.Position{X: 2, Y: 0})
		require.False(t, ok)
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		g := rowGrid(t, terrain.Sand, terrain.Sand, terrain.Sand, terrain.Sand, terrain.Sand)
		_, ok := p.Segment(g, terrain.Position{X: 0, Y: 0}, terrain.Position{X: 9, Y: 0})
		require.False(t, ok)
	})
}

// TestSegment_SamePosition treats a zero-length segment as a valid move
// priced at the tile's own cost.
func TestSegment_SamePosition(t *testing.T) {
	g := rowGrid(t, terrain.Ramp, terrain.Sand, terrain.Sand, terrain.Sand, terrain.Sand)
	p := policy.New(policy.DefaultCosts())

	mult, ok := p.Segment(g, terrain.Position{X: 0, Y: 0}, terrain.Position{X: 0, Y: 0})
	require.True(t, ok)
	require.Equal(t, 1.5, mult)
}
