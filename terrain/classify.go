package terrain

// Classify maps one pixel color to its terrain category.
//
// The function is pure and total over the RGB color space: every input maps
// to exactly one category, and ambiguous or very dark colors resolve to
// Abyss. Rules are applied in priority order, since the categories overlap
// in color space:
//
//  1. Green-dominant bright pixel   → Start
//  2. Red-dominant bright pixel     → End
//  3. Neutral gray in the ramp band → Ramp
//  4. All channels below AbyssMax   → Abyss
//  5. Otherwise bucket by mean brightness: Sand, then Mountain, then Abyss.
//
// Complexity: O(1).
func Classify(c RGB, th Thresholds) Category {
	// 1) Start marker: bright green.
	if c.G > th.StartRule.DominantMin && c.R < th.StartRule.OthersMax && c.B < th.StartRule.OthersMax {
		return Start
	}

	// 2) End marker: bright red.
	if c.R > th.EndRule.DominantMin && c.G < th.EndRule.OthersMax && c.B < th.EndRule.OthersMax {
		return End
	}

	// 3) Ramp: near-equal channels inside the mid-brightness band.
	if absDiff(c.R, c.G) < th.RampTolerance && absDiff(c.G, c.B) < th.RampTolerance &&
		c.R >= th.RampBandMin && c.R <= th.RampBandMax {
		return Ramp
	}

	// 4) Abyss: all channels very dark.
	if c.R < th.AbyssMax && c.G < th.AbyssMax && c.B < th.AbyssMax {
		return Abyss
	}

	// 5) Bucket by mean brightness.
	brightness := (float64(c.R) + float64(c.G) + float64(c.B)) / 3
	if brightness > th.SandFloor {
		return Sand
	}
	if brightness > th.MountainFloor {
		return Mountain
	}

	return Abyss
}

// absDiff returns |a-b| for two channel values without uint8 wraparound.
func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}

	return b - a
}
