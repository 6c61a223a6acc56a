// Package terrain defines core types, classification thresholds, and
// sentinel errors for the terrain subpackage of github.com/atlasvia/terrapath.
package terrain

import (
	"errors"
	"math"
)

// Sentinel errors for terrain grid construction.
var (
	// ErrEmptyGrid indicates the input pixel grid has no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrNoStartMarker indicates no pixel classified as Start exists.
	ErrNoStartMarker = errors.New("terrain: no start marker pixels found")
	// ErrNoEndMarker indicates no pixel classified as End exists.
	ErrNoEndMarker = errors.New("terrain: no end marker pixels found")
)

// RGB is a single pixel sampled from the source image, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// Position is an integer grid coordinate within [0,width)×[0,height).
// It doubles as the node identity during path search.
type Position struct {
	X, Y int
}

// Distance returns the Euclidean distance to other.
func (p Position) Distance(other Position) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Path is an ordered sequence of grid positions from start to goal.
type Path []Position

// Category is the terrain class assigned to a pixel. Derived once per pixel
// during grid construction and immutable afterwards.
type Category uint8

const (
	// Sand is bright, low-cost base terrain.
	Sand Category = iota
	// Mountain is darker, high-cost elevated terrain.
	Mountain
	// Ramp marks a transition point between elevation bands.
	Ramp
	// Abyss is impassable terrain; movement into or out of it is forbidden.
	Abyss
	// Start marks the start-marker pixels (green in the source images).
	Start
	// End marks the end-marker pixels (red in the source images).
	End

	// NumCategories is the count of distinct terrain categories.
	NumCategories = 6
)

// String returns the category name, or "UNKNOWN" for out-of-range values.
func (c Category) String() string {
	switch c {
	case Sand:
		return "SAND"
	case Mountain:
		return "MOUNTAIN"
	case Ramp:
		return "RAMP"
	case Abyss:
		return "ABYSS"
	case Start:
		return "START"
	case End:
		return "END"
	default:
		return "UNKNOWN"
	}
}

// MarkerRule describes a channel-dominance test for a start or end marker:
// the dominant channel must exceed DominantMin while both remaining channels
// stay below OthersMax.
type MarkerRule struct {
	DominantMin uint8 // floor for the marker's dominant channel
	OthersMax   uint8 // ceiling for the two remaining channels
}

// Thresholds contains the tunable classification parameters.
// All values are plain configuration constants; nothing is derived at runtime.
type Thresholds struct {
	// StartRule matches green-dominant bright pixels (dominant channel: G).
	StartRule MarkerRule
	// EndRule matches red-dominant bright pixels (dominant channel: R).
	EndRule MarkerRule
	// RampTolerance is the maximum spread between adjacent channels for a
	// pixel to count as neutral gray.
	RampTolerance uint8
	// RampBandMin and RampBandMax bound the mid-brightness band (checked on
	// the red channel) within which neutral gray pixels classify as Ramp.
	RampBandMin, RampBandMax uint8
	// AbyssMax: pixels with all channels strictly below this are Abyss.
	AbyssMax uint8
	// SandFloor: mean brightness strictly above this classifies as Sand.
	SandFloor float64
	// MountainFloor: mean brightness strictly above this (but not above
	// SandFloor) classifies as Mountain; at or below, Abyss.
	MountainFloor float64
}

// DefaultThresholds returns the thresholds tuned for the atlas images:
// markers at 200/100, ramp gray within ±20 in the 100–140 band,
// abyss below 25, sand above mean 110, mountain above mean 25.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StartRule:     MarkerRule{DominantMin: 200, OthersMax: 100},
		EndRule:       MarkerRule{DominantMin: 200, OthersMax: 100},
		RampTolerance: 20,
		RampBandMin:   100,
		RampBandMax:   140,
		AbyssMax:      25,
		SandFloor:     110,
		MountainFloor: 25,
	}
}
