// Package astar defines configuration options, result statistics, and
// sentinel errors for the terrain-constrained A* search engine.
package astar

import (
	"context"
	"errors"

	"github.com/atlasvia/terrapath/policy"
)

// Sentinel errors returned by Find.
var (
	// ErrNilGrid indicates a nil *terrain.Grid was passed to Find.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrBadStep indicates a non-positive lattice step size.
	ErrBadStep = errors.New("astar: step size must be positive")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("astar: max iterations must be positive")

	// ErrBadGoalRadius indicates a negative goal-proximity radius.
	ErrBadGoalRadius = errors.New("astar: goal radius must be non-negative")

	// ErrNoPath indicates the frontier was exhausted, or the iteration cap
	// was reached, without entering the goal region. This is a reportable
	// outcome, not a malfunction; the wrapping error carries the number of
	// nodes explored.
	ErrNoPath = errors.New("astar: no path found")
)

// Directions selects the successor set generated from each lattice
// position: the four compass directions, or eight including diagonals.
type Directions int

const (
	// Dir8 expands N, NE, E, SE, S, SW, W, NW successors.
	Dir8 Directions = iota
	// Dir4 expands N, E, S, W successors only.
	Dir4
)

// Stats reports search effort. It is returned on success and on failure,
// so no-path outcomes still carry diagnostics.
type Stats struct {
	// NodesExplored counts finalized (closed) positions.
	NodesExplored int
	// Iterations counts frontier pops, including stale heap entries.
	Iterations int
}

// DefaultStep is the lattice granularity in pixels.
const DefaultStep = 4

// DefaultMaxIterations bounds worst-case runtime on large images.
const DefaultMaxIterations = 500_000

// progressInterval is how many explored nodes pass between Progress calls.
const progressInterval = 20_000

// Options configures one search invocation.
//
//	Step          – lattice step size in pixels (must be > 0).
//	Dirs          – Dir8 (default) or Dir4. The heuristic follows the
//	                movement model: Euclidean for Dir8, Manhattan for Dir4.
//	MaxIterations – cap on frontier pops; reaching it yields ErrNoPath.
//	GoalRadius    – goal-proximity termination radius; 0 means 2×Step.
//	Costs         – per-category traversal costs for the transition policy.
//	Ctx           – optional cancellation; checked between frontier pops.
//	Progress      – optional callback invoked with running Stats every
//	                progressInterval explored nodes.
type Options struct {
	Step          int
	Dirs          Directions
	MaxIterations int
	GoalRadius    float64
	Costs         policy.Costs
	Ctx           context.Context
	Progress      func(Stats)
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// WithStep sets the lattice step size in pixels.
// Must pass a positive value; zero or negative cause ErrBadStep.
func WithStep(step int) Option {
	return func(o *Options) {
		if step <= 0 {
			panic(ErrBadStep.Error())
		}
		o.Step = step
	}
}

// WithDirections selects the successor set (Dir8 or Dir4).
func WithDirections(d Directions) Option {
	return func(o *Options) {
		o.Dirs = d
	}
}

// WithMaxIterations caps the number of frontier pops.
// Must pass a positive value; zero or negative cause ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithGoalRadius overrides the goal-proximity termination radius.
// Must pass a non-negative value; negative causes ErrBadGoalRadius.
// Default (if not set, or set to 0) is 2×Step.
func WithGoalRadius(r float64) Option {
	return func(o *Options) {
		if r < 0 {
			panic(ErrBadGoalRadius.Error())
		}
		o.GoalRadius = r
	}
}

// WithCosts sets the per-category traversal cost model.
func WithCosts(c policy.Costs) Option {
	return func(o *Options) {
		o.Costs = c
	}
}

// WithContext attaches a context checked between frontier pops, allowing a
// caller to cancel a long search. Default is context.Background().
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithProgress registers a callback invoked periodically with running Stats
// while the search is in flight.
func WithProgress(fn func(Stats)) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
// Step=DefaultStep, Dir8, MaxIterations=DefaultMaxIterations,
// GoalRadius=0 (meaning 2×Step), DefaultCosts, background context.
func DefaultOptions() Options {
	return Options{
		Step:          DefaultStep,
		Dirs:          Dir8,
		MaxIterations: DefaultMaxIterations,
		GoalRadius:    0,
		Costs:         policy.DefaultCosts(),
		Ctx:           context.Background(),
	}
}
