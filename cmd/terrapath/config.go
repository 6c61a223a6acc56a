package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atlasvia/terrapath/astar"
	"github.com/atlasvia/terrapath/policy"
	"github.com/atlasvia/terrapath/render"
	"github.com/atlasvia/terrapath/terrain"
)

// fileConfig is the optional YAML configuration. Every field is
// pre-populated with library defaults before unmarshalling, so a config
// file only needs to name the values it overrides.
type fileConfig struct {
	Thresholds thresholdsConfig `yaml:"thresholds"`
	Costs      costsConfig      `yaml:"costs"`
	Search     searchConfig     `yaml:"search"`
	Render     renderConfig     `yaml:"render"`
}

type markerRuleConfig struct {
	DominantMin uint8 `yaml:"dominant_min"`
	OthersMax   uint8 `yaml:"others_max"`
}

type thresholdsConfig struct {
	Start         markerRuleConfig `yaml:"start"`
	End           markerRuleConfig `yaml:"end"`
	RampTolerance uint8            `yaml:"ramp_tolerance"`
	RampBandMin   uint8            `yaml:"ramp_band_min"`
	RampBandMax   uint8            `yaml:"ramp_band_max"`
	AbyssMax      uint8            `yaml:"abyss_max"`
	SandFloor     float64          `yaml:"sand_floor"`
	MountainFloor float64          `yaml:"mountain_floor"`
}

type costsConfig struct {
	Sand     float64 `yaml:"sand"`
	Mountain float64 `yaml:"mountain"`
	Ramp     float64 `yaml:"ramp"`
}

type searchConfig struct {
	Step          int     `yaml:"step"`
	Directions    int     `yaml:"directions"` // 4 or 8
	MaxIterations int     `yaml:"max_iterations"`
	GoalRadius    float64 `yaml:"goal_radius"`
}

type renderConfig struct {
	LineWidth    int `yaml:"line_width"`
	MarkerRadius int `yaml:"marker_radius"`
}

// defaultConfig mirrors the library defaults into the YAML-facing shape.
func defaultConfig() fileConfig {
	th := terrain.DefaultThresholds()
	costs := policy.DefaultCosts()
	ro := render.DefaultOptions()

	return fileConfig{
		Thresholds: thresholdsConfig{
			Start:         markerRuleConfig{DominantMin: th.StartRule.DominantMin, OthersMax: th.StartRule.OthersMax},
			End:           markerRuleConfig{DominantMin: th.EndRule.DominantMin, OthersMax: th.EndRule.OthersMax},
			RampTolerance: th.RampTolerance,
			RampBandMin:   th.RampBandMin,
			RampBandMax:   th.RampBandMax,
			AbyssMax:      th.AbyssMax,
			SandFloor:     th.SandFloor,
			MountainFloor: th.MountainFloor,
		},
		Costs: costsConfig{Sand: costs.Sand, Mountain: costs.Mountain, Ramp: costs.Ramp},
		Search: searchConfig{
			Step:          astar.DefaultStep,
			Directions:    8,
			MaxIterations: astar.DefaultMaxIterations,
			GoalRadius:    0,
		},
		Render: renderConfig{LineWidth: ro.LineWidth, MarkerRadius: ro.MarkerRadius},
	}
}

// loadConfig merges the YAML file at path over cfg in place.
func loadConfig(path string, cfg *fileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

// thresholds converts the YAML shape back into terrain.Thresholds.
func (c fileConfig) thresholds() terrain.Thresholds {
	return terrain.Thresholds{
		StartRule:     terrain.MarkerRule{DominantMin: c.Thresholds.Start.DominantMin, OthersMax: c.Thresholds.Start.OthersMax},
		EndRule:       terrain.MarkerRule{DominantMin: c.Thresholds.End.DominantMin, OthersMax: c.Thresholds.End.OthersMax},
		RampTolerance: c.Thresholds.RampTolerance,
		RampBandMin:   c.Thresholds.RampBandMin,
		RampBandMax:   c.Thresholds.RampBandMax,
		AbyssMax:      c.Thresholds.AbyssMax,
		SandFloor:     c.Thresholds.SandFloor,
		MountainFloor: c.Thresholds.MountainFloor,
	}
}

// searchOptions converts the YAML shape into astar functional options.
func (c fileConfig) searchOptions() ([]astar.Option, error) {
	if c.Search.Step <= 0 {
		return nil, fmt.Errorf("config: step must be positive, got %d", c.Search.Step)
	}
	if c.Search.MaxIterations <= 0 {
		return nil, fmt.Errorf("config: max_iterations must be positive, got %d", c.Search.MaxIterations)
	}

	opts := []astar.Option{
		astar.WithStep(c.Search.Step),
		astar.WithMaxIterations(c.Search.MaxIterations),
		astar.WithCosts(policy.Costs{Sand: c.Costs.Sand, Mountain: c.Costs.Mountain, Ramp: c.Costs.Ramp}),
	}

	switch c.Search.Directions {
	case 8:
		opts = append(opts, astar.WithDirections(astar.Dir8))
	case 4:
		opts = append(opts, astar.WithDirections(astar.Dir4))
	default:
		return nil, fmt.Errorf("config: directions must be 4 or 8, got %d", c.Search.Directions)
	}

	if c.Search.GoalRadius < 0 {
		return nil, fmt.Errorf("config: goal_radius must be non-negative, got %g", c.Search.GoalRadius)
	}
	if c.Search.GoalRadius > 0 {
		opts = append(opts, astar.WithGoalRadius(c.Search.GoalRadius))
	}

	return opts, nil
}

// renderOptions converts the YAML shape into render.Options.
func (c fileConfig) renderOptions() render.Options {
	o := render.DefaultOptions()
	if c.Render.LineWidth > 0 {
		o.LineWidth = c.Render.LineWidth
	}
	if c.Render.MarkerRadius >= 0 {
		o.MarkerRadius = c.Render.MarkerRadius
	}

	return o
}
