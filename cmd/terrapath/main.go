// Command terrapath routes across a terrain map image: it classifies the
// pixels, finds a cost-aware path between the green start and red end
// markers, simplifies it, and writes a copy of the image with the path
// drawn on top.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// Register decoders for the supported input formats.
	_ "image/jpeg"

	_ "github.com/jbuchbinder/gopnm"
	"github.com/spf13/cobra"

	"github.com/atlasvia/terrapath/astar"
	"github.com/atlasvia/terrapath/policy"
	"github.com/atlasvia/terrapath/render"
	"github.com/atlasvia/terrapath/simplify"
	"github.com/atlasvia/terrapath/terrain"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type cliFlags struct {
	input      string
	output     string
	configPath string
	step       int
	dirs       int
	maxIter    int
	lineWidth  int
	rawPath    bool
	quiet      bool
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "terrapath",
		Short: "Find a terrain-legal route across a map image",
		Long: `terrapath classifies every pixel of a map image into terrain
(sand, mountain, ramp, abyss), locates the green start and red end markers,
and searches for a cost-aware path that only crosses between sand and
mountain through ramps. The route is drawn onto a copy of the input image.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input map image (png, jpeg, or pnm)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output image path (default: <input>_route.png)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "optional YAML config with thresholds, costs, and search settings")
	cmd.Flags().IntVar(&f.step, "step", astar.DefaultStep, "lattice step size in pixels")
	cmd.Flags().IntVar(&f.dirs, "directions", 8, "movement directions: 4 or 8")
	cmd.Flags().IntVar(&f.maxIter, "max-iterations", astar.DefaultMaxIterations, "search iteration cap")
	cmd.Flags().IntVar(&f.lineWidth, "line-width", 1, "stroke width of the drawn route")
	cmd.Flags().BoolVar(&f.rawPath, "raw-path", false, "skip waypoint simplification")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress and diagnostics")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func run(cmd *cobra.Command, f *cliFlags) error {
	// Config file first, then explicit flags override it.
	cfg := defaultConfig()
	if f.configPath != "" {
		if err := loadConfig(f.configPath, &cfg); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("step") {
		cfg.Search.Step = f.step
	}
	if cmd.Flags().Changed("directions") {
		cfg.Search.Directions = f.dirs
	}
	if cmd.Flags().Changed("max-iterations") {
		cfg.Search.MaxIterations = f.maxIter
	}
	if cmd.Flags().Changed("line-width") {
		cfg.Render.LineWidth = f.lineWidth
	}

	img, err := decodeImage(f.input)
	if err != nil {
		return err
	}

	grid, err := terrain.BuildGrid(render.FromImage(img), cfg.thresholds())
	if err != nil {
		return fmt.Errorf("classify %s: %w", f.input, err)
	}

	if !f.quiet {
		printDistribution(cmd, grid)
		cmd.Printf("start: %v, end: %v\n", grid.StartCenter(), grid.EndCenter())
	}

	opts, err := cfg.searchOptions()
	if err != nil {
		return err
	}
	if !f.quiet {
		opts = append(opts, astar.WithProgress(func(s astar.Stats) {
			cmd.Printf("explored %d nodes...\n", s.NodesExplored)
		}))
	}

	path, stats, err := astar.Find(grid, opts...)
	if err != nil {
		if errors.Is(err, astar.ErrNoPath) {
			return fmt.Errorf("%w (%d nodes explored)", err, stats.NodesExplored)
		}

		return err
	}

	if !f.rawPath {
		pol := policy.New(policy.Costs{Sand: cfg.Costs.Sand, Mountain: cfg.Costs.Mountain, Ramp: cfg.Costs.Ramp})
		path = simplify.Simplify(grid, pol, path)
	}

	if !f.quiet {
		cmd.Printf("path found: %d waypoints, %d nodes explored\n", len(path), stats.NodesExplored)
		for i, p := range path {
			cmd.Printf("  %d: (%d, %d) - %s\n", i+1, p.X, p.Y, grid.At(p.X, p.Y))
		}
	}

	out, err := render.Draw(img, path, cfg.renderOptions())
	if err != nil {
		return err
	}

	outPath := f.output
	if outPath == "" {
		ext := filepath.Ext(f.input)
		outPath = strings.TrimSuffix(f.input, ext) + "_route.png"
	}
	if err := writePNG(outPath, out); err != nil {
		return err
	}
	if !f.quiet {
		cmd.Printf("saved: %s\n", outPath)
	}

	return nil
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return img, nil
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return nil
}

func printDistribution(cmd *cobra.Command, grid *terrain.Grid) {
	counts := grid.CategoryCounts()
	total := grid.Width() * grid.Height()
	cmd.Println("terrain distribution:")
	for c := terrain.Category(0); c < terrain.NumCategories; c++ {
		if counts[c] == 0 {
			continue
		}
		cmd.Printf("  %s: %d pixels (%.1f%%)\n", c, counts[c], 100*float64(counts[c])/float64(total))
	}
}
