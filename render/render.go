// Package render is the thin, external-facing boundary of the pathfinding
// core: it adapts decoded images into the core's pixel-grid input and draws
// a final waypoint sequence onto a copy of the source image.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"

	"github.com/atlasvia/terrapath/terrain"
)

// ErrEmptyPath indicates Draw was handed an empty waypoint sequence.
var ErrEmptyPath = errors.New("render: path must contain at least one waypoint")

// Options controls path rendering.
type Options struct {
	// Color is the stroke color for segments and waypoint markers.
	Color color.RGBA
	// LineWidth is the stroke width in pixels (minimum 1).
	LineWidth int
	// MarkerRadius is the disc radius drawn at each waypoint.
	MarkerRadius int
}

// DefaultOptions returns a 1px blue stroke with small waypoint discs,
// matching the reference output images.
func DefaultOptions() Options {
	return Options{
		Color:        colornames.Blue,
		LineWidth:    1,
		MarkerRadius: 2,
	}
}

// FromImage converts a decoded image into the pixel grid consumed by
// terrain.BuildGrid. Coordinates are normalized so (0,0) is the top-left
// pixel regardless of the image's bounds origin.
//
// Complexity: O(W×H).
func FromImage(img image.Image) [][]terrain.RGB {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	pixels := make([][]terrain.RGB, h)
	for y := 0; y < h; y++ {
		row := make([]terrain.RGB, w)
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x] = terrain.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}
		}
		pixels[y] = row
	}

	return pixels
}

// Draw copies src and strokes the path onto the copy: a line between each
// consecutive waypoint pair plus a disc at every waypoint. The source image
// is never mutated. Waypoints are expected to be valid grid coordinates
// with every consecutive pair a legal transition; Draw does not re-validate.
//
// Returns ErrEmptyPath for an empty sequence.
func Draw(src image.Image, path terrain.Path, o Options) (*image.RGBA, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if o.LineWidth < 1 {
		o.LineWidth = 1
	}

	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)

	for i := 0; i < len(path)-1; i++ {
		strokeLine(out, path[i], path[i+1], o)
	}
	for _, p := range path {
		fillDisc(out, p.X, p.Y, o.LineWidth/2+o.MarkerRadius, o.Color)
	}

	return out, nil
}

// strokeLine plots a Bresenham line from a to b, stamping a disc of half
// the stroke width at each plotted point so wider strokes stay contiguous.
func strokeLine(img *image.RGBA, a, b terrain.Position, o Options) {
	dx := absInt(b.X - a.X)
	dy := -absInt(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	x, y := a.X, a.Y
	e := dx + dy
	for {
		if o.LineWidth == 1 {
			setPixel(img, x, y, o.Color)
		} else {
			fillDisc(img, x, y, o.LineWidth/2, o.Color)
		}
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// fillDisc stamps a filled circle of radius r centered at (cx,cy).
func fillDisc(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	if r < 1 {
		setPixel(img, cx, cy, c)

		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				setPixel(img, cx+dx, cy+dy, c)
			}
		}
	}
}

// setPixel writes one pixel, ignoring out-of-bounds coordinates.
func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if (image.Point{X: x, Y: y}).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
