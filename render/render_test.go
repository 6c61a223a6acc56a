package render_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/atlasvia/terrapath/render"
	"github.com/atlasvia/terrapath/terrain"
)

// solidImage returns a w×h image filled with c.
func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	return img
}

// TestFromImage converts pixels and normalizes a non-zero bounds origin.
func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22)) // 3×2, origin (10,20)
	img.SetRGBA(10, 20, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetRGBA(12, 21, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	pixels := render.FromImage(img)
	if len(pixels) != 2 || len(pixels[0]) != 3 {
		t.Fatalf("dimensions = %d×%d; want 2 rows × 3 cols", len(pixels), len(pixels[0]))
	}
	if got := (terrain.RGB{R: 1, G: 2, B: 3}); pixels[0][0] != got {
		t.Errorf("pixels[0][0] = %v; want %v", pixels[0][0], got)
	}
	if got := (terrain.RGB{R: 200, G: 100, B: 50}); pixels[1][2] != got {
		t.Errorf("pixels[1][2] = %v; want %v", pixels[1][2], got)
	}
}

// TestDraw_EmptyPath rejects an empty waypoint sequence.
func TestDraw_EmptyPath(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{A: 255})
	if _, err := render.Draw(img, nil, render.DefaultOptions()); !errors.Is(err, render.ErrEmptyPath) {
		t.Errorf("Draw(empty) error = %v; want ErrEmptyPath", err)
	}
}

// TestDraw_StrokesPath draws a horizontal segment and expects every pixel
// along it to carry the stroke color.
func TestDraw_StrokesPath(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img := solidImage(20, 20, white)

	o := render.DefaultOptions()
	o.MarkerRadius = 0
	path := terrain.Path{{X: 3, Y: 10}, {X: 15, Y: 10}}

	out, err := render.Draw(img, path, o)
	if err != nil {
		t.Fatalf("Draw error: %v", err)
	}
	for x := 3; x <= 15; x++ {
		if got := out.RGBAAt(x, 10); got != o.Color {
			t.Errorf("pixel (%d,10) = %v; want stroke color %v", x, got, o.Color)
		}
	}
}

// TestDraw_SourceUntouched verifies Draw works on a copy: the input image
// keeps its original pixels.
func TestDraw_SourceUntouched(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img := solidImage(20, 20, white)

	path := terrain.Path{{X: 0, Y: 0}, {X: 19, Y: 19}}
	if _, err := render.Draw(img, path, render.DefaultOptions()); err != nil {
		t.Fatalf("Draw error: %v", err)
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if got := img.RGBAAt(x, y); got != white {
				t.Fatalf("source pixel (%d,%d) mutated to %v", x, y, got)
			}
		}
	}
}

// TestDraw_MarkerDiscs expects waypoint discs to spill beyond the 1px line.
func TestDraw_MarkerDiscs(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img := solidImage(20, 20, white)

	o := render.DefaultOptions() // MarkerRadius 2
	path := terrain.Path{{X: 10, Y: 10}}

	out, err := render.Draw(img, path, o)
	if err != nil {
		t.Fatalf("Draw error: %v", err)
	}
	if got := out.RGBAAt(10, 8); got != o.Color {
		t.Errorf("disc pixel (10,8) = %v; want %v", got, o.Color)
	}
	if got := out.RGBAAt(10, 12); got != o.Color {
		t.Errorf("disc pixel (10,12) = %v; want %v", got, o.Color)
	}
}
