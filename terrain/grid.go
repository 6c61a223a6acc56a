package terrain

// Grid is the classified map. It is immutable once built: categories are
// assigned during construction and never change afterwards, so a single
// search run may read it freely without synchronization.
type Grid struct {
	width, height int
	cells         []Category // row-major: cells[y*width+x]
	start, end    Position
	counts        [NumCategories]int
}

// BuildGrid scans every pixel once, classifies it with th, and accumulates
// running coordinate sums for Start and End pixels so marker centers are
// computed in constant extra memory.
//
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input, and
// ErrNoStartMarker / ErrNoEndMarker when the respective category has zero
// pixels. A grid is never returned together with an error, so every *Grid
// carries valid marker centers.
//
// Complexity: O(W×H) time, O(W×H) memory.
func BuildGrid(pixels [][]RGB, th Thresholds) (*Grid, error) {
	if len(pixels) == 0 || len(pixels[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(pixels), len(pixels[0])
	for _, row := range pixels {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]Category, w*h),
	}

	// Centroid accumulators for the two marker categories.
	var sumSX, sumSY, sumEX, sumEY int

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cat := Classify(pixels[y][x], th)
			g.cells[y*w+x] = cat
			g.counts[cat]++
			switch cat {
			case Start:
				sumSX += x
				sumSY += y
			case End:
				sumEX += x
				sumEY += y
			}
		}
	}

	return g.finalize(sumSX, sumSY, sumEX, sumEY)
}

// FromCategories builds a Grid directly from pre-classified cells. It is the
// programmatic counterpart of BuildGrid for callers (and tests) that already
// hold categories rather than pixel colors. The input is copied; marker
// centers are derived exactly as in BuildGrid.
//
// Complexity: O(W×H) time and memory.
func FromCategories(cells [][]Category) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]Category, w*h),
	}

	var sumSX, sumSY, sumEX, sumEY int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cat := cells[y][x]
			g.cells[y*w+x] = cat
			g.counts[cat]++
			switch cat {
			case Start:
				sumSX += x
				sumSY += y
			case End:
				sumEX += x
				sumEY += y
			}
		}
	}

	return g.finalize(sumSX, sumSY, sumEX, sumEY)
}

// finalize validates marker presence and derives the integer-truncated
// centroids. Marker absence is fatal: no partial grid is handed to search.
func (g *Grid) finalize(sumSX, sumSY, sumEX, sumEY int) (*Grid, error) {
	nStart := g.counts[Start]
	nEnd := g.counts[End]
	if nStart == 0 {
		return nil, ErrNoStartMarker
	}
	if nEnd == 0 {
		return nil, ErrNoEndMarker
	}
	g.start = Position{X: sumSX / nStart, Y: sumSY / nStart}
	g.end = Position{X: sumEX / nEnd, Y: sumEY / nEnd}

	return g, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// At returns the category of cell (x,y). The caller must ensure (x,y) is
// in bounds; see InBounds.
func (g *Grid) At(x, y int) Category {
	return g.cells[y*g.width+x]
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// StartCenter returns the integer-truncated centroid of all Start pixels.
func (g *Grid) StartCenter() Position { return g.start }

// EndCenter returns the integer-truncated centroid of all End pixels.
func (g *Grid) EndCenter() Position { return g.end }

// CategoryCounts returns the number of cells per category, indexed by
// Category value. Useful for terrain-distribution diagnostics.
func (g *Grid) CategoryCounts() [NumCategories]int { return g.counts }
