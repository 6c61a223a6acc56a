package astar_test

import (
	"fmt"

	"github.com/atlasvia/terrapath/astar"
	"github.com/atlasvia/terrapath/terrain"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Find
////////////////////////////////////////////////////////////////////////////////

// ExampleFind routes across a small open sand grid.
// Scenario:
//
//   - 20×20 grid, all Sand, Start marker at (2,2), End marker at (17,17)
//   - Step 3, 8-directional movement, default costs
//   - The search terminates when a popped node enters the goal radius and
//     snaps the tail onto the exact end centroid.
func ExampleFind() {
	cells := make([][]terrain.Category, 20)
	for y := range cells {
		row := make([]terrain.Category, 20)
		for x := range row {
			row[x] = terrain.Sand
		}
		cells[y] = row
	}
	cells[2][2] = terrain.Start
	cells[17][17] = terrain.End

	g, _ := terrain.FromCategories(cells)
	path, _, err := astar.Find(g, astar.WithStep(3))

	fmt.Println("found:", err == nil)
	fmt.Println("starts at start marker:", path[0] == g.StartCenter())
	fmt.Println("ends at end marker:", path[len(path)-1] == g.EndCenter())

	// Output:
	// found: true
	// starts at start marker: true
	// ends at end marker: true
}
