// Package terrain classifies raster pixels into terrain categories and
// builds the immutable grid consumed by the path search engine.
//
// What:
//
//   - Classify maps one RGB pixel to exactly one Category
//     (Sand, Mountain, Ramp, Abyss, Start, End).
//   - BuildGrid scans a rectangular pixel grid once, producing a read-only
//     Grid plus the centroid Positions of the Start and End markers.
//   - FromCategories builds the same Grid from pre-classified cells.
//
// Why:
//
//   - Map images encode terrain as color; path search needs categories.
//   - Marker centroids give the search its start and goal without the caller
//     hand-picking coordinates.
//   - Category counts expose the terrain distribution for diagnostics.
//
// Complexity:
//
//   - Classify:  O(1) per pixel.
//   - BuildGrid: O(W×H) time, O(W×H) memory (single scan, constant-memory
//     centroid accumulation).
//
// Options:
//
//   - Thresholds: all classification cut-offs (marker rules, ramp tolerance
//     and band, abyss ceiling, sand/mountain brightness floors) are plain
//     configuration values; DefaultThresholds matches the atlas images.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStartMarker / ErrNoEndMarker: the respective marker category has
//     zero pixels; construction fails rather than defaulting a center.
package terrain
