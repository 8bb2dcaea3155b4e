// Package render turns a solved grid.Grid into drawable geometry.
//
// What:
//
//   - Unit shapes: SquareUnitPoints, HexUnitPoints (flat-topped) and
//     TriangleUnitPoints, with vertex indices fixed per shape.
//   - Walls: OrthogonalWalls, SigmaWalls and DeltaWalls return the vertex
//     index pairs to stroke for one cell, i.e. the sides without a passage.
//   - Heatmap: ShadeIndex buckets a distance into one of ten shades;
//     Heatmap applies it to every cell.
//   - SolutionOrder: the solution cells the player has not yet walked, in
//     distance order.
//   - SVG: a complete picture of any family.
//
// Edge indices:
//
//	square   North 0-1  East 1-2  South 2-3  West 3-0
//	hex      North 0-1  Northeast 1-2  Southeast 2-3  South 3-4  Southwest 4-5  Northwest 5-0
//	up  ▲    West 0-1   East 0-2   South 1-2
//	down ▼   North 0-1  West 0-2   East 1-2
//
// SigmaWalls only reports sides shared with an in-bounds neighbor; SVG adds
// the outer border itself.
package render
