package trajectory

// The tarp grid is 8x8 feet, one square per foot, centred on the plate
// horizontally with the bottom edge on the ground.
const (
	GridSize       = 8
	GridHalfWidth  = GridSize / 2
	GridMarkerCols = 7 // interior intersections across
	GridMarkerRows = 6 // interior intersections down, starting one square from the top
)

// GridCell maps a coordinate onto the tarp grid.
// col runs left to right and row top to bottom, both in squares from the grid's
// top-left corner. ok is false if the coordinate is not finite or falls outside
// the grid.
func GridCell(c TarpCoordinate) (col, row float64, ok bool) {
	if !c.IsFinite() {
		return 0, 0, false
	}
	col = c.Horizontal + GridHalfWidth
	row = GridSize - c.Vertical
	if col < 0 || col > GridSize || row < 0 || row > GridSize {
		return col, row, false
	}
	return col, row, true
}

// IsMarker reports whether the grid intersection (col, row) carries a '+' marker
func IsMarker(col, row int) bool {
	return col >= 1 && col <= GridMarkerCols && row >= 1 && row <= GridMarkerRows
}
