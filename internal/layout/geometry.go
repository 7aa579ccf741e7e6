// Package layout implements the seating grid engine: the geometry rules that
// place columns, tables and seats on the canvas, the mutation operations that
// edit them, the occupancy/history projector and the drag-and-drop intent
// resolver.  Everything in this package is pure in-memory state; persistence
// lives in internal/repository.
package layout

import (
	"fmt"
	"math"
	"strings"
)

// Geometry constants.  SeatWidth is the horizontal footprint of one seat
// inside a table, ColumnGap separates the end of one column from the start of
// the next, RowHeight is the vertical distance between rows and SeatOffsetY
// is where seats sit relative to their table's top edge.  BaseOffset is the
// origin of the first column and the first row.
const (
	GridSize    float64 = 24  // snapping unit for pointer-driven coordinates
	SeatWidth   float64 = 100 // px per seat
	ColumnGap   float64 = 184 // px between columns
	RowHeight   float64 = 144 // px between rows
	SeatOffsetY float64 = 44  // seat y relative to table y
	BaseOffset  float64 = 100 // origin of the grid
)

// Clustering tolerances.  Row identity is tolerance based rather than exact
// because coordinates drift under repeated float arithmetic; the constants
// live here so the same tolerance is applied everywhere instead of ad hoc.
const (
	RowTolerance     float64 = 10 // moveRow clusters tables within this distance
	GridRowTolerance float64 = 20 // the PDF grid aligner buckets rows within this distance
)

// Snap rounds a coordinate to the nearest multiple of GridSize.  It is
// applied to pointer-drag deltas and free placements; structural spacing
// (column offsets, row steps) is computed exactly so that the cascade
// arithmetic of UpdateColumnSeats stays reversible.
func Snap(v float64) float64 {
	return math.Round(v/GridSize) * GridSize
}

// NextColumnOffset returns the x offset at which a newly appended column
// should start: BaseOffset when no columns exist, otherwise one SeatWidth per
// seat past the last column plus ColumnGap.  Offsets produced this way are
// strictly increasing and never overlap.
func NextColumnOffset(configs []ColumnConfig) float64 {
	if len(configs) == 0 {
		return BaseOffset
	}
	last := configs[len(configs)-1]
	return last.XOffset + float64(last.SeatsPerTable)*SeatWidth + ColumnGap
}

// SeatLabel formats the display label for the seat at 0-based index si
// within a column, e.g. SeatLabel("col1", 0) == "COL1 - S1".
func SeatLabel(columnID string, si int) string {
	return fmt.Sprintf("%s - S%d", strings.ToUpper(columnID), si+1)
}

// TableLabel formats the display label for a table at vertical position y,
// e.g. "Row 2 - COL1".
func TableLabel(y float64, columnID string) string {
	return fmt.Sprintf("Row %d - %s", int(math.Floor(y/RowHeight))+1, strings.ToUpper(columnID))
}

// RowBucket maps a y coordinate down to its row bucket (the nearest lower
// multiple of RowHeight).  AddColumn uses it to enumerate the rows that must
// retroactively gain a table.
func RowBucket(y float64) float64 {
	return y - math.Mod(y, RowHeight)
}

// SameRow reports whether two y coordinates belong to the same row under the
// given tolerance.
func SameRow(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}
