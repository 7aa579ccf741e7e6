package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seatplan/internal/layout"
)

func TestSnap(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"already snapped", 48, 48},
		{"rounds down", 244, 240},
		{"rounds up", 50, 48},
		{"half rounds away from zero", 12, 24},
		{"small delta collapses to zero", 10, 0},
		{"negative", -50, -48},
		{"zero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, layout.Snap(tc.in))
		})
	}
}

func TestNextColumnOffset(t *testing.T) {
	assert.Equal(t, layout.BaseOffset, layout.NextColumnOffset(nil), "empty grid starts at the base offset")

	cols := layout.NewDefault().Columns
	// col2 sits at 484 with 3 seats: 484 + 300 + 184.
	assert.Equal(t, 968.0, layout.NextColumnOffset(cols))

	one := []layout.ColumnConfig{{ID: "col1", SeatsPerTable: 2, XOffset: 100}}
	assert.Equal(t, 484.0, layout.NextColumnOffset(one))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "COL1 - S1", layout.SeatLabel("col1", 0))
	assert.Equal(t, "COL2 - S3", layout.SeatLabel("col2", 2))

	assert.Equal(t, "Row 1 - COL1", layout.TableLabel(100, "col1"))
	assert.Equal(t, "Row 2 - COL2", layout.TableLabel(244, "col2"))
}

func TestRowBucket(t *testing.T) {
	assert.Equal(t, 0.0, layout.RowBucket(100))
	assert.Equal(t, 144.0, layout.RowBucket(144))
	assert.Equal(t, 144.0, layout.RowBucket(244))
	assert.Equal(t, 288.0, layout.RowBucket(288))
}

func TestSameRow(t *testing.T) {
	assert.True(t, layout.SameRow(100, 108, layout.RowTolerance))
	assert.True(t, layout.SameRow(108, 100, layout.RowTolerance))
	assert.False(t, layout.SameRow(100, 110, layout.RowTolerance), "tolerance bound is exclusive")
	assert.False(t, layout.SameRow(100, 244, layout.RowTolerance))
}
