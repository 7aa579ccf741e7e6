package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seatplan/internal/layout"
)

func TestValidateAcceptsEngineOutput(t *testing.T) {
	l := layout.NewDefault()
	assert.NoError(t, layout.Validate(l))

	l.AddRow("")
	l.AddColumn("", 2)
	l.UpdateColumnSeats("col1", 3)
	l.AddObject("")
	assert.NoError(t, layout.Validate(l))
}

func TestValidateRejectsMalformedSnapshots(t *testing.T) {
	base := func() layout.Layout {
		l := layout.NewDefault()
		l.AddRow("")
		return l
	}

	cases := []struct {
		name   string
		mutate func(l *layout.Layout)
	}{
		{"duplicate item id", func(l *layout.Layout) {
			l.Items = append(l.Items, l.Items[0])
		}},
		{"duplicate table id", func(l *layout.Layout) {
			l.Tables = append(l.Tables, l.Tables[0])
		}},
		{"seat without table", func(l *layout.Layout) {
			l.Items[0].TableID = ""
		}},
		{"seat with unknown table", func(l *layout.Layout) {
			l.Items[0].TableID = "ghost"
		}},
		{"object referencing a table", func(l *layout.Layout) {
			l.Items = append(l.Items, layout.Item{
				ID: "obj-1", Type: layout.TypeObject, TableID: l.Tables[0].ID,
			})
		}},
		{"table listing unknown seat", func(l *layout.Layout) {
			l.Tables[0].SeatIDs = append(l.Tables[0].SeatIDs, "ghost")
		}},
		{"member seated twice", func(l *layout.Layout) {
			l.Items[0].MemberID = "m1"
			l.Items[1].MemberID = "m1"
		}},
		{"overlapping columns", func(l *layout.Layout) {
			l.Columns[1].XOffset = l.Columns[0].XOffset + 50
		}},
		{"unknown item type", func(l *layout.Layout) {
			l.Items[0].Type = "banana"
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := base()
			tc.mutate(&l)
			assert.Error(t, layout.Validate(l))
		})
	}
}

func TestValidateAllowsCompressedGap(t *testing.T) {
	// MoveColumn may legally pull a column closer than the standard gap as
	// long as seat footprints never overlap.
	l := layout.NewDefault()
	l.AddRow("")
	l.MoveColumn("col2", -170) // snapped to -168, offset 316 >= 100+200
	assert.NoError(t, layout.Validate(l))
}
