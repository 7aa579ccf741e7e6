package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatplan/internal/layout"
	"seatplan/internal/model"
)

// snapshotWithOccupant builds a one-seat snapshot for history projection
// tests.
func snapshotWithOccupant(year int, seatLabel, memberID string) layout.Snapshot {
	return layout.Snapshot{
		Year: year,
		Layout: layout.Layout{
			Items: []layout.Item{{
				ID:       "seat-t1-0",
				Type:     layout.TypeSeat,
				Label:    seatLabel,
				TableID:  "t1",
				MemberID: memberID,
			}},
			Tables: []layout.Table{{ID: "t1", SeatIDs: []string{"seat-t1-0"}}},
		},
	}
}

func TestProjectBySeatLabel(t *testing.T) {
	members := []model.Member{
		{ID: "m1", DisplayName: "Avi"},
		{ID: "m2", DisplayName: "Dana"},
	}
	snapshots := []layout.Snapshot{
		snapshotWithOccupant(2024, "COL1 - S1", "m1"),
		snapshotWithOccupant(2025, "COL1 - S1", "m2"),
		snapshotWithOccupant(2023, "COL1 - S1", "m1"),
	}

	history := layout.ProjectBySeatLabel(snapshots, members)
	entries := history["COL1 - S1"]
	require.Len(t, entries, 3)
	assert.Equal(t, layout.SeatOccupant{Year: 2025, DisplayName: "Dana"}, entries[0], "latest year first")
	assert.Equal(t, layout.SeatOccupant{Year: 2024, DisplayName: "Avi"}, entries[1])
	assert.Equal(t, layout.SeatOccupant{Year: 2023, DisplayName: "Avi"}, entries[2])
}

func TestProjectBySeatLabelSkipsUnresolvedMembers(t *testing.T) {
	snapshots := []layout.Snapshot{snapshotWithOccupant(2024, "COL1 - S1", "ghost")}
	history := layout.ProjectBySeatLabel(snapshots, nil)
	assert.Empty(t, history)
}

func TestProjectByMember(t *testing.T) {
	snapshots := []layout.Snapshot{
		snapshotWithOccupant(2023, "COL1 - S1", "m1"),
		snapshotWithOccupant(2024, "COL2 - S2", "m1"),
		snapshotWithOccupant(2025, "COL1 - S1", "m2"),
	}

	visits := layout.ProjectByMember(snapshots, "m1")
	require.Len(t, visits, 2)
	assert.Equal(t, layout.SeatVisit{Year: 2024, SeatLabel: "COL2 - S2"}, visits[0])
	assert.Equal(t, layout.SeatVisit{Year: 2023, SeatLabel: "COL1 - S1"}, visits[1])

	assert.Empty(t, layout.ProjectByMember(snapshots, "nobody"))
}
