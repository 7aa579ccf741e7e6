package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatplan/internal/layout"
	"seatplan/internal/model"
	"seatplan/internal/repository"
)

func TestLayoutRepoGetMissingYearReturnsDefault(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewLayoutRepo(db)

	l, err := repo.Get(context.Background(), 2026)
	require.NoError(t, err)
	assert.Equal(t, layout.NewDefault(), l)
}

func TestLayoutRepoSaveAndGetRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewLayoutRepo(db)
	ctx := context.Background()

	l := layout.NewDefault()
	l.AddRow("")
	seatA := l.Tables[0].SeatIDs[0]
	l.AssignMember(seatA, "m1")

	require.NoError(t, repo.Save(ctx, 2026, l))

	got, err := repo.Get(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, l, got, "snapshots survive the round trip structurally intact")
}

func TestLayoutRepoSnapshots(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewLayoutRepo(db)
	ctx := context.Background()

	l := layout.NewDefault()
	l.AddRow("")
	require.NoError(t, repo.Save(ctx, 2025, l))
	require.NoError(t, repo.Save(ctx, 2024, layout.NewDefault()))

	snaps, err := repo.Snapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, 2024, snaps[0].Year, "oldest first")
	assert.Equal(t, 2025, snaps[1].Year)
	assert.Len(t, snaps[1].Tables, 2)
}

func TestLayoutRepoHistory(t *testing.T) {
	db := openTestDB(t)
	layouts := repository.NewLayoutRepo(db)
	members := repository.NewMemberRepo(db)
	ctx := context.Background()

	require.NoError(t, members.Upsert(ctx, []model.Member{
		{ID: "m1", DisplayName: "Avi"},
		{ID: "m2", DisplayName: "Dana"},
	}))

	save := func(year int, memberID string) {
		l := layout.NewDefault()
		l.AddRow("")
		l.AssignMember(l.Tables[0].SeatIDs[0], memberID)
		require.NoError(t, layouts.Save(ctx, year, l))
	}
	save(2024, "m1")
	save(2025, "m1")
	save(2026, "m2")

	// Filtered by member: years descending, no display name join.
	rows, err := layouts.History(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2025, rows[0].Year)
	assert.Equal(t, 2024, rows[1].Year)
	assert.Equal(t, "COL1 - S1", rows[0].SeatLabel)
	assert.Empty(t, rows[0].DisplayName)

	// Unfiltered: every assignment joined with the roster.
	rows, err = layouts.History(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 2026, rows[0].Year)
	assert.Equal(t, "Dana", rows[0].DisplayName)
	assert.Equal(t, "m2", rows[0].MemberID)
}

func TestLayoutRepoSaveRewritesAssignments(t *testing.T) {
	db := openTestDB(t)
	layouts := repository.NewLayoutRepo(db)
	ctx := context.Background()

	l := layout.NewDefault()
	l.AddRow("")
	l.AssignMember(l.Tables[0].SeatIDs[0], "m1")
	require.NoError(t, layouts.Save(ctx, 2026, l))

	// Re-save the year with the seat freed; the stale index row must go.
	l.UnassignSeat(l.Tables[0].SeatIDs[0])
	require.NoError(t, layouts.Save(ctx, 2026, l))

	rows, err := layouts.History(ctx, "m1")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
