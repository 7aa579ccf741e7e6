package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatplan/internal/database"
	"seatplan/internal/model"
	"seatplan/internal/repository"
)

// openTestDB opens a fresh in-memory store for one test.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMemberRepoUpsertAndList(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewMemberRepo(db)
	ctx := context.Background()

	members := []model.Member{
		{ID: "m2", FirstName: "Dana", LastName: "Levi", DisplayName: "Dana", RoomID: "main"},
		{ID: "m1", FirstName: "Avi", LastName: "Cohen", DisplayName: "Avi", RoomID: "side"},
	}
	require.NoError(t, repo.Upsert(ctx, members))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Avi", got[0].DisplayName, "listing is ordered by display name")
	assert.Equal(t, "Dana", got[1].DisplayName)

	// Upserting the same id replaces the row.
	require.NoError(t, repo.Upsert(ctx, []model.Member{
		{ID: "m1", FirstName: "Avi", LastName: "Cohen", DisplayName: "Avi C.", RoomID: "main"},
	}))
	got, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Avi C.", got[0].DisplayName)
	assert.Equal(t, "main", got[0].RoomID)
}

func TestMemberRepoUpsertEmptyBatch(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewMemberRepo(db)
	assert.NoError(t, repo.Upsert(context.Background(), nil))
}

func TestMemberRepoUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewMemberRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, []model.Member{
		{ID: "m1", DisplayName: "Avi", RoomID: "main"},
	}))
	require.NoError(t, repo.Update(ctx, model.Member{
		ID: "m1", FirstName: "Avi", DisplayName: "Avi Cohen", RoomID: "side",
	}))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Avi Cohen", got[0].DisplayName)
	assert.Equal(t, "side", got[0].RoomID)

	err = repo.Update(ctx, model.Member{ID: "ghost", DisplayName: "x"})
	assert.ErrorIs(t, err, repository.ErrMemberNotFound)
}

func TestMemberRepoDelete(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewMemberRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, []model.Member{{ID: "m1", DisplayName: "Avi"}}))
	require.NoError(t, repo.Delete(ctx, "m1"))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.ErrorIs(t, repo.Delete(ctx, "m1"), repository.ErrMemberNotFound)
}
