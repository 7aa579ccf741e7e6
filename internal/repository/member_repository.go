package repository // repository defines data access for the member roster

import (
	"context"
	"database/sql"
	"time"

	"seatplan/internal/model"
)

// MemberRepo provides methods to create and retrieve roster members.
type MemberRepo struct {
	db *sql.DB
}

// NewMemberRepo constructs a MemberRepo with the given DB handle.
func NewMemberRepo(db *sql.DB) *MemberRepo {
	return &MemberRepo{db: db}
}

// List returns the full roster ordered by display name.
func (r *MemberRepo) List(ctx context.Context) ([]model.Member, error) {
	const q = `SELECT id, first_name, last_name, display_name, room_id
	           FROM members
	           ORDER BY display_name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Member
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.DisplayName, &m.RoomID); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert inserts or replaces a batch of members in one transaction.  The
// CSV import path sends whole files through here.
func (r *MemberRepo) Upsert(ctx context.Context, members []model.Member) error {
	if len(members) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `INSERT OR REPLACE INTO members (id, first_name, last_name, display_name, room_id, created_at)
	           VALUES (?, ?, ?, ?, ?, ?)`
	now := time.Now().UnixMilli()
	for _, m := range members {
		if _, err := tx.ExecContext(ctx, q, m.ID, m.FirstName, m.LastName, m.DisplayName, m.RoomID, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Update rewrites one member's fields.  Returns ErrMemberNotFound when the
// id matches no row.
func (r *MemberRepo) Update(ctx context.Context, m model.Member) error {
	const q = `UPDATE members
	           SET first_name = ?, last_name = ?, display_name = ?, room_id = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, m.FirstName, m.LastName, m.DisplayName, m.RoomID, m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// Delete removes a member by id.  Returns ErrMemberNotFound when the id
// matches no row.
func (r *MemberRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM members WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMemberNotFound
	}
	return nil
}
