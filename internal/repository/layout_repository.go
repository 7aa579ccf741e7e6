package repository // repository defines data access for yearly layouts

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"seatplan/internal/layout"
)

// LayoutRepo persists per-year layout snapshots as JSON blobs and maintains
// the denormalized seat_assignments index used by history queries.
type LayoutRepo struct {
	db *sql.DB
}

// NewLayoutRepo constructs a LayoutRepo with the given DB handle.
func NewLayoutRepo(db *sql.DB) *LayoutRepo {
	return &LayoutRepo{db: db}
}

// Get loads the snapshot for one year.  A year with no prior data yields the
// default two-column empty grid rather than an error.
func (r *LayoutRepo) Get(ctx context.Context, year int) (layout.Layout, error) {
	const q = `SELECT items, tables, columns FROM layouts WHERE year = ?`
	var items, tables, columns string
	err := r.db.QueryRowContext(ctx, q, year).Scan(&items, &tables, &columns)
	if err == sql.ErrNoRows {
		return layout.NewDefault(), nil
	}
	if err != nil {
		return layout.Layout{}, err
	}
	return decodeLayout(items, tables, columns)
}

// Save stores a year's snapshot wholesale and rewrites that year's rows of
// the seat-assignment index, all in one transaction: stale assignments never
// survive a save.
func (r *LayoutRepo) Save(ctx context.Context, year int, l layout.Layout) error {
	items, err := json.Marshal(l.Items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	tables, err := json.Marshal(l.Tables)
	if err != nil {
		return fmt.Errorf("encoding tables: %w", err)
	}
	columns, err := json.Marshal(l.Columns)
	if err != nil {
		return fmt.Errorf("encoding columns: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const qLayout = `INSERT OR REPLACE INTO layouts (year, items, tables, columns, updated_at)
	                 VALUES (?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, qLayout, year, string(items), string(tables), string(columns), time.Now().UnixMilli()); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM seat_assignments WHERE year = ?`, year); err != nil {
		return err
	}
	const qAssign = `INSERT OR REPLACE INTO seat_assignments (year, seat_label, member_id) VALUES (?, ?, ?)`
	for _, it := range l.Items {
		if it.Type != layout.TypeSeat || it.MemberID == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, qAssign, year, it.Label, it.MemberID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Snapshots loads every persisted year, oldest first.  The in-memory history
// projector consumes these.
func (r *LayoutRepo) Snapshots(ctx context.Context) ([]layout.Snapshot, error) {
	const q = `SELECT year, items, tables, columns FROM layouts ORDER BY year ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []layout.Snapshot
	for rows.Next() {
		var (
			year                   int
			items, tables, columns string
		)
		if err := rows.Scan(&year, &items, &tables, &columns); err != nil {
			return nil, err
		}
		l, err := decodeLayout(items, tables, columns)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", year, err)
		}
		out = append(out, layout.Snapshot{Year: year, Layout: l})
	}
	return out, rows.Err()
}

// HistoryRow is one row of the seat-assignment history.  DisplayName is only
// populated for unfiltered queries, which join the roster.
type HistoryRow struct {
	Year        int    `json:"year"`
	SeatLabel   string `json:"seatLabel"`
	MemberID    string `json:"memberId,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// History returns seat assignments ordered by year descending.  With a
// memberID it is filtered to that member; without, it returns every
// assignment joined with the member's display name.
func (r *LayoutRepo) History(ctx context.Context, memberID string) ([]HistoryRow, error) {
	if memberID != "" {
		const q = `SELECT year, seat_label FROM seat_assignments
		           WHERE member_id = ?
		           ORDER BY year DESC`
		rows, err := r.db.QueryContext(ctx, q, memberID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var out []HistoryRow
		for rows.Next() {
			var h HistoryRow
			if err := rows.Scan(&h.Year, &h.SeatLabel); err != nil {
				return nil, err
			}
			out = append(out, h)
		}
		return out, rows.Err()
	}

	const q = `SELECT sa.year, sa.seat_label, sa.member_id, m.display_name
	           FROM seat_assignments sa
	           JOIN members m ON sa.member_id = m.id
	           ORDER BY sa.year DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HistoryRow
	for rows.Next() {
		var h HistoryRow
		if err := rows.Scan(&h.Year, &h.SeatLabel, &h.MemberID, &h.DisplayName); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// decodeLayout unpacks the three JSON columns of one layouts row.  A NULL or
// empty columns blob falls back to an empty list for rows written before the
// column configuration was persisted.
func decodeLayout(items, tables, columns string) (layout.Layout, error) {
	var l layout.Layout
	if err := json.Unmarshal([]byte(items), &l.Items); err != nil {
		return layout.Layout{}, fmt.Errorf("decoding items: %w", err)
	}
	if err := json.Unmarshal([]byte(tables), &l.Tables); err != nil {
		return layout.Layout{}, fmt.Errorf("decoding tables: %w", err)
	}
	if columns == "" {
		columns = "[]"
	}
	if err := json.Unmarshal([]byte(columns), &l.Columns); err != nil {
		return layout.Layout{}, fmt.Errorf("decoding columns: %w", err)
	}
	return l, nil
}
