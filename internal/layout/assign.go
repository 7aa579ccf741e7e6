package layout

import (
	"sort"
	"strings"

	"seatplan/internal/model"
)

// Occupant operations.  Assignment is a partial injective function from
// members to seats within one layout: at most one seat references a given
// member, and every operation here preserves that.

// AssignMember seats a member on the given seat.  If the member was already
// seated elsewhere that seat is cleared (a move, not a duplicate).  Whatever
// the target seat previously held is overwritten.  Unknown or non-seat
// targets are no-ops.
func (l *Layout) AssignMember(seatID, memberID string) {
	target := l.item(seatID)
	if target == nil || target.Type != TypeSeat || memberID == "" {
		return
	}
	for i := range l.Items {
		if l.Items[i].MemberID == memberID {
			l.Items[i].MemberID = ""
		}
	}
	target.MemberID = memberID
}

// UnassignSeat clears the occupant of a seat, returning the member to the
// unassigned pool.
func (l *Layout) UnassignSeat(seatID string) {
	if it := l.item(seatID); it != nil {
		it.MemberID = ""
	}
}

// SwapOccupants performs a true swap between two seats: the target receives
// the source's occupant and the source receives whatever the target held,
// including the empty case.  A source without an occupant is a no-op.
func (l *Layout) SwapOccupants(srcID, dstID string) {
	src := l.item(srcID)
	dst := l.item(dstID)
	if src == nil || dst == nil || src == dst || src.MemberID == "" {
		return
	}
	src.MemberID, dst.MemberID = dst.MemberID, src.MemberID
}

// ApplyTextGrid aligns extracted text lines to the table grid and assigns
// matched members, the way the PDF import flow does.  Line i maps to grid
// row i (tables bucketed by y proximity, rows top to bottom) and cell j
// within a line maps to table j within that row (left to right).  A matched
// member lands on the first seat of the aligned table; unmatched cells are
// left untouched.  Returns the number of seats assigned.
func (l *Layout) ApplyTextGrid(lines []string, members []model.Member) int {
	grid := make([]Table, len(l.Tables))
	copy(grid, l.Tables)
	sort.Slice(grid, func(i, j int) bool {
		if grid[i].Y != grid[j].Y {
			return grid[i].Y < grid[j].Y
		}
		return grid[i].X < grid[j].X
	})

	var rows [][]Table
	for _, t := range grid {
		placed := false
		for i := range rows {
			if SameRow(rows[i][0].Y, t.Y, GridRowTolerance) {
				rows[i] = append(rows[i], t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, []Table{t})
		}
	}

	assigned := 0
	for ri, row := range rows {
		if ri >= len(lines) {
			break
		}
		cells := strings.Split(lines[ri], "|")
		sort.Slice(row, func(i, j int) bool { return row[i].X < row[j].X })
		for ci, t := range row {
			if ci >= len(cells) {
				break
			}
			m, ok := matchMember(members, strings.TrimSpace(cells[ci]))
			if !ok || len(t.SeatIDs) == 0 {
				continue
			}
			l.AssignMember(t.SeatIDs[0], m.ID)
			assigned++
		}
	}
	return assigned
}

// matchMember finds the first member whose display name is a case-insensitive
// substring of the cell text or vice versa.  Empty cells and empty display
// names never match.
func matchMember(members []model.Member, cell string) (model.Member, bool) {
	needle := strings.ToLower(cell)
	if needle == "" {
		return model.Member{}, false
	}
	for _, m := range members {
		name := strings.ToLower(m.DisplayName)
		if name == "" {
			continue
		}
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return m, true
		}
	}
	return model.Member{}, false
}
