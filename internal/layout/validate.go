package layout

import "fmt"

// Validate checks the structural invariants of a snapshot before it is
// persisted.  It is the schema gate at the persistence boundary: malformed
// snapshots are rejected here instead of reaching the mutation engine on the
// next load.
//
// Checked invariants:
//   - item and table ids are unique
//   - every seat item references a table present in the snapshot
//   - object items never reference a table
//   - every table SeatIDs entry resolves to a seat item in the snapshot
//   - no two items share a member assignment
//   - column x offsets are monotonically increasing and never overlap
func Validate(l Layout) error {
	tables := make(map[string]bool, len(l.Tables))
	for _, t := range l.Tables {
		if t.ID == "" {
			return fmt.Errorf("table with empty id")
		}
		if tables[t.ID] {
			return fmt.Errorf("duplicate table id %q", t.ID)
		}
		tables[t.ID] = true
	}

	items := make(map[string]Item, len(l.Items))
	for _, it := range l.Items {
		if it.ID == "" {
			return fmt.Errorf("item with empty id")
		}
		if _, dup := items[it.ID]; dup {
			return fmt.Errorf("duplicate item id %q", it.ID)
		}
		items[it.ID] = it
		switch it.Type {
		case TypeSeat:
			if it.TableID == "" {
				return fmt.Errorf("seat %q has no table", it.ID)
			}
			if !tables[it.TableID] {
				return fmt.Errorf("seat %q references unknown table %q", it.ID, it.TableID)
			}
		case TypeObject:
			if it.TableID != "" {
				return fmt.Errorf("object %q references table %q", it.ID, it.TableID)
			}
		default:
			return fmt.Errorf("item %q has unknown type %q", it.ID, it.Type)
		}
	}

	for _, t := range l.Tables {
		for _, id := range t.SeatIDs {
			it, ok := items[id]
			if !ok {
				return fmt.Errorf("table %q references unknown seat %q", t.ID, id)
			}
			if it.Type != TypeSeat {
				return fmt.Errorf("table %q lists non-seat item %q", t.ID, id)
			}
		}
	}

	assigned := make(map[string]string)
	for _, it := range l.Items {
		if it.MemberID == "" {
			continue
		}
		if prev, ok := assigned[it.MemberID]; ok {
			return fmt.Errorf("member %q assigned to both %q and %q", it.MemberID, prev, it.ID)
		}
		assigned[it.MemberID] = it.ID
	}

	// Offsets must increase and column footprints must not overlap.  The gap
	// itself may compress when a column has been nudged with MoveColumn, so
	// only the seat footprint is enforced here; the full gap invariant is a
	// property of the recompute operations, covered by their tests.
	for i := 1; i < len(l.Columns); i++ {
		prev := l.Columns[i-1]
		min := prev.XOffset + float64(prev.SeatsPerTable)*SeatWidth
		if l.Columns[i].XOffset < min {
			return fmt.Errorf("column %q overlaps column %q", l.Columns[i].ID, prev.ID)
		}
	}
	return nil
}
