package layout

import (
	"fmt"

	"github.com/google/uuid"
)

// Mutation operations.  Every operation transforms {Items, Tables, Columns}
// in place and leaves the layout satisfying the structural invariants checked
// by Validate.  Operations on unknown or stale ids are silent no-ops: the
// in-memory model is locally authoritative, so a stale id simply means the
// entity is already gone.

// AddRow appends one new row to the grid: for every configured column it
// creates a table with freshly labeled seats, one RowHeight below the lowest
// existing element.  Existing rows are not touched.
func (l *Layout) AddRow(roomID string) {
	if roomID == "" {
		roomID = DefaultRoomID
	}
	lastY := BaseOffset
	if y, ok := l.maxY(); ok {
		lastY = y
	}
	newY := lastY + RowHeight
	for _, col := range l.Columns {
		l.appendTable(col, roomID, newY)
	}
}

// AddColumn appends a new column config at NextColumnOffset and retroactively
// creates one table for every existing row bucket, so every row gains a table
// in the new column.  An empty grid still gets one starter row.  Non-positive
// seat counts are rejected silently.
func (l *Layout) AddColumn(roomID string, seats int) {
	if seats <= 0 {
		return
	}
	if roomID == "" {
		roomID = DefaultRoomID
	}
	col := ColumnConfig{
		ID:            fmt.Sprintf("col%d", len(l.Columns)+1),
		SeatsPerTable: seats,
		XOffset:       NextColumnOffset(l.Columns),
	}
	l.Columns = append(l.Columns, col)

	seen := make(map[float64]bool)
	var buckets []float64
	for _, it := range l.Items {
		if b := RowBucket(it.Y); !seen[b] {
			seen[b] = true
			buckets = append(buckets, b)
		}
	}
	for _, t := range l.Tables {
		if b := RowBucket(t.Y); !seen[b] {
			seen[b] = true
			buckets = append(buckets, b)
		}
	}
	if len(buckets) == 0 {
		buckets = []float64{RowHeight}
	}
	for _, y := range buckets {
		l.appendTable(col, roomID, y)
	}
}

// UpdateColumnSeats changes the seat count of one column and cascades the
// offset shift through every subsequent column.  Tables of the resized column
// get their seats discarded and regenerated, so occupancy there is lost;
// tables of shifted columns are translated by one consistent horizontal
// delta each, occupancy preserved.  No seat id is ever
// duplicated: regenerated ids reuse the stable "seat-{table}-{index}" scheme
// after the old items are removed.
func (l *Layout) UpdateColumnSeats(columnID string, seats int) {
	if seats <= 0 {
		return
	}
	idx := -1
	for i, c := range l.Columns {
		if c.ID == columnID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	cols := make([]ColumnConfig, len(l.Columns))
	copy(cols, l.Columns)
	cols[idx].SeatsPerTable = seats
	for i := idx + 1; i < len(cols); i++ {
		prev := cols[i-1]
		cols[i].XOffset = prev.XOffset + float64(prev.SeatsPerTable)*SeatWidth + ColumnGap
	}

	var (
		newTables = make([]Table, 0, len(l.Tables))
		removed   = make(map[string]bool)
		newSeats  []Item
		tableDX   = make(map[string]float64)
	)
	for _, t := range l.Tables {
		cfg, ok := findColumn(cols, t.ColumnID)
		if !ok {
			newTables = append(newTables, t)
			continue
		}
		tx := cfg.XOffset
		if dx := tx - t.X; dx != 0 {
			tableDX[t.ID] = dx
		}
		if t.ColumnID == columnID {
			for _, id := range t.SeatIDs {
				removed[id] = true
			}
			seatIDs := make([]string, seats)
			for si := 0; si < seats; si++ {
				id := seatID(t.ID, si)
				seatIDs[si] = id
				newSeats = append(newSeats, Item{
					ID:       id,
					Type:     TypeSeat,
					Label:    SeatLabel(columnID, si),
					X:        tx + float64(si)*SeatWidth,
					Y:        t.Y + SeatOffsetY,
					RoomID:   t.RoomID,
					TableID:  t.ID,
					ColumnID: columnID,
				})
			}
			t.X = tx
			t.SeatIDs = seatIDs
		} else {
			t.X = tx
		}
		newTables = append(newTables, t)
	}

	// Drop the discarded seats, translate surviving seats by their table's
	// delta, then append the regenerated ones (already at their final x).
	filtered := make([]Item, 0, len(l.Items)+len(newSeats))
	for _, it := range l.Items {
		if removed[it.ID] {
			continue
		}
		if it.TableID != "" {
			if dx, ok := tableDX[it.TableID]; ok {
				it.X += dx
			}
		}
		filtered = append(filtered, it)
	}
	filtered = append(filtered, newSeats...)

	l.Columns = cols
	l.Tables = newTables
	l.Items = filtered
}

// MoveRow translates every table clustered around rowY, and every seat
// belonging to those tables, vertically by the snapped delta.  Cluster
// membership uses RowTolerance rather than exact equality.
func (l *Layout) MoveRow(rowY, deltaY float64) {
	dy := Snap(deltaY)
	moved := make(map[string]bool)
	for i := range l.Tables {
		t := &l.Tables[i]
		if !SameRow(t.Y, rowY, RowTolerance) {
			continue
		}
		for _, id := range t.SeatIDs {
			moved[id] = true
		}
		t.Y += dy
	}
	for i := range l.Items {
		if moved[l.Items[i].ID] {
			l.Items[i].Y += dy
		}
	}
}

// MoveColumn translates every table of the column and its seats horizontally
// by the snapped delta, and persists the shift into the column config so
// future AddRow calls follow the new position.
func (l *Layout) MoveColumn(columnID string, deltaX float64) {
	dx := Snap(deltaX)
	for i := range l.Columns {
		if l.Columns[i].ID == columnID {
			l.Columns[i].XOffset += dx
		}
	}
	moved := make(map[string]bool)
	for i := range l.Tables {
		t := &l.Tables[i]
		if t.ColumnID != columnID {
			continue
		}
		for _, id := range t.SeatIDs {
			moved[id] = true
		}
		t.X += dx
	}
	for i := range l.Items {
		if moved[l.Items[i].ID] {
			l.Items[i].X += dx
		}
	}
}

// MoveSelection applies a drag delta to the dragged entity, or to the whole
// selection when the dragged entity is itself selected ("drag one of N
// selected things moves all N").  Tables carry their seats with them.  The
// deltas are expected to be snapped already; the drag resolver does that.
func (l *Layout) MoveSelection(draggedID string, selected map[string]bool, dx, dy float64) {
	if t := l.table(draggedID); t != nil {
		targets := map[string]bool{draggedID: true}
		if selected[draggedID] {
			for _, tb := range l.Tables {
				if selected[tb.ID] {
					targets[tb.ID] = true
				}
			}
		}
		seats := make(map[string]bool)
		for i := range l.Tables {
			tb := &l.Tables[i]
			if !targets[tb.ID] {
				continue
			}
			for _, id := range tb.SeatIDs {
				seats[id] = true
			}
			tb.X += dx
			tb.Y += dy
		}
		for i := range l.Items {
			if seats[l.Items[i].ID] {
				l.Items[i].X += dx
				l.Items[i].Y += dy
			}
		}
		return
	}

	if l.item(draggedID) == nil {
		return
	}
	targets := map[string]bool{draggedID: true}
	if selected[draggedID] {
		for _, it := range l.Items {
			if selected[it.ID] {
				targets[it.ID] = true
			}
		}
	}
	for i := range l.Items {
		if targets[l.Items[i].ID] {
			l.Items[i].X += dx
			l.Items[i].Y += dy
		}
	}
}

// DeleteTable removes the table and every seat item it owns.  The
// confirmation step is a caller-level concern; the engine applies
// unconditionally.
func (l *Layout) DeleteTable(tableID string) {
	t := l.table(tableID)
	if t == nil {
		return
	}
	owned := make(map[string]bool, len(t.SeatIDs))
	for _, id := range t.SeatIDs {
		owned[id] = true
	}
	tables := l.Tables[:0]
	for _, tb := range l.Tables {
		if tb.ID != tableID {
			tables = append(tables, tb)
		}
	}
	l.Tables = tables
	items := l.Items[:0]
	for _, it := range l.Items {
		if !owned[it.ID] {
			items = append(items, it)
		}
	}
	l.Items = items
}

// DeleteItem removes a standalone item or a single seat.  Deleting a seat
// also removes its id from the owning table's SeatIDs so no dangling
// reference survives.
func (l *Layout) DeleteItem(id string) {
	it := l.item(id)
	if it == nil {
		return
	}
	if it.TableID != "" {
		if t := l.table(it.TableID); t != nil {
			ids := t.SeatIDs[:0]
			for _, sid := range t.SeatIDs {
				if sid != id {
					ids = append(ids, sid)
				}
			}
			t.SeatIDs = ids
		}
	}
	items := l.Items[:0]
	for _, cur := range l.Items {
		if cur.ID != id {
			items = append(items, cur)
		}
	}
	l.Items = items
}

// RelabelItem renames a standalone item or seat.
func (l *Layout) RelabelItem(id, label string) {
	if it := l.item(id); it != nil {
		it.Label = label
	}
}

// AddObject inserts a free-floating non-seat item at the default snapped
// position.
func (l *Layout) AddObject(roomID string) {
	if roomID == "" {
		roomID = DefaultRoomID
	}
	l.Items = append(l.Items, Item{
		ID:     "obj-" + uuid.NewString(),
		Type:   TypeObject,
		Label:  "Object",
		X:      Snap(50),
		Y:      Snap(50),
		RoomID: roomID,
	})
}

// Clear resets the layout to the default two-column, zero-row state.
func (l *Layout) Clear() {
	*l = NewDefault()
}

// maxY returns the lowest y over all items and tables, false when empty.
func (l *Layout) maxY() (float64, bool) {
	var max float64
	found := false
	for _, it := range l.Items {
		if !found || it.Y > max {
			max = it.Y
			found = true
		}
	}
	for _, t := range l.Tables {
		if !found || t.Y > max {
			max = t.Y
			found = true
		}
	}
	return max, found
}

// appendTable creates one table for the given column at row y, together with
// its freshly labeled seats.
func (l *Layout) appendTable(col ColumnConfig, roomID string, y float64) {
	tableID := "table-" + uuid.NewString()
	seatIDs := make([]string, 0, col.SeatsPerTable)
	for si := 0; si < col.SeatsPerTable; si++ {
		id := seatID(tableID, si)
		seatIDs = append(seatIDs, id)
		l.Items = append(l.Items, Item{
			ID:       id,
			Type:     TypeSeat,
			Label:    SeatLabel(col.ID, si),
			X:        col.XOffset + float64(si)*SeatWidth,
			Y:        y + SeatOffsetY,
			RoomID:   roomID,
			TableID:  tableID,
			ColumnID: col.ID,
		})
	}
	l.Tables = append(l.Tables, Table{
		ID:       tableID,
		Label:    TableLabel(y, col.ID),
		X:        col.XOffset,
		Y:        y,
		RoomID:   roomID,
		ColumnID: col.ID,
		SeatIDs:  seatIDs,
	})
}

// seatID derives the stable id of the si-th seat of a table.
func seatID(tableID string, si int) string {
	return fmt.Sprintf("seat-%s-%d", tableID, si)
}
