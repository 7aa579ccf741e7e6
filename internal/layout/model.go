package layout

// ItemType distinguishes assignable seats from free-floating objects such as
// doors or lecterns.
type ItemType string

const (
	TypeSeat   ItemType = "seat"
	TypeObject ItemType = "object"
)

// DefaultRoomID is used when an operation does not name a room.
const DefaultRoomID = "main"

// Item is a single element placed on the canvas.  A seat item always carries
// the id of its owning table; an object item never does.  MemberID is the
// current occupant and is empty for an unassigned seat.
//
// Fields:
//
//	ID       – unique identifier within one layout.
//	Type     – seat or object.
//	Label    – display label, e.g. "COL1 - S2".
//	X, Y     – canvas position in px.
//	RoomID   – room the item belongs to.
//	MemberID – occupant, seats only, empty when unassigned.
//	TableID  – owning table, seats only.
//	ColumnID – owning column, seats only.
//	Selected – UI selection flag, persisted verbatim.
type Item struct {
	ID       string   `json:"id"`
	Type     ItemType `json:"type"`
	Label    string   `json:"label"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	RoomID   string   `json:"roomId"`
	MemberID string   `json:"memberId,omitempty"`
	TableID  string   `json:"tableId,omitempty"`
	ColumnID string   `json:"columnId,omitempty"`
	Selected bool     `json:"selected,omitempty"`
}

// Table groups the seats of one column within one row.  Row identity is the
// shared y coordinate; SeatIDs always has exactly the owning column's
// SeatsPerTable entries once a mutation settles.
type Table struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	RoomID   string   `json:"roomId"`
	ColumnID string   `json:"columnId"`
	SeatIDs  []string `json:"seatIds"`
}

// ColumnConfig describes one column of the grid.  Configs form an ordered
// sequence; XOffset of column i is recomputed from column i-1 whenever an
// earlier seat count changes, so offsets are monotonically increasing.
type ColumnConfig struct {
	ID            string  `json:"id"`
	SeatsPerTable int     `json:"seatsPerTable"`
	XOffset       float64 `json:"xOffset"`
}

// Layout is the full editable state for one year: every placed item, every
// table and the ordered column configuration.  It is the unit of persistence;
// snapshots are saved wholesale, never incrementally.
type Layout struct {
	Items   []Item         `json:"items"`
	Tables  []Table        `json:"tables"`
	Columns []ColumnConfig `json:"columns"`
}

// Snapshot couples a layout with the year it was persisted under.  The
// history projector consumes a sequence of these.
type Snapshot struct {
	Year int `json:"year"`
	Layout
}

// NewDefault returns the empty starting grid: two columns with two and three
// seats per table and no rows yet.
func NewDefault() Layout {
	return Layout{
		Items:  []Item{},
		Tables: []Table{},
		Columns: []ColumnConfig{
			{ID: "col1", SeatsPerTable: 2, XOffset: BaseOffset},
			{ID: "col2", SeatsPerTable: 3, XOffset: 484}, // 100 + 2*100 + 184
		},
	}
}

// item returns a pointer into Items for the given id, or nil.
func (l *Layout) item(id string) *Item {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return &l.Items[i]
		}
	}
	return nil
}

// table returns a pointer into Tables for the given id, or nil.
func (l *Layout) table(id string) *Table {
	for i := range l.Tables {
		if l.Tables[i].ID == id {
			return &l.Tables[i]
		}
	}
	return nil
}

// findColumn returns the config for the given column id, or false.
func findColumn(configs []ColumnConfig, id string) (ColumnConfig, bool) {
	for _, c := range configs {
		if c.ID == id {
			return c, true
		}
	}
	return ColumnConfig{}, false
}
