package model

// Member is one person on the roster.  Members are owned by the persistence
// layer; the layout engine treats them as read-only foreign data and only
// ever stores a member's id on a seat.
//
// Fields:
//
//	ID          – primary key, uuid string.
//	FirstName   – given name.
//	LastName    – family name.
//	DisplayName – name shown on seats and tooltips; required.
//	RoomID      – room the member defaults to, lower-cased.
type Member struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
	RoomID      string `json:"roomId"`
}
