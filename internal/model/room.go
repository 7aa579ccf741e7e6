package model

// Room is a named area a layout belongs to.  The set of rooms is fixed; items
// and members reference rooms by id.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Rooms lists the rooms known to the application.
var Rooms = []Room{
	{ID: "main", Name: "Main Room"},
	{ID: "side", Name: "Side Room"},
}
