package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"seatplan/internal/layout"
)

// opRequest is the envelope for POST /v1/layout/ops.  Only the fields the
// named op uses need to be set.
type opRequest struct {
	Year     int     `json:"year"`
	Op       string  `json:"op"`
	RoomID   string  `json:"roomId"`
	ColumnID string  `json:"columnId"`
	Seats    int     `json:"seats"`
	RowY     float64 `json:"rowY"`
	DeltaX   float64 `json:"deltaX"`
	DeltaY   float64 `json:"deltaY"`
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Confirm  bool    `json:"confirm"`
}

// ApplyOp handles POST /v1/layout/ops.  It loads the year's snapshot,
// applies a single named mutation, validates, persists and returns the new
// snapshot.  Deleting a table is destructive enough to require an explicit
// confirm flag.
func (h *Handler) ApplyOp(c echo.Context) error {
	var body opRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Year <= 0 {
		return badRequest(c, "year is required")
	}
	roomID := strings.ToLower(body.RoomID)
	if roomID == "" {
		roomID = layout.DefaultRoomID
	}

	l, err := h.Layouts.Get(c.Request().Context(), body.Year)
	if err != nil {
		return internalError(c, "db error")
	}

	switch body.Op {
	case "add_row":
		l.AddRow(roomID)
	case "add_column":
		if body.Seats <= 0 {
			return badRequest(c, "seats must be greater than zero")
		}
		l.AddColumn(roomID, body.Seats)
	case "update_column_seats":
		if body.ColumnID == "" || body.Seats <= 0 {
			return badRequest(c, "columnId and seats are required")
		}
		l.UpdateColumnSeats(body.ColumnID, body.Seats)
	case "move_row":
		l.MoveRow(body.RowY, body.DeltaY)
	case "move_column":
		if body.ColumnID == "" {
			return badRequest(c, "columnId is required")
		}
		l.MoveColumn(body.ColumnID, body.DeltaX)
	case "delete_table":
		if body.ID == "" {
			return badRequest(c, "id is required")
		}
		if !body.Confirm {
			return c.JSON(http.StatusConflict, map[string]string{"error": "confirmation required"})
		}
		l.DeleteTable(body.ID)
	case "delete_item":
		if body.ID == "" {
			return badRequest(c, "id is required")
		}
		l.DeleteItem(body.ID)
	case "relabel_item":
		if body.ID == "" {
			return badRequest(c, "id is required")
		}
		l.RelabelItem(body.ID, body.Label)
	case "add_object":
		l.AddObject(roomID)
	case "clear":
		l.Clear()
	default:
		return badRequest(c, "unknown op")
	}

	if err := layout.Validate(l); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.Layouts.Save(c.Request().Context(), body.Year, l); err != nil {
		return internalError(c, "could not save layout")
	}
	publishSaved(c.Request().Context(), body.Year, l)
	return c.JSON(http.StatusOK, layout.Snapshot{Year: body.Year, Layout: l})
}

// Drag handles POST /v1/layout/drag.  It interprets a drag-end event against
// the year's snapshot; only drops that change something are persisted.
func (h *Handler) Drag(c echo.Context) error {
	var body struct {
		Year     int      `json:"year"`
		Kind     string   `json:"kind"`
		EntityID string   `json:"entityId"`
		Target   string   `json:"target"`
		DeltaX   float64  `json:"deltaX"`
		DeltaY   float64  `json:"deltaY"`
		Selected []string `json:"selected"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Year <= 0 {
		return badRequest(c, "year is required")
	}
	if body.EntityID == "" || body.Target == "" {
		return badRequest(c, "entityId and target are required")
	}

	l, err := h.Layouts.Get(c.Request().Context(), body.Year)
	if err != nil {
		return internalError(c, "db error")
	}

	selected := make(map[string]bool, len(body.Selected))
	for _, id := range body.Selected {
		selected[id] = true
	}
	ev := layout.DragEvent{
		Kind:     layout.DragKind(body.Kind),
		EntityID: body.EntityID,
		Target:   body.Target,
		DeltaX:   body.DeltaX,
		DeltaY:   body.DeltaY,
		Selected: selected,
	}
	intent := layout.ResolveDrop(&l, ev)
	if intent == layout.IntentNone {
		return c.JSON(http.StatusOK, map[string]any{"intent": intent})
	}
	if err := layout.Validate(l); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.Layouts.Save(c.Request().Context(), body.Year, l); err != nil {
		return internalError(c, "could not save layout")
	}
	publishSaved(c.Request().Context(), body.Year, l)
	return c.JSON(http.StatusOK, map[string]any{"intent": intent, "layout": layout.Snapshot{Year: body.Year, Layout: l}})
}
