package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"seatplan/internal/layout"
	"seatplan/internal/queue"
	queue_publisher "seatplan/internal/service"
)

// GetLayout handles GET /v1/layout?year= and returns the stored snapshot for
// that year, or the default empty grid when the year has never been saved.
func (h *Handler) GetLayout(c echo.Context) error {
	year, ok := yearParam(c)
	if !ok {
		return badRequest(c, "year is required")
	}
	l, err := h.Layouts.Get(c.Request().Context(), year)
	if err != nil {
		return internalError(c, "db error")
	}
	return c.JSON(http.StatusOK, layout.Snapshot{Year: year, Layout: l})
}

// SaveLayout handles POST /v1/layout and stores a whole snapshot for one
// year, replacing whatever was there.
func (h *Handler) SaveLayout(c echo.Context) error {
	var body struct {
		Year    int                   `json:"year"`
		Items   []layout.Item         `json:"items"`
		Tables  []layout.Table        `json:"tables"`
		Columns []layout.ColumnConfig `json:"columns"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Year <= 0 {
		return badRequest(c, "year is required")
	}
	l := layout.Layout{Items: body.Items, Tables: body.Tables, Columns: body.Columns}
	if l.Items == nil {
		l.Items = []layout.Item{}
	}
	if l.Tables == nil {
		l.Tables = []layout.Table{}
	}
	if l.Columns == nil {
		l.Columns = []layout.ColumnConfig{}
	}
	if err := layout.Validate(l); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.Layouts.Save(c.Request().Context(), body.Year, l); err != nil {
		return internalError(c, "could not save layout")
	}
	publishSaved(c.Request().Context(), body.Year, l)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// publishSaved emits a layout.saved event.  Broker failures are already
// logged by the publisher and must never fail the request.
func publishSaved(ctx context.Context, year int, l layout.Layout) {
	assigned := 0
	for _, it := range l.Items {
		if it.Type == layout.TypeSeat && it.MemberID != "" {
			assigned++
		}
	}
	_ = queue_publisher.PublishLayoutSaved(ctx, queue.LayoutSavedEvent{
		Year:        year,
		Items:       len(l.Items),
		Tables:      len(l.Tables),
		Columns:     len(l.Columns),
		Assignments: assigned,
		SavedAt:     time.Now().UTC().Format(time.RFC3339),
	})
}
