package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"seatplan/internal/repository"
)

// History handles GET /v1/history and returns past seat assignments ordered
// by year descending.  An optional memberId query parameter narrows the
// result to one member.
func (h *Handler) History(c echo.Context) error {
	rows, err := h.Layouts.History(c.Request().Context(), c.QueryParam("memberId"))
	if err != nil {
		return internalError(c, "db error")
	}
	if rows == nil {
		rows = []repository.HistoryRow{}
	}
	return c.JSON(http.StatusOK, map[string]any{"items": rows})
}
