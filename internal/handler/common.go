package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"seatplan/internal/repository"
)

// Handler bundles the repositories every endpoint needs.
type Handler struct {
	Members *repository.MemberRepo
	Layouts *repository.LayoutRepo
}

// New constructs a Handler and panics if any dependency is nil.
func New(members *repository.MemberRepo, layouts *repository.LayoutRepo) *Handler {
	if members == nil || layouts == nil {
		panic("nil repository passed to handler.New")
	}
	return &Handler{Members: members, Layouts: layouts}
}

// yearParam parses the required year query parameter.
func yearParam(c echo.Context) (int, bool) {
	y, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || y <= 0 {
		return 0, false
	}
	return y, true
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

func internalError(c echo.Context, msg string) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg})
}
