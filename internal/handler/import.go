package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"seatplan/internal/importer"
	"seatplan/internal/layout"
)

// ImportMembers handles POST /v1/import/members.  It accepts a multipart
// upload under the "file" field, parses the roster CSV and upserts every
// valid row.
func (h *Handler) ImportMembers(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	src, err := fh.Open()
	if err != nil {
		return internalError(c, "could not read upload")
	}
	defer src.Close()

	members, err := importer.ParseMembers(src)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if len(members) == 0 {
		return badRequest(c, "no valid rows in file")
	}
	if err := h.Members.Upsert(c.Request().Context(), members); err != nil {
		return internalError(c, "could not save members")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "count": len(members)})
}

// ImportPDF handles POST /v1/import/pdf.  It extracts positioned text rows
// from an uploaded PDF and returns them for review before assignment; no
// layout is touched here.
func (h *Handler) ImportPDF(c echo.Context) error {
	year, ok := yearParam(c)
	if !ok {
		return badRequest(c, "year is required")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	src, err := fh.Open()
	if err != nil {
		return internalError(c, "could not read upload")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return internalError(c, "could not read upload")
	}
	lines, err := importer.ExtractLines(data)
	if err != nil {
		return badRequest(c, "could not parse pdf")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"year":    year,
		"lines":   lines,
		"summary": fmt.Sprintf("Found %d rows of text across pages.", len(lines)),
	})
}

// AssignFromPDF handles POST /v1/import/pdf/assign.  It matches the reviewed
// text rows against the roster and the year's table grid and persists the
// resulting seat assignments.
func (h *Handler) AssignFromPDF(c echo.Context) error {
	var body struct {
		Year  int      `json:"year"`
		Lines []string `json:"lines"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Year <= 0 {
		return badRequest(c, "year is required")
	}
	if len(body.Lines) == 0 {
		return badRequest(c, "lines are required")
	}

	l, err := h.Layouts.Get(c.Request().Context(), body.Year)
	if err != nil {
		return internalError(c, "db error")
	}
	members, err := h.Members.List(c.Request().Context())
	if err != nil {
		return internalError(c, "db error")
	}

	assigned := l.ApplyTextGrid(body.Lines, members)
	if err := layout.Validate(l); err != nil {
		return internalError(c, err.Error())
	}
	if err := h.Layouts.Save(c.Request().Context(), body.Year, l); err != nil {
		return internalError(c, "could not save layout")
	}
	publishSaved(c.Request().Context(), body.Year, l)
	return c.JSON(http.StatusOK, map[string]any{"success": true, "assigned": assigned})
}
