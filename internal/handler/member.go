package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"seatplan/internal/model"
	"seatplan/internal/repository"
)

// ListMembers handles GET /v1/members and returns the full roster ordered by
// display name.
func (h *Handler) ListMembers(c echo.Context) error {
	items, err := h.Members.List(c.Request().Context())
	if err != nil {
		return internalError(c, "db error")
	}
	if items == nil {
		items = []model.Member{}
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// CreateMembers handles POST /v1/members.  The body may be a single member
// object or an array of members; either way missing ids are filled in and
// the batch is upserted in one transaction.
func (h *Handler) CreateMembers(c echo.Context) error {
	var raw json.RawMessage
	if err := c.Bind(&raw); err != nil {
		return badRequest(c, "invalid request body")
	}
	var members []model.Member
	if err := json.Unmarshal(raw, &members); err != nil {
		var one model.Member
		if err := json.Unmarshal(raw, &one); err != nil {
			return badRequest(c, "invalid request body")
		}
		members = []model.Member{one}
	}
	valid := make([]model.Member, 0, len(members))
	for _, m := range members {
		m.DisplayName = strings.TrimSpace(m.DisplayName)
		if m.DisplayName == "" {
			continue
		}
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if m.RoomID == "" {
			m.RoomID = model.Rooms[0].ID
		}
		m.RoomID = strings.ToLower(m.RoomID)
		valid = append(valid, m)
	}
	if len(valid) == 0 {
		return badRequest(c, "displayName is required")
	}
	if err := h.Members.Upsert(c.Request().Context(), valid); err != nil {
		return internalError(c, "could not save members")
	}
	return c.JSON(http.StatusCreated, map[string]any{"items": valid})
}

// UpdateMember handles PUT /v1/members and rewrites one member's fields.
func (h *Handler) UpdateMember(c echo.Context) error {
	var m model.Member
	if err := c.Bind(&m); err != nil {
		return badRequest(c, "invalid request body")
	}
	if m.ID == "" || strings.TrimSpace(m.DisplayName) == "" {
		return badRequest(c, "id and displayName are required")
	}
	m.DisplayName = strings.TrimSpace(m.DisplayName)
	if m.RoomID == "" {
		m.RoomID = model.Rooms[0].ID
	}
	m.RoomID = strings.ToLower(m.RoomID)
	if err := h.Members.Update(c.Request().Context(), m); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "member not found"})
		}
		return internalError(c, "update failed")
	}
	return c.JSON(http.StatusOK, m)
}

// DeleteMember handles DELETE /v1/members?id=.  Seat assignments referencing
// the member stay in stored layouts; the UI simply shows the seat as free
// once the roster no longer resolves the id.
func (h *Handler) DeleteMember(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return badRequest(c, "id is required")
	}
	if err := h.Members.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "member not found"})
		}
		return internalError(c, "delete failed")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
