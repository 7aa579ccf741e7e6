package router // router wires URL paths to their handlers

import (
	"github.com/labstack/echo/v4"

	"seatplan/internal/handler"
)

// RegisterRoutes registers every endpoint of the seating API on the provided
// Echo instance.  All data endpoints live under /v1; the health check sits
// at the root for load balancers.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")

	v1.GET("/members", h.ListMembers)
	v1.POST("/members", h.CreateMembers)
	v1.PUT("/members", h.UpdateMember)
	v1.DELETE("/members", h.DeleteMember)

	v1.GET("/layout", h.GetLayout)
	v1.POST("/layout", h.SaveLayout)
	v1.POST("/layout/ops", h.ApplyOp)
	v1.POST("/layout/drag", h.Drag)

	v1.GET("/history", h.History)

	v1.POST("/import/members", h.ImportMembers)
	v1.POST("/import/pdf", h.ImportPDF)
	v1.POST("/import/pdf/assign", h.AssignFromPDF)
}
