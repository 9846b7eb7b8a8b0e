package router

import (
	"github.com/labstack/echo/v4"

	"github.com/evhub/event-booking/internal/handler"
	"github.com/evhub/event-booking/internal/middleware"
	"github.com/evhub/event-booking/internal/model"
)

// RegisterAdmin registers event catalog mutations under /v1. All routes
// require a valid JWT carrying the admin role; reads stay public and are
// registered by RegisterPublic.
func RegisterAdmin(e *echo.Echo, h *handler.AdminEventHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	g.POST("/events", h.Create)
	g.PUT("/events/:id", h.Update)
	g.PATCH("/events/:id", h.Patch)
	g.DELETE("/events/:id", h.Delete)
}
