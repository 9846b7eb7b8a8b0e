package router

import (
	"github.com/labstack/echo/v4"

	"github.com/evhub/event-booking/internal/handler"
	"github.com/evhub/event-booking/internal/middleware"
	"github.com/evhub/event-booking/internal/model"
)

// RegisterBookings registers booking endpoints under /v1. Any
// authenticated role may book; the handlers scope every operation to the
// requesting user.
func RegisterBookings(e *echo.Echo, h *handler.BookingHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin, model.RoleUser),
	)
	g.GET("/bookings", h.List)
	g.POST("/bookings", h.Create)
	g.DELETE("/bookings/:id", h.Cancel)
}
