package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/evhub/event-booking/internal/repository"
)

// PublicEventHandler serves the read side of the event catalog. No
// authentication is applied; these endpoints are open to guests.
type PublicEventHandler struct {
	Events *repository.EventRepo
}

func NewPublicEventHandler(events *repository.EventRepo) *PublicEventHandler {
	if events == nil {
		panic("nil repository passed to NewPublicEventHandler")
	}
	return &PublicEventHandler{Events: events}
}

// List handles GET /v1/events?search=&category=&page=&limit=.
// search matches a case-insensitive substring of title or description,
// category matches exactly, and results come back newest-date first.
// Non-numeric page/limit fall back to defaults; limit is clamped to 100
// so a caller cannot request an unbounded fetch.
func (h *PublicEventHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	q := repository.EventSearchQuery{
		Search:   strings.TrimSpace(c.QueryParam("search")),
		Category: strings.TrimSpace(c.QueryParam("category")),
		Page:     page,
		Limit:    limit,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, total, err := h.Events.Search(ctx, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data":  items,
		"total": total,
		"page":  page,
		"limit": q.Limit,
	})
}

// Get handles GET /v1/events/:id.
func (h *PublicEventHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	e, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, e)
}
