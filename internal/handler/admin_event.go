package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/evhub/event-booking/internal/model"
	"github.com/evhub/event-booking/internal/repository"
)

// AdminEventHandler exposes the mutating side of the event catalog.
// Routes using it sit behind JWTAuth + RequireRole("admin"); the
// handlers themselves never branch on role.
type AdminEventHandler struct {
	Events *repository.EventRepo
}

// NewAdminEventHandler constructs the handler and panics if the
// repository is nil.
func NewAdminEventHandler(events *repository.EventRepo) *AdminEventHandler {
	if events == nil {
		panic("nil repository passed to NewAdminEventHandler")
	}
	return &AdminEventHandler{Events: events}
}

type eventReq struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Tags        []string  `json:"tags"`
}

func (r eventReq) validate() string {
	if r.Title == "" {
		return "title is required"
	}
	if r.Date.IsZero() {
		return "date is required"
	}
	if r.Price < 0 {
		return "price must be non-negative"
	}
	return ""
}

// eventPatchReq carries optional fields for partial updates. Nil means
// "leave as is"; Tags follows the same convention, so an explicit empty
// array clears the tag set.
type eventPatchReq struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Venue       *string    `json:"venue"`
	Price       *float64   `json:"price"`
	Category    *string    `json:"category"`
	Image       *string    `json:"image"`
	Tags        []string   `json:"tags"`
}

// Create handles POST /v1/events.
func (h *AdminEventHandler) Create(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	e := model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date.UTC(),
		Venue:       req.Venue,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Tags:        req.Tags,
	}
	if err := h.Events.Create(ctx, &e); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create event failed"})
	}
	return c.JSON(http.StatusCreated, e)
}

// Update handles PUT /v1/events/:id with a full replacement body.
func (h *AdminEventHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	e := model.Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date.UTC(),
		Venue:       req.Venue,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Tags:        req.Tags,
	}
	if err := h.Events.Update(ctx, &e); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update event failed"})
	}
	return c.JSON(http.StatusOK, e)
}

// Patch handles PATCH /v1/events/:id: fetch, merge the provided fields,
// then write the full row back.
func (h *AdminEventHandler) Patch(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var req eventPatchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	e, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load event failed"})
	}

	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Date != nil {
		e.Date = req.Date.UTC()
	}
	if req.Venue != nil {
		e.Venue = *req.Venue
	}
	if req.Price != nil {
		e.Price = *req.Price
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Image != nil {
		e.Image = *req.Image
	}
	if req.Tags != nil {
		e.Tags = req.Tags
	}
	if e.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	if e.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be non-negative"})
	}

	if err := h.Events.Update(ctx, &e); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update event failed"})
	}
	return c.JSON(http.StatusOK, e)
}

// Delete handles DELETE /v1/events/:id. Bookings referencing the event
// are removed by the cascade.
func (h *AdminEventHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Events.Delete(ctx, id); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete event failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
