package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/evhub/event-booking/internal/queue"
	"github.com/evhub/event-booking/internal/repository"
	queue_publisher "github.com/evhub/event-booking/internal/service"
)

// BookingHandler exposes the booking ledger to authenticated users. All
// methods assume JWT authentication has run; they resolve the requesting
// user from the request context and never accept a user ID from the
// client.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Events   *repository.EventRepo
}

// NewBookingHandler constructs a BookingHandler with the provided
// repositories. Both must be non-nil.
func NewBookingHandler(bookings *repository.BookingRepo, events *repository.EventRepo) *BookingHandler {
	if bookings == nil || events == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Events: events}
}

// List handles GET /v1/bookings. It returns only the requesting user's
// bookings, newest first; there is no cross-user visibility.
func (h *BookingHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// Create handles POST /v1/bookings with body {"event_id": n}. A first
// booking inserts a confirmed row (201); booking an event whose previous
// booking was cancelled reactivates the same row (200, same ID); a
// duplicate active booking fails with 400.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		EventID uint64 `json:"event_id"`
	}
	if err := c.Bind(&body); err != nil || body.EventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "event_id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	event, err := h.Events.GetByID(ctx, body.EventID)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	booking, created, err := h.Bookings.Book(ctx, userID, body.EventID)
	if err != nil {
		switch err {
		case repository.ErrAlreadyBooked:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "You have already booked this event"})
		case repository.ErrEventNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	// Fire-and-forget: confirmation events never fail the request.
	go func() {
		_ = queue_publisher.PublishBookingConfirmed(context.Background(), queue.BookingConfirmedEvent{
			BookingID:   booking.ID,
			UserID:      booking.UserID,
			EventID:     event.ID,
			EventTitle:  event.Title,
			Venue:       event.Venue,
			EventDate:   event.Date.UTC().Format(time.RFC3339),
			Price:       event.Price,
			Reactivated: !created,
			ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, booking)
}

// Cancel handles DELETE /v1/bookings/:id. The booking is soft-cancelled
// by status flip and the row is kept so the user can re-book later.
// A booking owned by someone else answers 404, indistinguishable from a
// missing one. Repeating the cancel is a no-op 204.
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.Cancel(ctx, userID, bookingID); err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel booking failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
