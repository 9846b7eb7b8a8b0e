package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/evhub/event-booking/internal/model"
)

// BookingRepo provides the booking ledger: one row per (user,event)
// pair, soft-cancelled by status flip and reactivated in place when the
// user books the same event again. The bookings table carries
// UNIQUE(user_id,event_id); a race between two simultaneous booking
// requests is settled there rather than with application locks.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = "id,user_id,event_id,status,created_at"

// Book creates or reactivates the booking for (userID, eventID).
// It returns the stored booking and whether a new row was inserted:
//
//	no existing row         -> insert with status confirmed, created=true
//	existing row cancelled  -> flip back to confirmed, same ID, created=false
//	existing row confirmed  -> ErrAlreadyBooked
//
// The event must exist; a dangling event ID surfaces as ErrEventNotFound
// via the foreign key check.
func (r *BookingRepo) Book(ctx context.Context, userID, eventID uint64) (model.Booking, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Booking{}, false, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var b model.Booking
	err = tx.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE user_id=? AND event_id=? LIMIT 1 FOR UPDATE",
		userID, eventID).Scan(&b.ID, &b.UserID, &b.EventID, &b.Status, &b.CreatedAt)
	switch {
	case err == sql.ErrNoRows:
		res, err := tx.ExecContext(ctx,
			"INSERT INTO bookings (user_id, event_id, status) VALUES (?,?,?)",
			userID, eventID, model.BookingConfirmed)
		if err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "1062") {
				// Lost the race to a concurrent insert for the same pair.
				return model.Booking{}, false, ErrAlreadyBooked
			}
			if strings.Contains(low, "1452") { // foreign key fails -> event missing
				return model.Booking{}, false, ErrEventNotFound
			}
			return model.Booking{}, false, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return model.Booking{}, false, err
		}
		if err := tx.QueryRowContext(ctx,
			"SELECT "+bookingColumns+" FROM bookings WHERE id=?",
			id).Scan(&b.ID, &b.UserID, &b.EventID, &b.Status, &b.CreatedAt); err != nil {
			return model.Booking{}, false, err
		}
		if err := tx.Commit(); err != nil {
			return model.Booking{}, false, err
		}
		committed = true
		return b, true, nil

	case err != nil:
		return model.Booking{}, false, err
	}

	if !b.Status.CanReactivate() {
		return model.Booking{}, false, ErrAlreadyBooked
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=?",
		model.BookingConfirmed, b.ID); err != nil {
		return model.Booking{}, false, err
	}
	b.Status = model.BookingConfirmed
	if err := tx.Commit(); err != nil {
		return model.Booking{}, false, err
	}
	committed = true
	return b, false, nil
}

// ListByUser returns the user's bookings, newest first. Cancelled rows
// are included; they are part of the user's history.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE user_id=? ORDER BY created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.EventID, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Cancel flips the booking to cancelled. The row is kept so the user
// can re-book later. A booking owned by another user is reported as
// ErrBookingNotFound, indistinguishable from true absence. Cancelling
// an already-cancelled booking is a no-op.
func (r *BookingRepo) Cancel(ctx context.Context, userID, bookingID uint64) error {
	var status model.BookingStatus
	err := r.db.QueryRowContext(ctx,
		"SELECT status FROM bookings WHERE id=? AND user_id=? LIMIT 1",
		bookingID, userID).Scan(&status)
	if err == sql.ErrNoRows {
		return ErrBookingNotFound
	}
	if err != nil {
		return err
	}
	if status == model.BookingCancelled {
		return nil
	}
	_, err = r.db.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=? AND user_id=?",
		model.BookingCancelled, bookingID, userID)
	return err
}
