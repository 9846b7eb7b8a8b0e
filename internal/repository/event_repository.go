package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/evhub/event-booking/internal/model"
)

// EventRepo provides CRUD operations for event records. Tags are stored
// as a JSON array in a single column so their order is preserved.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo returns a new EventRepo bound to the given database.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// DB exposes the underlying handle for transaction-scoped callers.
func (r *EventRepo) DB() *sql.DB { return r.db }

const eventColumns = "id,title,description,date,venue,price,category,image,tags,created_at,updated_at"

// Create inserts a new event and reads the row back so generated
// timestamps are populated.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	tags, err := marshalTags(e.Tags)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO events (title, description, date, venue, price, category, image, tags) VALUES (?,?,?,?,?,?,?,?)",
		e.Title, e.Description, e.Date, e.Venue, e.Price, e.Category, e.Image, tags)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*e = got
	return nil
}

// GetByID fetches a single event. Returns ErrEventNotFound when no row
// exists.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE id=? LIMIT 1", id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return model.Event{}, ErrEventNotFound
	}
	return e, err
}

// Update overwrites all mutable columns of an event. Handlers merge
// partial (PATCH) input into a fetched record before calling this.
func (r *EventRepo) Update(ctx context.Context, e *model.Event) error {
	tags, err := marshalTags(e.Tags)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE events SET title=?, description=?, date=?, venue=?, price=?, category=?, image=?, tags=? WHERE id=?",
		e.Title, e.Description, e.Date, e.Venue, e.Price, e.Category, e.Image, tags, e.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// RowsAffected is 0 both for a missing row and a no-op update,
		// so confirm existence before reporting not found.
		if _, err := r.GetByID(ctx, e.ID); err != nil {
			return err
		}
	}
	got, err := r.GetByID(ctx, e.ID)
	if err != nil {
		return err
	}
	*e = got
	return nil
}

// Delete removes an event. Dependent bookings are removed by the
// ON DELETE CASCADE foreign key. Returns ErrEventNotFound when no row
// was deleted.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEventNotFound
	}
	return nil
}

// rowScanner lets scanEvent work with both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (model.Event, error) {
	var (
		e    model.Event
		tags []byte
	)
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Venue,
		&e.Price, &e.Category, &e.Image, &tags, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return model.Event{}, err
	}
	e.Tags = []string{}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &e.Tags); err != nil {
			return model.Event{}, err
		}
	}
	return e, nil
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}
