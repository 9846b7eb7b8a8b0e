package repository

import (
	"context"
	"strings"

	"github.com/evhub/event-booking/internal/model"
)

// EventSearchQuery defines filters & pagination for listing events.
// Search matches a case-insensitive substring of title or description;
// Category is an exact match. Results are ordered by event date
// descending, newest first.
type EventSearchQuery struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

// whereClause builds the WHERE condition and its arguments. Split out of
// Search so the query construction is testable without a database.
func (q EventSearchQuery) whereClause() (string, []any) {
	where := []string{}
	args := []any{}

	if q.Search != "" {
		needle := "%" + strings.ToLower(q.Search) + "%"
		where = append(where, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)")
		args = append(args, needle, needle)
	}
	if q.Category != "" {
		where = append(where, "category = ?")
		args = append(args, q.Category)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}
	return cond, args
}

// normalize clamps pagination to sane bounds: page >= 1, limit 1..100.
// The upstream API never enforced a limit cap; the clamp prevents
// unbounded fetches from untrusted callers.
func (q EventSearchQuery) normalize() EventSearchQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	return q
}

// Search returns one page of events matching the query plus the total
// match count. A page past the end of the result set yields an empty
// slice, not an error.
func (r *EventRepo) Search(ctx context.Context, q EventSearchQuery) ([]model.Event, int64, error) {
	q = q.normalize()
	cond, args := q.whereClause()

	var total int64
	countSQL := "SELECT COUNT(*) FROM events WHERE " + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.Limit
	offset := (q.Page - 1) * q.Limit

	dataSQL := "SELECT " + eventColumns + " FROM events WHERE " + cond +
		" ORDER BY date DESC, id DESC LIMIT ? OFFSET ?"
	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Event, 0, limit)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
