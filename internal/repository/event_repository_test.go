package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	eventSelectByID = "SELECT " + eventColumns + " FROM events WHERE id=? LIMIT 1"
	eventDataSQL    = "SELECT " + eventColumns + " FROM events WHERE %s ORDER BY date DESC, id DESC LIMIT ? OFFSET ?"
)

// eventRowsFor builds result rows in the order the database would
// return them; the Scan column set mirrors eventColumns.
func eventRowsFor(ids ...uint64) *sqlmock.Rows {
	rows := sqlmock.NewRows(strings.Split(eventColumns, ","))
	ts := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	for _, id := range ids {
		rows.AddRow(id, fmt.Sprintf("Event %d", id), "an event", ts, "Main Hall",
			25.0, "Tech", "", []byte(`["go"]`), ts, ts)
	}
	return rows
}

func TestEventRepoGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(eventSelectByID).WithArgs(99).WillReturnError(sql.ErrNoRows)

	_, err := NewEventRepo(db).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRepoGetByIDDecodesTags(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(eventSelectByID).WithArgs(7).WillReturnRows(eventRowsFor(7))

	e, err := NewEventRepo(db).GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), e.ID)
	assert.Equal(t, []string{"go"}, e.Tags)
}

// The second page of a 25-row result set must be fetched with
// LIMIT 10 OFFSET 10 and reported against the full count.
func TestEventRepoSearchSecondPageWindow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectQuery("SELECT COUNT(*) FROM events WHERE 1=1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(fmt.Sprintf(eventDataSQL, "1=1")).
		WithArgs(10, 10).
		WillReturnRows(eventRowsFor(15, 14, 13, 12, 11, 10, 9, 8, 7, 6))

	items, total, err := repo.Search(context.Background(), EventSearchQuery{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, items, 10)
	assert.Equal(t, uint64(15), items[0].ID)
	assert.Equal(t, uint64(6), items[9].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepoSearchPastEndIsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectQuery("SELECT COUNT(*) FROM events WHERE 1=1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(fmt.Sprintf(eventDataSQL, "1=1")).
		WithArgs(10, 90).
		WillReturnRows(eventRowsFor())

	items, total, err := repo.Search(context.Background(), EventSearchQuery{Page: 10, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepoSearchAppliesFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)
	cond := "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?) AND category = ?"

	mock.ExpectQuery("SELECT COUNT(*) FROM events WHERE "+cond).
		WithArgs("%conf%", "%conf%", "Tech").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(fmt.Sprintf(eventDataSQL, cond)).
		WithArgs("%conf%", "%conf%", "Tech", 10, 0).
		WillReturnRows(eventRowsFor(4))

	items, total, err := repo.Search(context.Background(),
		EventSearchQuery{Search: "Conf", Category: "Tech", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, uint64(4), items[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
