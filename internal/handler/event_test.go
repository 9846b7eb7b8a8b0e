package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evhub/event-booking/internal/repository"
)

func TestPublicEventGetRejectsBadID(t *testing.T) {
	h := NewPublicEventHandler(repository.NewEventRepo(nil))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/events/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicEventListEnvelope(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	ts := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT COUNT(*) FROM events WHERE 1=1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT id,title,description,date,venue,price,category,image,tags,created_at,updated_at FROM events WHERE 1=1 ORDER BY date DESC, id DESC LIMIT ? OFFSET ?").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "date", "venue",
			"price", "category", "image", "tags", "created_at", "updated_at"}).
			AddRow(7, "Tech Conference 2025", "talks", ts, "Main Hall", 25.0, "Tech", "", []byte(`[]`), ts, ts))

	h := NewPublicEventHandler(repository.NewEventRepo(db))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.List(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"total":1`)
	assert.Contains(t, body, `"page":1`)
	assert.Contains(t, body, `"limit":10`)
	assert.Contains(t, body, "Tech Conference 2025")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminEventValidation(t *testing.T) {
	h := NewAdminEventHandler(repository.NewEventRepo(nil))
	e := echo.New()

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"date":"2025-06-01T19:00:00Z","price":10}`},
		{"missing date", `{"title":"Tech Conference 2025","price":10}`},
		{"negative price", `{"title":"Tech Conference 2025","date":"2025-06-01T19:00:00Z","price":-1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			require.NoError(t, h.Create(e.NewContext(req, rec)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
