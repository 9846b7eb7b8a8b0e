package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evhub/event-booking/internal/config"
	"github.com/evhub/event-booking/internal/repository"
)

// Validation failures must be rejected before any repository call, so
// these tests run against handlers wired with empty repositories.
func newAuthHandler() *AuthHandler {
	return NewAuthHandler(config.Config{JWTSecret: "s", BcryptCost: 4},
		repository.NewUserRepo(nil), repository.NewTokenRepo(nil))
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestRegisterValidation(t *testing.T) {
	h := newAuthHandler()

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing email", `{"name":"Alice","password":"pw123"}`},
		{"missing name", `{"email":"a@x.com","password":"pw123"}`},
		{"missing password", `{"email":"a@x.com","name":"Alice"}`},
		{"malformed email", `{"email":"not-an-email","name":"Alice","password":"pw123"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.Register, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestLoginValidation(t *testing.T) {
	h := newAuthHandler()

	rec := postJSON(t, h.Login, `{"email":"a@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h.Login, `{"password":"pw123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshAndLogoutRequireToken(t *testing.T) {
	h := newAuthHandler()

	rec := postJSON(t, h.Refresh, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h.Logout, `{"refresh_token":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
