package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evhub/event-booking/internal/config"
)

func TestEncodeDecodePayload(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	body := []byte(`{"data":[]}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, body, gotBody)
}

func TestDecodePayloadRejectsShortInput(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{1, 2, 3})
	assert.False(t, ok)
}

func TestCacheKeyDependsOnQuery(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	e := echo.New()

	keyFor := func(target string) string {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/v1/events")
		return cacheKeyFrom(cfg, c)
	}

	page1 := keyFor("/v1/events?page=1")
	page2 := keyFor("/v1/events?page=2")
	again := keyFor("/v1/events?page=1")

	assert.NotEqual(t, page1, page2)
	assert.Equal(t, page1, again)
}

// A body larger than the capture limit must not be stored at all;
// storing the captured prefix would replay a truncated response on
// every subsequent hit.
func TestStorableSkipsOversizedBodies(t *testing.T) {
	assert.True(t, storable(http.StatusOK, 100, 1024))
	assert.True(t, storable(http.StatusOK, 100, 0)) // no limit configured
	assert.True(t, storable(http.StatusOK, 1024, 1024))
	assert.False(t, storable(http.StatusOK, 1025, 1024))
	assert.False(t, storable(http.StatusNotFound, 10, 1024))
}

func TestCaptureWriterTracksFullSize(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}

	_, err := cw.Write([]byte("0123456789"))
	require.NoError(t, err)

	// Client sees everything; the capture buffer stops at the limit and
	// size records how big the body really was.
	assert.Equal(t, "0123456789", rec.Body.String())
	assert.Equal(t, "0123", cw.buf.String())
	assert.Equal(t, int64(10), cw.size)
	assert.False(t, storable(cw.status, cw.size, cw.limit))
}

func TestNewRedisCacheNilClientPassesThrough(t *testing.T) {
	cfg := config.CacheConfig{
		Enabled: true,
		Methods: map[string]bool{"GET": true},
		TTL:     time.Minute,
	}
	mw := NewRedisCache(cfg, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}
