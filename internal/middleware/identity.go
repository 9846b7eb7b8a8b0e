package middleware

// identity.go holds the key-building identity helper shared by the rate
// limiter. It resolves the authenticated user ID stored in the context by
// JWTAuth, falling back to "anon" for guests.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentUserID renders the authenticated user's ID as a string for use
// in Redis keys. JWT numeric claims arrive as float64; other shapes are
// formatted as-is.
func currentUserID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case nil:
		return "anon"
	case string:
		if v == "" {
			return "anon"
		}
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}
