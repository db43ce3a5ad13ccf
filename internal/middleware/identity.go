package middleware

// identity.go resolves the requesting operator's identity for rate-limit key
// strategies, from the context values set by JWTAuth.  Unauthenticated routes
// such as login fall back to "guest".

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

func userID(c echo.Context) string {
	if id, ok := c.Get("user_id").(int64); ok {
		return strconv.FormatInt(id, 10)
	}
	return "guest"
}
