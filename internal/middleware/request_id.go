package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shinyyama/companion-backend/internal/chatctx"
)

// RequestID attaches a correlation id to the request context so external
// API clients can tag their log lines. An inbound X-Request-ID wins over
// a generated one.
func RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rid := c.Request().Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx := chatctx.WithRID(c.Request().Context(), rid)
		c.SetRequest(c.Request().WithContext(ctx))
		c.Response().Header().Set("X-Request-ID", rid)
		return next(c)
	}
}
