package http

import (
	"github.com/gofiber/fiber/v2"

	"weather-lookup/internal/lookup"
)

const (
	sessionCookie = "lookup_session"
	sessionHeader = "X-Session-ID"
)

// view resolves the caller's lookup view and (re)issues the session cookie.
// API clients may send the id in X-Session-ID instead of the cookie.
func (r *routes) view(c *fiber.Ctx) *lookup.View {
	id := c.Get(sessionHeader)
	if id == "" {
		id = c.Cookies(sessionCookie)
	}

	view, id := r.sessions.Acquire(id)

	c.Set(sessionHeader, id)
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return view
}
