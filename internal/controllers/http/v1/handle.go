package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"weather-lookup/internal/display"
)

// QueryRequest replaces the query text of the caller's lookup view.
type QueryRequest struct {
	Query string `json:"query" example:"London"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid request body"`
}

// handleGetLookup godoc
// @Summary Get lookup screen
// @Description Returns the current query, request state and derived display values of the caller's lookup view
// @Tags Lookup
// @Produce json
// @Param X-Session-ID header string false "Session id returned by a previous call"
// @Success 200 {object} display.Screen "Current screen"
// @Router /api/v1/lookup [get]
func (r *routes) handleGetLookup(c *fiber.Ctx) error {
	view := r.view(c)

	return c.JSON(display.BuildScreen(view.Query(), view.Status()))
}

// handleSetQuery godoc
// @Summary Set the query
// @Description Replaces the query text. Does not issue a lookup.
// @Tags Lookup
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id returned by a previous call"
// @Param request body QueryRequest true "New query"
// @Success 200 {object} display.Screen "Screen after the change"
// @Failure 400 {object} ErrorResponse "Bad request - invalid body"
// @Router /api/v1/lookup/query [put]
func (r *routes) handleSetQuery(c *fiber.Ctx) error {
	var req QueryRequest
	if err := c.BodyParser(&req); err != nil {
		r.l.Warning("invalid query body", map[string]any{"err": err})

		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	view := r.view(c)
	view.SetQuery(utils.CopyString(req.Query))

	return c.JSON(display.BuildScreen(view.Query(), view.Status()))
}

// handleSubmit godoc
// @Summary Submit the lookup
// @Description Looks up the current query and returns the screen once the lookup resolves. A blank query is ignored.
// @Tags Lookup
// @Produce json
// @Param X-Session-ID header string false "Session id returned by a previous call"
// @Success 200 {object} display.Screen "Screen after the lookup"
// @Router /api/v1/lookup/submit [post]
// @Example {curl} Example usage:
//
//	curl -X POST -H "X-Session-ID: $SID" "http://localhost:8080/api/v1/lookup/submit"
func (r *routes) handleSubmit(c *fiber.Ctx) error {
	view := r.view(c)
	status := view.Submit(c.UserContext())

	return c.JSON(display.BuildScreen(view.Query(), status))
}
