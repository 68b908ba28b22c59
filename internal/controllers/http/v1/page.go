package http

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"weather-lookup/internal/display"
	"weather-lookup/internal/render"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{"glyph": glyph}).
		ParseFS(templatesFS, "templates/index.html"),
)

func glyph(icon display.Icon) string {
	switch icon {
	case display.IconRain:
		return "🌧️"
	case display.IconSun:
		return "☀️"
	default:
		return "☁️"
	}
}

// handlePage renders the lookup screen for the caller's session.
func (r *routes) handlePage(c *fiber.Ctx) error {
	view := r.view(c)
	screen := display.BuildScreen(view.Query(), view.Status())

	return renderHTML(c, pageTemplate, screen)
}

// renderHTML executes tmpl into a buffer so a failing template never leaves a
// partial page behind a 200.
func renderHTML(c *fiber.Ctx, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render page")
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")

	return c.Send(buf.Bytes())
}

// handleSearch is the form target: the text field and the Enter key both
// post here. It runs the lookup and redirects back to the screen.
func (r *routes) handleSearch(c *fiber.Ctx) error {
	view := r.view(c)

	// Fiber strings point into a pooled buffer; the view outlives the request.
	view.SetQuery(utils.CopyString(c.FormValue("city")))
	status := view.Submit(c.UserContext())

	r.l.Debug("search submitted", map[string]any{
		"query": view.Query(),
		"state": status.State().String(),
	})

	return c.Redirect("/", fiber.StatusSeeOther)
}

// handlePanel renders the screen as a PNG card.
func (r *routes) handlePanel(c *fiber.Ctx) error {
	view := r.view(c)
	screen := display.BuildScreen(view.Query(), view.Status())

	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("png")

	if err := render.EncodePNG(c, screen); err != nil {
		r.l.Error(err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render panel")
	}

	return nil
}
