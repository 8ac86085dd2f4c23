package handler

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v3"
	"github.com/mattear/waitlist-watch/internal/service"
)

var statusPage = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html>
<head><title>Waitlist Status</title></head>
<body>
{{if .HasData}}
  {{if .SchoolName}}<h1>{{.SchoolName}}</h1>{{end}}
  <p>Current rank: {{.RankDisplay}}</p>
  <p>Signup count: {{.SignupCountDisplay}}</p>
  <p>Last updated: {{.UpdatedAt}}</p>
{{else}}
  <p>No data yet — waiting for the first poll.</p>
{{end}}
</body>
</html>
`))

// StatusHandler serves the status page and its JSON projection.
type StatusHandler struct {
	status *service.StatusService
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(status *service.StatusService) *StatusHandler {
	return &StatusHandler{status: status}
}

// Register sets up the status routes.
func (h *StatusHandler) Register(app *fiber.App) {
	app.Get("/status", h.Page)
	app.Get("/api/status", h.JSON)
}

// Page renders the HTML status page.
func (h *StatusHandler) Page(c fiber.Ctx) error {
	view, err := h.status.Current(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("status unavailable")
	}

	var buf bytes.Buffer
	if err := statusPage.Execute(&buf, view); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("render failed")
	}

	c.Type("html")
	return c.Send(buf.Bytes())
}

// JSON returns the status view as JSON.
func (h *StatusHandler) JSON(c fiber.Ctx) error {
	view, err := h.status.Current(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(view)
}
