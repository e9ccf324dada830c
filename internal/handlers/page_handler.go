package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-vibes/internal/models"
)

// PageSettings is the read-only part of the index page.
type PageSettings struct {
	APIKeyConfigured bool
	Model            string
	MaxFileSize      int64
}

type indexView struct {
	PageSettings
	MaxFileSizeMB  int64
	JobDescription string
	Result         *models.AnalysisResult
	Document       *models.DocumentInfo
	ResumeText     string
	Error          string
}

func (s PageSettings) view() indexView {
	return indexView{
		PageSettings:  s,
		MaxFileSizeMB: s.MaxFileSize / (1024 * 1024),
	}
}

type PageHandler struct {
	settings PageSettings
}

func NewPageHandler(settings PageSettings) *PageHandler {
	return &PageHandler{settings: settings}
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	return renderIndex(c, fiber.StatusOK, h.settings.view())
}

func renderIndex(c *fiber.Ctx, status int, view indexView) error {
	return c.Status(status).Render("index", view)
}
