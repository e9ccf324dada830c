package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-vibes/internal/models"
	"alfredoptarigan/resume-vibes/internal/repositories"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type HistoryHandler struct {
	logRepo repositories.AnalysisLogRepository
}

// NewHistoryHandler accepts a nil repository when the analysis log is disabled.
func NewHistoryHandler(logRepo repositories.AnalysisLogRepository) *HistoryHandler {
	return &HistoryHandler{
		logRepo: logRepo,
	}
}

// HandleRecent handles GET /api/v1/analyses
func (h *HistoryHandler) HandleRecent(c *fiber.Ctx) error {
	if h.logRepo == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis log is disabled",
		})
	}

	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries, err := h.logRepo.FindRecent(c.UserContext(), limit)
	if err != nil {
		log.Printf("❌ Failed to load analysis log: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load analysis log",
		})
	}

	if entries == nil {
		entries = []models.AnalysisLog{}
	}

	return c.JSON(models.AnalysisLogResponse{Analyses: entries})
}
