package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-vibes/internal/config"
	"alfredoptarigan/resume-vibes/internal/models"
	"alfredoptarigan/resume-vibes/internal/services"
)

type ModelsHandler struct {
	geminiService services.GeminiService
	geminiConfig  config.GeminiConfig
}

func NewModelsHandler(geminiService services.GeminiService, geminiConfig config.GeminiConfig) *ModelsHandler {
	return &ModelsHandler{
		geminiService: geminiService,
		geminiConfig:  geminiConfig,
	}
}

// HandleListModels handles GET /api/v1/models
func (h *ModelsHandler) HandleListModels(c *fiber.Ctx) error {
	names, err := h.geminiService.ListModels(c.UserContext(), h.geminiConfig)
	if err != nil {
		return writeError(c, err)
	}

	if names == nil {
		names = []string{}
	}

	return c.JSON(models.ModelsResponse{Models: names})
}
