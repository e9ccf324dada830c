package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-vibes/internal/models"
	"alfredoptarigan/resume-vibes/internal/services"
)

const (
	msgConfiguration  = "Gemini API key is missing or invalid. Check your GEMINI_API_KEY and try again."
	msgAnalysisFailed = "The analysis could not be completed. Please try again."
	msgInvalidPDF     = "The uploaded file is not a valid PDF or is corrupted."
	msgEmptyPDF       = "The PDF file appears to be empty."
	msgScannedPDF     = "This PDF appears to be a scanned image with minimal extractable text. " +
		"Please upload a text-based PDF (export it from Word or Google Docs). " +
		"If you only have a scanned copy, use an OCR tool to convert it first."
	msgInternal = "An unexpected error occurred. Please try again."
)

// errorResponse maps an analysis error onto the HTTP status and the message shown
// to the user.
func errorResponse(err error) (int, models.ErrorResponse) {
	resp := models.ErrorResponse{Kind: services.ErrorKind(err)}

	switch {
	case errors.Is(err, services.ErrConfiguration):
		resp.Error = msgConfiguration
		return fiber.StatusServiceUnavailable, resp
	case errors.Is(err, services.ErrAnalysisFailed):
		resp.Error = msgAnalysisFailed
		return fiber.StatusBadGateway, resp
	case errors.Is(err, services.ErrScannedPDF):
		resp.Error = msgScannedPDF
		return fiber.StatusUnprocessableEntity, resp
	case errors.Is(err, services.ErrEmptyPDF):
		resp.Error = msgEmptyPDF
		return fiber.StatusUnprocessableEntity, resp
	case errors.Is(err, services.ErrInvalidPDF):
		resp.Error = msgInvalidPDF
		return fiber.StatusUnprocessableEntity, resp
	case errors.Is(err, services.ErrInvalidInput):
		resp.Error = strings.TrimPrefix(err.Error(), services.ErrInvalidInput.Error()+": ")
		return fiber.StatusBadRequest, resp
	default:
		resp.Error = msgInternal
		return fiber.StatusInternalServerError, resp
	}
}

func writeError(c *fiber.Ctx, err error) error {
	status, resp := errorResponse(err)
	return c.Status(status).JSON(resp)
}
