package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-vibes/internal/models"
	"alfredoptarigan/resume-vibes/internal/services"
)

const reportFilename = "resume_analysis_report.md"

type AnalyzeHandler struct {
	uploadService services.UploadService
	pdfParser     services.PDFParserService
	analyzer      services.AnalyzerService
	settings      PageSettings
}

func NewAnalyzeHandler(
	uploadService services.UploadService,
	pdfParser services.PDFParserService,
	analyzer services.AnalyzerService,
	settings PageSettings,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		uploadService: uploadService,
		pdfParser:     pdfParser,
		analyzer:      analyzer,
		settings:      settings,
	}
}

// HandleAnalyzeAPI handles POST /api/v1/analyze
func (h *AnalyzeHandler) HandleAnalyzeAPI(c *fiber.Ctx) error {
	resp, _, err := h.analyze(c)
	if err != nil {
		return writeError(c, err)
	}

	if c.Query("format") == "markdown" {
		c.Attachment(reportFilename)
		c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
		return c.SendString(services.RenderMarkdownReport(resp.Result, resp.Document))
	}

	return c.JSON(resp)
}

// HandleAnalyzePage handles POST /analyze and re-renders the index page with
// either the result or an error banner, never both.
func (h *AnalyzeHandler) HandleAnalyzePage(c *fiber.Ctx) error {
	view := h.settings.view()
	view.JobDescription = c.FormValue("job_description")

	resp, resumeText, err := h.analyze(c)
	if err != nil {
		status, errResp := errorResponse(err)
		view.Error = errResp.Error
		return renderIndex(c, status, view)
	}

	view.Result = resp.Result
	view.Document = resp.Document
	view.ResumeText = resumeText
	return renderIndex(c, fiber.StatusOK, view)
}

// analyze also returns the extracted résumé text so the page can show what the
// model read.
func (h *AnalyzeHandler) analyze(c *fiber.Ctx) (*models.AnalyzeResponse, string, error) {
	jobDescription := c.FormValue("job_description")
	if strings.TrimSpace(jobDescription) == "" {
		return nil, "", fmt.Errorf("%w: job_description is required", services.ErrInvalidInput)
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return nil, "", fmt.Errorf("%w: resume PDF is required", services.ErrInvalidInput)
	}

	data, err := h.uploadService.ReadPDF(file)
	if err != nil {
		return nil, "", err
	}

	content, err := h.pdfParser.ExtractText(data)
	if err != nil {
		return nil, "", err
	}

	result, err := h.analyzer.Analyze(c.UserContext(), models.AnalysisRequest{
		JobDescription: jobDescription,
		ResumeText:     content.Text,
	})
	if err != nil {
		return nil, "", err
	}

	return &models.AnalyzeResponse{
		Result:   result,
		Document: services.NewDocumentInfo(file.Filename, len(data), content),
	}, content.Text, nil
}
