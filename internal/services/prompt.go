package services

import (
	"fmt"

	"alfredoptarigan/resume-vibes/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt embeds both texts verbatim and pins the JSON contract that
// ParseAnalysis enforces.
func (pb *PromptBuilder) BuildAnalysisPrompt(req models.AnalysisRequest) string {
	return fmt.Sprintf(`Act as a strict HR manager. Analyze the following resume against the provided job description.

RETURN ONLY A VALID JSON OBJECT with this exact structure:
{
  "match_score": <integer 0-100>,
  "vibes_summary": "<short informal paragraph, about 100 words, addressing the candidate directly as You>",
  "strengths": ["<strength 1>", "<strength 2>", "<strength 3>"],
  "weaknesses": ["<weakness 1>", "<weakness 2>", "<weakness 3>"]
}

Rules:
- "match_score" must be a whole number from 0 to 100 estimating how well the resume fits the job.
- "strengths" must contain exactly %[1]d items.
- "weaknesses" must contain exactly %[1]d items and name genuine gaps or nitpicks. Critique strictly.
- Do not add any other fields, markdown or commentary.

JOB DESCRIPTION:
%[2]s

RESUME:
%[3]s
`, models.ListSize, req.JobDescription, req.ResumeText)
}
