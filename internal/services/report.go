package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/resume-vibes/internal/models"
)

// RenderMarkdownReport formats a result as the downloadable report. doc may be nil.
func RenderMarkdownReport(result *models.AnalysisResult, doc *models.DocumentInfo) string {
	var b strings.Builder

	b.WriteString("# Resume Analysis Report\n\n")
	fmt.Fprintf(&b, "**Match score:** %d/100\n\n", result.MatchScore)

	b.WriteString("## Vibes\n\n")
	b.WriteString(strings.TrimSpace(result.VibesSummary))
	b.WriteString("\n\n")

	b.WriteString("## Strengths\n\n")
	writeNumbered(&b, result.Strengths[:])

	b.WriteString("## Weaknesses\n\n")
	writeNumbered(&b, result.Weaknesses[:])

	if doc != nil {
		fmt.Fprintf(&b, "---\n\n_Résumé: %s (%d page(s), %.2f KB, %d characters extracted)_\n",
			doc.Filename, doc.Pages, doc.SizeKB, doc.Characters)
	}

	return b.String()
}

func writeNumbered(b *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
	b.WriteString("\n")
}
