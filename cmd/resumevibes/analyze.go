package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"alfredoptarigan/resume-vibes/internal/models"
	"alfredoptarigan/resume-vibes/internal/services"
)

type analyzeOptions struct {
	*rootOptions
	resumePath string
	jobFile    string
	format     string
	outputPath string
}

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	opts := &analyzeOptions{rootOptions: root}

	var analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a PDF resume against a job description file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts)
		},
	}
	analyzeCmd.Flags().StringVarP(&opts.resumePath, "resume", "r", "", "Path to the resume PDF")
	analyzeCmd.Flags().StringVarP(&opts.jobFile, "job", "j", "", "Path to the job description text file, or - for stdin")
	analyzeCmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json or markdown")
	analyzeCmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the report to a file instead of stdout")
	analyzeCmd.MarkFlagRequired("resume")
	analyzeCmd.MarkFlagRequired("job")

	return analyzeCmd
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions) error {
	switch opts.format {
	case "text", "json", "markdown":
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	jobDescription, err := readJobDescription(opts.jobFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg := opts.loadConfig()

	uploadService := services.NewUploadService(cfg.Storage.MaxFileSize)
	data, err := uploadService.ReadPDFFile(opts.resumePath)
	if err != nil {
		return err
	}

	content, err := services.NewPDFParserService(cfg.Analysis.MinResumeChars).ExtractText(data)
	if err != nil {
		return err
	}

	analyzer := services.NewAnalyzerService(services.NewGeminiService(nil), nil, cfg.Gemini)
	result, err := analyzer.Analyze(cmd.Context(), models.AnalysisRequest{
		JobDescription: jobDescription,
		ResumeText:     content.Text,
	})
	if err != nil {
		return err
	}

	doc := services.NewDocumentInfo(opts.resumePath, len(data), content)

	out := cmd.OutOrStdout()
	if opts.outputPath != "" {
		f, err := os.Create(opts.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", opts.outputPath, err)
		}
		defer f.Close()
		out = f
	}

	if err := writeReport(out, opts.format, result, doc); err != nil {
		return err
	}

	if opts.outputPath != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s Report saved to %s\n", color.GreenString("✓"), opts.outputPath)
	}
	return nil
}

func readJobDescription(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: job description is empty", services.ErrInvalidInput)
	}
	return text, nil
}

func writeReport(w io.Writer, format string, result *models.AnalysisResult, doc *models.DocumentInfo) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(models.AnalyzeResponse{Result: result, Document: doc})
	case "markdown":
		_, err := io.WriteString(w, services.RenderMarkdownReport(result, doc))
		return err
	default:
		printAnalysis(w, result, doc)
		return nil
	}
}

func printAnalysis(w io.Writer, result *models.AnalysisResult, doc *models.DocumentInfo) {
	scoreColor := color.RedString
	if result.MatchScore >= 75 {
		scoreColor = color.GreenString
	} else if result.MatchScore >= 50 {
		scoreColor = color.YellowString
	}

	fmt.Fprintln(w, color.New(color.Bold, color.Underline).Sprint("Match Analysis"))
	fmt.Fprintf(w, "Score: %s\n", scoreColor("%d/100", result.MatchScore))

	fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(result.VibesSummary))

	fmt.Fprintf(w, "\n%s\n", color.GreenString("Strengths:"))
	for _, s := range result.Strengths {
		fmt.Fprintf(w, "  %s %s\n", color.GreenString("✓"), s)
	}

	fmt.Fprintf(w, "\n%s\n", color.RedString("Weaknesses:"))
	for _, s := range result.Weaknesses {
		fmt.Fprintf(w, "  %s %s\n", color.RedString("✗"), s)
	}

	if doc != nil {
		fmt.Fprintf(w, "\n%s\n", color.New(color.Faint).Sprintf(
			"%s · %d page(s) · %.2f KB · %d characters extracted",
			doc.Filename, doc.Pages, doc.SizeKB, doc.Characters))
	}
}
