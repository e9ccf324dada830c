package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-vibes/internal/config"
	"alfredoptarigan/resume-vibes/internal/models"
	"alfredoptarigan/resume-vibes/internal/repositories"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

type analyzerService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
	logRepo       repositories.AnalysisLogRepository
	geminiConfig  config.GeminiConfig
}

// NewAnalyzerService wires one synchronous analysis per call. logRepo may be nil,
// in which case outcomes are not recorded.
func NewAnalyzerService(
	geminiService GeminiService,
	logRepo repositories.AnalysisLogRepository,
	geminiConfig config.GeminiConfig,
) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		logRepo:       logRepo,
		geminiConfig:  geminiConfig,
	}
}

func (a *analyzerService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	start := time.Now()

	result, err := a.analyze(ctx, req)
	a.record(ctx, result, err, time.Since(start))

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (a *analyzerService) analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if strings.TrimSpace(req.JobDescription) == "" {
		return nil, fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		return nil, fmt.Errorf("%w: resume text is required", ErrInvalidInput)
	}

	prompt := a.promptBuilder.BuildAnalysisPrompt(req)
	log.Printf("📝 Analysis prompt length: %d characters", len(prompt))

	log.Println("🤖 Analyzing resume with Gemini...")
	response, err := a.geminiService.Analyze(ctx, prompt, a.geminiConfig)
	if err != nil {
		log.Printf("❌ Gemini analysis failed: %v", err)
		return nil, err
	}

	result, err := ParseAnalysis(response)
	if err != nil {
		log.Printf("❌ Failed to parse analysis response: %v", err)
		return nil, err
	}

	log.Printf("✅ Analysis completed with match score %d", result.MatchScore)
	return result, nil
}

func (a *analyzerService) record(ctx context.Context, result *models.AnalysisResult, analysisErr error, elapsed time.Duration) {
	if a.logRepo == nil {
		return
	}

	entry := &models.AnalysisLog{
		ID:         uuid.New(),
		Status:     models.StatusCompleted,
		Model:      a.geminiConfig.Model,
		DurationMS: elapsed.Milliseconds(),
	}
	if analysisErr != nil {
		entry.Status = models.StatusFailed
		entry.ErrorKind = ErrorKind(analysisErr)
	} else if result != nil {
		score := result.MatchScore
		entry.MatchScore = &score
	}

	if err := a.logRepo.Create(context.WithoutCancel(ctx), entry); err != nil {
		log.Printf("⚠️  Failed to record analysis outcome: %v", err)
	}
}
