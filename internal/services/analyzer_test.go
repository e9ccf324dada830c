package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-vibes/internal/config"
	"alfredoptarigan/resume-vibes/internal/models"
	"alfredoptarigan/resume-vibes/internal/services"
	"alfredoptarigan/resume-vibes/mocks"
)

var geminiCfg = config.GeminiConfig{APIKey: "key", Model: "gemini-2.0-flash"}

var request = models.AnalysisRequest{
	JobDescription: "Senior Go Engineer, distributed systems",
	ResumeText:     "Jane Doe, seven years of Go",
}

const modelReply = "```json\n" + `{"match_score":82,"vibes_summary":"Strong technical fit","strengths":["a","b","c"],"weaknesses":["d","e","f"]}` + "\n```"

func promptWithInputs(prompt string) bool {
	return strings.Contains(prompt, request.JobDescription) && strings.Contains(prompt, request.ResumeText)
}

func TestAnalyzeSuccess(t *testing.T) {
	gemini := new(mocks.MockGeminiService)
	gemini.On("Analyze", mock.Anything, mock.MatchedBy(promptWithInputs), geminiCfg).Return(modelReply, nil)

	analyzer := services.NewAnalyzerService(gemini, nil, geminiCfg)

	result, err := analyzer.Analyze(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, 82, result.MatchScore)
	assert.Equal(t, "Strong technical fit", result.VibesSummary)
	assert.Equal(t, [models.ListSize]string{"a", "b", "c"}, result.Strengths)
	assert.Equal(t, [models.ListSize]string{"d", "e", "f"}, result.Weaknesses)
	gemini.AssertExpectations(t)
}

func TestAnalyzeRejectsEmptyInputWithoutCallingGemini(t *testing.T) {
	gemini := new(mocks.MockGeminiService)
	analyzer := services.NewAnalyzerService(gemini, nil, geminiCfg)

	for _, req := range []models.AnalysisRequest{
		{JobDescription: "  ", ResumeText: "resume"},
		{JobDescription: "jd", ResumeText: ""},
	} {
		result, err := analyzer.Analyze(context.Background(), req)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	}

	gemini.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyzePropagatesClientErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "configuration", err: fmt.Errorf("%w: no key", services.ErrConfiguration), want: services.ErrConfiguration},
		{name: "network", err: fmt.Errorf("%w: timeout", services.ErrAnalysisFailed), want: services.ErrAnalysisFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gemini := new(mocks.MockGeminiService)
			gemini.On("Analyze", mock.Anything, mock.Anything, geminiCfg).Return("", tt.err)

			result, err := services.NewAnalyzerService(gemini, nil, geminiCfg).Analyze(context.Background(), request)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAnalyzeMalformedReplyFails(t *testing.T) {
	gemini := new(mocks.MockGeminiService)
	gemini.On("Analyze", mock.Anything, mock.Anything, geminiCfg).
		Return(`{"match_score":150,"vibes_summary":"s","strengths":["a","b","c"],"weaknesses":["d","e","f"]}`, nil)

	result, err := services.NewAnalyzerService(gemini, nil, geminiCfg).Analyze(context.Background(), request)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrAnalysisFailed)
}

func TestAnalyzeRecordsOutcome(t *testing.T) {
	gemini := new(mocks.MockGeminiService)
	gemini.On("Analyze", mock.Anything, mock.Anything, geminiCfg).Return(modelReply, nil)

	repo := new(mocks.MockAnalysisLogRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(entry *models.AnalysisLog) bool {
		return entry.Status == models.StatusCompleted &&
			entry.MatchScore != nil && *entry.MatchScore == 82 &&
			entry.ErrorKind == "" &&
			entry.Model == "gemini-2.0-flash"
	})).Return(nil)

	_, err := services.NewAnalyzerService(gemini, repo, geminiCfg).Analyze(context.Background(), request)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAnalyzeRecordsFailureAndIgnoresLogErrors(t *testing.T) {
	gemini := new(mocks.MockGeminiService)
	gemini.On("Analyze", mock.Anything, mock.Anything, geminiCfg).Return("", fmt.Errorf("%w: rate limited", services.ErrAnalysisFailed))

	repo := new(mocks.MockAnalysisLogRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(entry *models.AnalysisLog) bool {
		return entry.Status == models.StatusFailed &&
			entry.MatchScore == nil &&
			entry.ErrorKind == services.KindAnalysisFailed
	})).Return(assert.AnError)

	result, err := services.NewAnalyzerService(gemini, repo, geminiCfg).Analyze(context.Background(), request)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrAnalysisFailed)
	assert.NotErrorIs(t, err, assert.AnError)
	repo.AssertExpectations(t)
}
