package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/resume-vibes/internal/config"
)

type MockGeminiService struct {
	mock.Mock
}

func (m *MockGeminiService) Analyze(ctx context.Context, prompt string, cfg config.GeminiConfig) (string, error) {
	args := m.Called(ctx, prompt, cfg)
	return args.String(0), args.Error(1)
}

func (m *MockGeminiService) ListModels(ctx context.Context, cfg config.GeminiConfig) ([]string, error) {
	args := m.Called(ctx, cfg)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}
