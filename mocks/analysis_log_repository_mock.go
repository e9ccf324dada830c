package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/resume-vibes/internal/models"
)

type MockAnalysisLogRepository struct {
	mock.Mock
}

func (m *MockAnalysisLogRepository) Create(ctx context.Context, entry *models.AnalysisLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAnalysisLogRepository) FindRecent(ctx context.Context, limit int) ([]models.AnalysisLog, error) {
	args := m.Called(ctx, limit)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.AnalysisLog), args.Error(1)
}
