package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/resume-vibes/internal/models"
)

type AnalysisLogRepository interface {
	Create(ctx context.Context, entry *models.AnalysisLog) error
	FindRecent(ctx context.Context, limit int) ([]models.AnalysisLog, error)
}

type analysisLogRepository struct {
	db *gorm.DB
}

func NewAnalysisLogRepository(db *gorm.DB) AnalysisLogRepository {
	return &analysisLogRepository{db: db}
}

func (r *analysisLogRepository) Create(ctx context.Context, entry *models.AnalysisLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create analysis log: %w", err)
	}
	return nil
}

func (r *analysisLogRepository) FindRecent(ctx context.Context, limit int) ([]models.AnalysisLog, error) {
	var entries []models.AnalysisLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find analysis logs: %w", err)
	}

	return entries, nil
}
