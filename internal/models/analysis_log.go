package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusCompleted AnalysisStatus = "completed"
	StatusFailed    AnalysisStatus = "failed"
)

// AnalysisLog is outcome metadata for a single analysis. It holds no résumé or
// job description content.
type AnalysisLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Status     AnalysisStatus `gorm:"type:text;not null" json:"status"`
	ErrorKind  string         `gorm:"type:text" json:"error_kind,omitempty"`
	MatchScore *int           `gorm:"type:integer" json:"match_score,omitempty"`
	Model      string         `gorm:"type:text" json:"model"`
	DurationMS int64          `gorm:"not null" json:"duration_ms"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (AnalysisLog) TableName() string {
	return "analysis_logs"
}
