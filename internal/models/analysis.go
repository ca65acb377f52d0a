package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// Analysis is one resume analysis job. The full report is stored as a JSON
// document; OverallScore and ATSVerdict are duplicated into columns so
// history listings avoid unmarshalling the report.
type Analysis struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID    string         `gorm:"type:text;not null;index" json:"session_id"`
	TargetRole   string         `gorm:"type:text;not null" json:"target_role"`
	CustomJD     *string        `gorm:"type:text" json:"-"`
	Location     string         `gorm:"type:text" json:"location"`
	Filename     string         `gorm:"type:text;not null" json:"filename"`
	FilePath     string         `gorm:"type:text" json:"-"`
	Status       AnalysisStatus `gorm:"not null;default:'queued'" json:"status"`
	OverallScore *int           `gorm:"type:int" json:"overall_score,omitempty"`
	ATSVerdict   *string        `gorm:"type:text" json:"ats_verdict,omitempty"`
	ReportJSON   *string        `gorm:"type:jsonb" json:"-"`
	ErrorMessage *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}
