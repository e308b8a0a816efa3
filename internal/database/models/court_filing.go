package models

import (
	"time"

	"github.com/google/uuid"
)

// CourtFiling records a case's submission to a physical court. The scheduler
// advances it to scheduled and keeps its hearing date current.
type CourtFiling struct {
	BaseModel
	CaseID       uuid.UUID    `json:"case_id" gorm:"type:uuid;not null;index"`
	District     string       `json:"district" gorm:"size:80;not null"`
	FilingNumber string       `json:"filing_number" gorm:"size:60"`
	Status       FilingStatus `json:"status" gorm:"type:varchar(30);not null;default:'draft'"`
	SubmittedBy  uuid.UUID    `json:"submitted_by" gorm:"type:uuid;not null"`
	FiledAt      *time.Time   `json:"filed_at"`
	HearingDate  *time.Time   `json:"hearing_date" gorm:"type:date"`

	// Relationships
	Case *Case `json:"-" gorm:"foreignKey:CaseID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for CourtFiling
func (CourtFiling) TableName() string {
	return "court_filings"
}
