package models

import (
	"time"

	"court-scheduling-backend/internal/calendar"

	"github.com/google/uuid"
)

// Case represents a legal matter moving through filing and scheduling.
// The hearing fields mirror the case's current scheduled entry for display.
type Case struct {
	BaseModel
	CaseNumber      string     `json:"case_number" gorm:"size:40;not null;uniqueIndex" validate:"required,max=40"`
	Title           string     `json:"title" gorm:"size:200"`
	CaseType        string     `json:"case_type" gorm:"size:60;not null" validate:"required,max=60"`
	District        string     `json:"district" gorm:"size:80;not null;index" validate:"required,max=80"`
	Status          CaseStatus `json:"status" gorm:"type:varchar(40);not null;default:'draft';index"`
	ClientID        uuid.UUID  `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	ClientName      string     `json:"client_name" gorm:"size:120"`
	CurrentLawyerID *uuid.UUID `json:"current_lawyer_id" gorm:"type:uuid;index"`
	LawyerName      string     `json:"lawyer_name" gorm:"size:120"`

	HearingDate      *time.Time `json:"hearing_date" gorm:"type:date"`
	HearingStartTime string     `json:"hearing_start_time" gorm:"size:5"`
	HearingEndTime   string     `json:"hearing_end_time" gorm:"size:5"`
	Courtroom        string     `json:"courtroom" gorm:"size:40"`
}

// TableName returns the table name for Case
func (Case) TableName() string {
	return "cases"
}

// HearingWindow returns the cached hearing time window
func (c *Case) HearingWindow() calendar.TimeWindow {
	return calendar.TimeWindow{Start: c.HearingStartTime, End: c.HearingEndTime}
}
