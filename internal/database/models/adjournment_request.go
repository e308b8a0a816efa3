package models

import (
	"time"

	"github.com/google/uuid"
)

// AdjournmentRequest is a client's proposal to move a scheduled hearing.
// The original hearing is snapshotted at creation; the New* fields hold the
// scheduler's decision, which may differ from the client's preference.
type AdjournmentRequest struct {
	BaseModel
	CaseID     uuid.UUID  `json:"case_id" gorm:"type:uuid;not null;index"`
	ClientID   uuid.UUID  `json:"client_id" gorm:"type:uuid;not null;index"`
	LawyerID   *uuid.UUID `json:"lawyer_id" gorm:"type:uuid"`
	District   string     `json:"district" gorm:"size:80;not null;index"`
	CaseNumber string     `json:"case_number" gorm:"size:40"`

	OriginalHearingDate *time.Time `json:"original_hearing_date" gorm:"type:date"`
	OriginalStartTime   string     `json:"original_start_time" gorm:"size:5"`
	OriginalEndTime     string     `json:"original_end_time" gorm:"size:5"`
	OriginalCourtroom   string     `json:"original_courtroom" gorm:"size:40"`

	PreferredDate      time.Time          `json:"preferred_date" gorm:"type:date;not null"`
	PreferredStartTime string             `json:"preferred_start_time" gorm:"size:5"`
	PreferredEndTime   string             `json:"preferred_end_time" gorm:"size:5"`
	Reason             string             `json:"reason" gorm:"type:text;not null"`
	Urgency            AdjournmentUrgency `json:"urgency" gorm:"type:varchar(20);not null;default:'medium'"`
	Status             AdjournmentStatus  `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`

	NewHearingDate *time.Time `json:"new_hearing_date" gorm:"type:date"`
	NewStartTime   string     `json:"new_start_time" gorm:"size:5"`
	NewEndTime     string     `json:"new_end_time" gorm:"size:5"`
	NewCourtroom   string     `json:"new_courtroom" gorm:"size:40"`
	ResolvedBy     *uuid.UUID `json:"resolved_by" gorm:"type:uuid"`
	ResolvedAt     *time.Time `json:"resolved_at"`
	SchedulerNotes string     `json:"scheduler_notes" gorm:"type:text"`

	// Relationships
	Case *Case `json:"-" gorm:"foreignKey:CaseID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for AdjournmentRequest
func (AdjournmentRequest) TableName() string {
	return "adjournment_requests"
}
