package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleRequest is a queue entry asking for a hearing date for a filed case.
// Display copies of case, client and lawyer names let the queue render
// without joins. Rows are never deleted.
type ScheduleRequest struct {
	BaseModel
	CaseID              uuid.UUID        `json:"case_id" gorm:"type:uuid;not null;index" validate:"required"`
	District            string           `json:"district" gorm:"size:80;not null;index" validate:"required"`
	CourtroomPreference string           `json:"courtroom_preference" gorm:"size:40"`
	Priority            SchedulePriority `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	IsScheduled         bool             `json:"is_scheduled" gorm:"not null;default:false;index"`
	Notes               string           `json:"notes" gorm:"type:text"`
	RequestedBy         uuid.UUID        `json:"requested_by" gorm:"type:uuid;not null"`

	CaseNumber string     `json:"case_number" gorm:"size:40"`
	CaseTitle  string     `json:"case_title" gorm:"size:200"`
	CaseType   string     `json:"case_type" gorm:"size:60"`
	ClientID   uuid.UUID  `json:"client_id" gorm:"type:uuid"`
	ClientName string     `json:"client_name" gorm:"size:120"`
	LawyerID   *uuid.UUID `json:"lawyer_id" gorm:"type:uuid"`
	LawyerName string     `json:"lawyer_name" gorm:"size:120"`

	ScheduledDate      *time.Time `json:"scheduled_date" gorm:"type:date"`
	ScheduledStartTime string     `json:"scheduled_start_time" gorm:"size:5"`
	ScheduledEndTime   string     `json:"scheduled_end_time" gorm:"size:5"`
	ScheduledCourtroom string     `json:"scheduled_courtroom" gorm:"size:40"`
	ScheduledBy        *uuid.UUID `json:"scheduled_by" gorm:"type:uuid"`
	ScheduledAt        *time.Time `json:"scheduled_at"`
	SchedulerNotes     string     `json:"scheduler_notes" gorm:"type:text"`

	// Relationships
	Case *Case `json:"-" gorm:"foreignKey:CaseID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for ScheduleRequest
func (ScheduleRequest) TableName() string {
	return "schedule_requests"
}
