package models

import (
	"time"

	"court-scheduling-backend/internal/calendar"

	"github.com/google/uuid"
)

// ScheduledEntry is the canonical calendar booking of a case into a courtroom.
// Entries are append-only per case: an adjournment marks the current entry
// adjourned, points it at its successor and appends the successor with the
// next sequence number.
type ScheduledEntry struct {
	BaseModel
	ScheduleRequestID uuid.UUID   `json:"schedule_request_id" gorm:"type:uuid;not null;index"`
	CaseID            uuid.UUID   `json:"case_id" gorm:"type:uuid;not null;index"`
	Sequence          int         `json:"sequence" gorm:"not null;default:1"`
	District          string      `json:"district" gorm:"size:80;not null;index:idx_scheduled_entries_day,priority:1"`
	HearingDate       time.Time   `json:"hearing_date" gorm:"type:date;not null;index:idx_scheduled_entries_day,priority:2"`
	Courtroom         string      `json:"courtroom" gorm:"size:40;not null"`
	StartTime         string      `json:"start_time" gorm:"size:5;not null"`
	EndTime           string      `json:"end_time" gorm:"size:5;not null"`
	Status            EntryStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled';index"`
	SupersededByID    *uuid.UUID  `json:"superseded_by_id" gorm:"type:uuid"`

	ScheduledBy              uuid.UUID `json:"scheduled_by" gorm:"type:uuid;not null"`
	Notes                    string    `json:"notes" gorm:"type:text"`
	EstimatedDurationMinutes int       `json:"estimated_duration_minutes"`

	CaseNumber string     `json:"case_number" gorm:"size:40"`
	CaseTitle  string     `json:"case_title" gorm:"size:200"`
	CaseType   string     `json:"case_type" gorm:"size:60"`
	ClientID   uuid.UUID  `json:"client_id" gorm:"type:uuid"`
	ClientName string     `json:"client_name" gorm:"size:120"`
	LawyerID   *uuid.UUID `json:"lawyer_id" gorm:"type:uuid"`
	LawyerName string     `json:"lawyer_name" gorm:"size:120"`

	// Relationships
	Case            *Case            `json:"-" gorm:"foreignKey:CaseID;constraint:OnDelete:RESTRICT"`
	ScheduleRequest *ScheduleRequest `json:"-" gorm:"foreignKey:ScheduleRequestID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for ScheduledEntry
func (ScheduledEntry) TableName() string {
	return "scheduled_entries"
}

// Window returns the booked time window
func (e *ScheduledEntry) Window() calendar.TimeWindow {
	return calendar.TimeWindow{Start: e.StartTime, End: e.EndTime}
}

// Booking returns the view of the entry used by the conflict rule
func (e *ScheduledEntry) Booking() calendar.Booking {
	return calendar.Booking{
		ID:        e.ID.String(),
		District:  e.District,
		Courtroom: e.Courtroom,
		Date:      e.HearingDate,
		Window:    e.Window(),
	}
}
