package repository

import (
	"time"

	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"

	"github.com/google/uuid"
)

// CaseFilter narrows case listings. Empty fields match everything.
type CaseFilter struct {
	District string
	Status   models.CaseStatus
	ClientID *uuid.UUID
	LawyerID *uuid.UUID
}

// QueueFilter narrows the schedule request queue
type QueueFilter struct {
	District    string
	IsScheduled *bool
}

// AdjournmentFilter narrows adjournment request listings
type AdjournmentFilter struct {
	District string
	Status   models.AdjournmentStatus
	CaseID   *uuid.UUID
	ClientID *uuid.UUID
}

// HearingUpdate carries the hearing fields written onto a case. LawyerID is
// the value read under lock; the update only applies while the row still
// holds it and writes it back unchanged.
type HearingUpdate struct {
	Status    models.CaseStatus
	LawyerID  *uuid.UUID
	Date      time.Time
	Window    calendar.TimeWindow
	Courtroom string
	UpdatedBy string
}

// Allocation is the slot recorded on a schedule request
type Allocation struct {
	Date        time.Time
	Window      calendar.TimeWindow
	Courtroom   string
	ScheduledBy uuid.UUID
	ScheduledAt time.Time
	Notes       string
}

// Resolution is the outcome written onto a pending adjournment request
type Resolution struct {
	Status     models.AdjournmentStatus
	NewDate    *time.Time
	NewWindow  calendar.TimeWindow
	Courtroom  string
	ResolvedBy uuid.UUID
	ResolvedAt time.Time
	Notes      string
}
