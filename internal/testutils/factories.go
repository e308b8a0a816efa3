package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"court-scheduling-backend/internal/database/models"

	"github.com/google/uuid"
)

var caseCounter atomic.Int64

// Date builds a civil date at midnight UTC
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CaseFactory provides methods to create test Case data
type CaseFactory struct{}

// NewCaseFactory creates a new CaseFactory
func NewCaseFactory() *CaseFactory {
	return &CaseFactory{}
}

// Create creates a filed test Case with a unique case number and a lawyer
func (f *CaseFactory) Create() *models.Case {
	lawyerID := uuid.New()
	n := caseCounter.Add(1)
	return &models.Case{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CaseNumber:      fmt.Sprintf("CL2025-T%05d", n),
		Title:           "Perera v. Silva",
		CaseType:        "civil",
		District:        "Colombo",
		Status:          models.CaseStatusFiled,
		ClientID:        uuid.New(),
		ClientName:      "Kamala Perera",
		CurrentLawyerID: &lawyerID,
		LawyerName:      "Nimal Silva",
	}
}

// WithStatus sets a custom status for the case
func (f *CaseFactory) WithStatus(status models.CaseStatus) *models.Case {
	c := f.Create()
	c.Status = status
	return c
}

// WithDistrict sets a custom district for the case
func (f *CaseFactory) WithDistrict(district string) *models.Case {
	c := f.Create()
	c.District = district
	return c
}

// WithHearing returns a hearing_scheduled case holding the given hearing
func (f *CaseFactory) WithHearing(date time.Time, start, end, courtroom string) *models.Case {
	c := f.WithStatus(models.CaseStatusHearingScheduled)
	c.HearingDate = &date
	c.HearingStartTime = start
	c.HearingEndTime = end
	c.Courtroom = courtroom
	return c
}

// ScheduleRequestFactory provides methods to create test ScheduleRequest data
type ScheduleRequestFactory struct{}

// NewScheduleRequestFactory creates a new ScheduleRequestFactory
func NewScheduleRequestFactory() *ScheduleRequestFactory {
	return &ScheduleRequestFactory{}
}

// ForCase creates an unscheduled request copying the case's display fields
func (f *ScheduleRequestFactory) ForCase(c *models.Case) *models.ScheduleRequest {
	requestedBy := uuid.New()
	if c.CurrentLawyerID != nil {
		requestedBy = *c.CurrentLawyerID
	}
	return &models.ScheduleRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CaseID:              c.ID,
		District:            c.District,
		CourtroomPreference: "Court-1",
		Priority:            models.PriorityMedium,
		RequestedBy:         requestedBy,
		CaseNumber:          c.CaseNumber,
		CaseTitle:           c.Title,
		CaseType:            c.CaseType,
		ClientID:            c.ClientID,
		ClientName:          c.ClientName,
		LawyerID:            c.CurrentLawyerID,
		LawyerName:          c.LawyerName,
	}
}

// WithPriority creates a request for c with a custom priority
func (f *ScheduleRequestFactory) WithPriority(c *models.Case, priority models.SchedulePriority) *models.ScheduleRequest {
	r := f.ForCase(c)
	r.Priority = priority
	return r
}

// ScheduledEntryFactory provides methods to create test ScheduledEntry data
type ScheduledEntryFactory struct{}

// NewScheduledEntryFactory creates a new ScheduledEntryFactory
func NewScheduledEntryFactory() *ScheduledEntryFactory {
	return &ScheduledEntryFactory{}
}

// ForRequest creates the first scheduled entry of a request's case
func (f *ScheduledEntryFactory) ForRequest(r *models.ScheduleRequest, date time.Time, start, end, courtroom string) *models.ScheduledEntry {
	return &models.ScheduledEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ScheduleRequestID: r.ID,
		CaseID:            r.CaseID,
		Sequence:          1,
		District:          r.District,
		HearingDate:       date,
		Courtroom:         courtroom,
		StartTime:         start,
		EndTime:           end,
		Status:            models.EntryStatusScheduled,
		ScheduledBy:       uuid.New(),
		CaseNumber:        r.CaseNumber,
		CaseTitle:         r.CaseTitle,
		CaseType:          r.CaseType,
		ClientID:          r.ClientID,
		ClientName:        r.ClientName,
		LawyerID:          r.LawyerID,
		LawyerName:        r.LawyerName,
	}
}

// AdjournmentRequestFactory provides methods to create test AdjournmentRequest data
type AdjournmentRequestFactory struct{}

// NewAdjournmentRequestFactory creates a new AdjournmentRequestFactory
func NewAdjournmentRequestFactory() *AdjournmentRequestFactory {
	return &AdjournmentRequestFactory{}
}

// ForCase creates a pending request snapshotting the case's hearing
func (f *AdjournmentRequestFactory) ForCase(c *models.Case, preferred time.Time) *models.AdjournmentRequest {
	return &models.AdjournmentRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CaseID:              c.ID,
		ClientID:            c.ClientID,
		LawyerID:            c.CurrentLawyerID,
		District:            c.District,
		CaseNumber:          c.CaseNumber,
		OriginalHearingDate: c.HearingDate,
		OriginalStartTime:   c.HearingStartTime,
		OriginalEndTime:     c.HearingEndTime,
		OriginalCourtroom:   c.Courtroom,
		PreferredDate:       preferred,
		PreferredStartTime:  "14:00",
		PreferredEndTime:    "15:00",
		Reason:              "Counsel unavailable",
		Urgency:             models.UrgencyMedium,
		Status:              models.AdjournmentStatusPending,
	}
}

// CourtFilingFactory provides methods to create test CourtFiling data
type CourtFilingFactory struct{}

// NewCourtFilingFactory creates a new CourtFilingFactory
func NewCourtFilingFactory() *CourtFilingFactory {
	return &CourtFilingFactory{}
}

// ForCase creates a filed court filing for c
func (f *CourtFilingFactory) ForCase(c *models.Case) *models.CourtFiling {
	filedAt := time.Now()
	submittedBy := uuid.New()
	if c.CurrentLawyerID != nil {
		submittedBy = *c.CurrentLawyerID
	}
	return &models.CourtFiling{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CaseID:       c.ID,
		District:     c.District,
		FilingNumber: "DC-" + c.CaseNumber,
		Status:       models.FilingStatusFiled,
		SubmittedBy:  submittedBy,
		FiledAt:      &filedAt,
	}
}
