package service

import (
	"context"
	"strings"
	"time"

	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"
	apperrors "court-scheduling-backend/internal/errors"
	"court-scheduling-backend/internal/repository"

	"github.com/google/uuid"
)

// CalendarService renders read-only views of the district calendar
type CalendarService struct {
	store repository.StoreInterface
}

// NewCalendarService creates a new calendar service
func NewCalendarService(store repository.StoreInterface) *CalendarService {
	return &CalendarService{store: store}
}

// HearingSummary is one hearing as shown on the month calendar
type HearingSummary struct {
	EntryID    uuid.UUID          `json:"entry_id"`
	CaseID     uuid.UUID          `json:"case_id"`
	CaseNumber string             `json:"case_number"`
	CaseTitle  string             `json:"case_title"`
	CaseType   string             `json:"case_type"`
	ClientName string             `json:"client_name"`
	LawyerName string             `json:"lawyer_name"`
	Courtroom  string             `json:"courtroom"`
	StartTime  string             `json:"start_time"`
	EndTime    string             `json:"end_time"`
	Status     models.EntryStatus `json:"status"`
}

// MonthCalendarResponse groups a month's hearings by civil date
type MonthCalendarResponse struct {
	District string                      `json:"district"`
	Year     int                         `json:"year"`
	Month    int                         `json:"month"`
	Days     map[string][]HearingSummary `json:"days"`
}

// QueueFilter narrows ScheduleRequestsQueue
type QueueFilter struct {
	District    string
	IsScheduled *bool
}

// CalendarForMonth returns the current hearings of a district month keyed by
// date. Adjourned and cancelled entries are left out.
func (s *CalendarService) CalendarForMonth(ctx context.Context, district string, year, month int) (*MonthCalendarResponse, error) {
	district = strings.TrimSpace(district)
	if district == "" {
		return nil, apperrors.NewValidationError("district", "district is required")
	}
	first, last, err := calendar.MonthRange(year, month)
	if err != nil {
		return nil, apperrors.NewValidationError("month", err.Error())
	}

	entries, err := s.store.ScheduledEntries().ListByDistrictAndRange(ctx, district, first, last, currentEntryStatuses())
	if err != nil {
		return nil, translateStoreError("calendar for month", err)
	}

	days := make(map[string][]HearingSummary)
	for i := range entries {
		e := &entries[i]
		day := calendar.FormatDate(e.HearingDate)
		days[day] = append(days[day], HearingSummary{
			EntryID:    e.ID,
			CaseID:     e.CaseID,
			CaseNumber: orDefault(e.CaseNumber, UnknownName),
			CaseTitle:  orDefault(e.CaseTitle, UnknownName),
			CaseType:   e.CaseType,
			ClientName: orDefault(e.ClientName, UnknownName),
			LawyerName: orDefault(e.LawyerName, NotAssignedLawyer),
			Courtroom:  e.Courtroom,
			StartTime:  e.StartTime,
			EndTime:    e.EndTime,
			Status:     e.Status,
		})
	}

	return &MonthCalendarResponse{
		District: district,
		Year:     year,
		Month:    month,
		Days:     days,
	}, nil
}

// ScheduleRequestsQueue lists schedule requests by priority, newest first
// within a priority. Without an explicit flag only unscheduled requests are
// returned.
func (s *CalendarService) ScheduleRequestsQueue(ctx context.Context, filter QueueFilter) ([]ScheduleRequestResponse, error) {
	isScheduled := false
	if filter.IsScheduled != nil {
		isScheduled = *filter.IsScheduled
	}

	requests, err := s.store.ScheduleRequests().ListQueue(ctx, repository.QueueFilter{
		District:    strings.TrimSpace(filter.District),
		IsScheduled: &isScheduled,
	})
	if err != nil {
		return nil, translateStoreError("list schedule requests", err)
	}

	out := make([]ScheduleRequestResponse, len(requests))
	for i := range requests {
		out[i] = *toScheduleRequestResponse(&requests[i])
	}
	return out, nil
}

// UpcomingHearings returns the active entries of a district on date
func (s *CalendarService) UpcomingHearings(ctx context.Context, district string, date time.Time) ([]models.ScheduledEntry, error) {
	day := calendar.DateOf(date, nil)
	entries, err := s.store.ScheduledEntries().ListByDistrictAndRange(ctx, district, day, day, models.ActiveEntryStatuses())
	if err != nil {
		return nil, translateStoreError("list upcoming hearings", err)
	}
	return entries, nil
}
