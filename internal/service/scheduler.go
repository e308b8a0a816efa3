package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"court-scheduling-backend/internal/auth"
	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"
	apperrors "court-scheduling-backend/internal/errors"
	"court-scheduling-backend/internal/logger"
	"court-scheduling-backend/internal/notification"
	"court-scheduling-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchedulerService allocates hearings into the district calendar
type SchedulerService struct {
	store     repository.StoreInterface
	policy    calendar.Policy
	publisher notification.Publisher
	validator *validator.Validate
	now       func() time.Time
}

// NewSchedulerService creates a new scheduler service
func NewSchedulerService(store repository.StoreInterface, policy calendar.Policy, publisher notification.Publisher, validator *validator.Validate) *SchedulerService {
	return &SchedulerService{
		store:     store,
		policy:    policy,
		publisher: publisher,
		validator: validator,
		now:       time.Now,
	}
}

// ScheduleCaseRequest represents a scheduler's allocation of a hearing slot
type ScheduleCaseRequest struct {
	HearingDate string `json:"hearing_date" validate:"required" example:"2025-12-15"`
	StartTime   string `json:"start_time" validate:"required" example:"09:00"`
	EndTime     string `json:"end_time" validate:"required" example:"10:00"`
	Courtroom   string `json:"courtroom" validate:"max=40" example:"Court-1"`
	Notes       string `json:"notes" validate:"max=2000"`
}

// ScheduledEntryResponse represents a calendar entry
type ScheduledEntryResponse struct {
	ID                uuid.UUID          `json:"id"`
	ScheduleRequestID uuid.UUID          `json:"schedule_request_id"`
	CaseID            uuid.UUID          `json:"case_id"`
	Sequence          int                `json:"sequence"`
	District          string             `json:"district"`
	Courtroom         string             `json:"courtroom"`
	HearingDate       string             `json:"hearing_date"`
	StartTime         string             `json:"start_time"`
	EndTime           string             `json:"end_time"`
	Status            models.EntryStatus `json:"status"`
	SupersededByID    *uuid.UUID         `json:"superseded_by_id,omitempty"`
	ScheduledBy       uuid.UUID          `json:"scheduled_by"`
	Notes             string             `json:"notes,omitempty"`
	CaseNumber        string             `json:"case_number"`
	CaseTitle         string             `json:"case_title"`
	ClientName        string             `json:"client_name"`
	LawyerName        string             `json:"lawyer_name"`
	CreatedAt         string             `json:"created_at"`
}

// SlotAvailability flags one standard slot as free or occupied
type SlotAvailability struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	Available  bool   `json:"available"`
	CaseNumber string `json:"case_number,omitempty"`
	Courtroom  string `json:"courtroom,omitempty"`
}

// AvailableSlotsResponse lists the standard slots of one day
type AvailableSlotsResponse struct {
	District  string             `json:"district"`
	Date      string             `json:"date"`
	Courtroom string             `json:"courtroom,omitempty"`
	Slots     []SlotAvailability `json:"slots"`
}

// ScheduleCase books the hearing of a schedule request. The request, the
// calendar entry, the case and its court filing are written in one
// transaction serialized on the slot partition.
func (s *SchedulerService) ScheduleCase(ctx context.Context, actor *auth.Principal, requestID uuid.UUID, req *ScheduleCaseRequest) (*ScheduledEntryResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	date, err := parseDateField("hearing_date", req.HearingDate)
	if err != nil {
		return nil, err
	}
	window, err := parseWindow("start_time", "end_time", req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	var entry *models.ScheduledEntry
	err = s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		sr, err := tx.ScheduleRequests().GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return notFound(err, apperrors.ErrScheduleRequestNotFound)
		}
		if sr.IsScheduled {
			return apperrors.ErrAlreadyScheduled
		}

		courtroom := orDefault(strings.TrimSpace(req.Courtroom), sr.CourtroomPreference)
		if courtroom == "" {
			return apperrors.NewValidationError("courtroom", "courtroom is required when the request has no preference")
		}

		candidate := calendar.Booking{District: sr.District, Courtroom: courtroom, Date: date, Window: window}
		if err := tx.LockPartition(ctx, s.policy.PartitionKey(sr.District, courtroom, date)); err != nil {
			return err
		}
		if err := s.checkConflict(ctx, tx, candidate, ""); err != nil {
			return err
		}

		c, err := tx.Cases().GetByIDForUpdate(ctx, sr.CaseID)
		if err != nil {
			return notFound(err, apperrors.ErrCaseNotFound)
		}
		// a scheduled case is only moved again through adjournment
		if c.Status == models.CaseStatusHearingScheduled {
			return apperrors.NewInvalidStateError("case", string(c.Status), "schedule hearing")
		}
		next, err := c.Status.Transition(models.CaseStatusHearingScheduled, "schedule hearing")
		if err != nil {
			return err
		}
		lawyerID := c.CurrentLawyerID

		sequence, err := tx.ScheduledEntries().NextSequence(ctx, c.ID)
		if err != nil {
			return err
		}

		entry = &models.ScheduledEntry{
			BaseModel:                models.BaseModel{CreatedBy: actor.UserID.String()},
			ScheduleRequestID:        sr.ID,
			CaseID:                   c.ID,
			Sequence:                 sequence,
			District:                 sr.District,
			HearingDate:              date,
			Courtroom:                courtroom,
			StartTime:                window.Start,
			EndTime:                  window.End,
			Status:                   models.EntryStatusScheduled,
			ScheduledBy:              actor.UserID,
			Notes:                    req.Notes,
			EstimatedDurationMinutes: window.Duration(),
			CaseNumber:               c.CaseNumber,
			CaseTitle:                c.Title,
			CaseType:                 c.CaseType,
			ClientID:                 c.ClientID,
			ClientName:               c.ClientName,
			LawyerID:                 lawyerID,
			LawyerName:               c.LawyerName,
		}
		if err := tx.ScheduledEntries().Create(ctx, entry); err != nil {
			return err
		}

		allocation := repository.Allocation{
			Date:        date,
			Window:      window,
			Courtroom:   courtroom,
			ScheduledBy: actor.UserID,
			ScheduledAt: s.now().UTC(),
			Notes:       req.Notes,
		}
		if err := tx.ScheduleRequests().MarkScheduled(ctx, sr.ID, allocation); err != nil {
			if errors.Is(err, repository.ErrConditionNotMet) {
				return apperrors.ErrAlreadyScheduled
			}
			return err
		}

		if err := tx.Cases().UpdateHearing(ctx, c.ID, models.CaseStatusSchedulingRequested, repository.HearingUpdate{
			Status:    next,
			LawyerID:  lawyerID,
			Date:      date,
			Window:    window,
			Courtroom: courtroom,
			UpdatedBy: actor.UserID.String(),
		}); err != nil {
			return err
		}

		return updateFilingHearing(ctx, tx, c.ID, date)
	})
	if err != nil {
		return nil, translateStoreError("schedule case", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"case_id":             entry.CaseID,
		"schedule_request_id": requestID,
		"entry_id":            entry.ID,
		"hearing_date":        calendar.FormatDate(date),
		"slot":                window.String(),
		"courtroom":           entry.Courtroom,
	}).Info("hearing scheduled")

	publish(ctx, s.publisher, notification.NewEvent(notification.EventScheduleAllocated, entry.District, notification.ScheduleAllocated{
		CaseID:      entry.CaseID,
		CaseNumber:  entry.CaseNumber,
		EntryID:     entry.ID,
		HearingDate: calendar.FormatDate(date),
		StartTime:   window.Start,
		EndTime:     window.End,
		Courtroom:   entry.Courtroom,
	}))

	return toScheduledEntryResponse(entry), nil
}

// HasConflict reports whether the window is taken in the district calendar,
// returning the occupying entry. exclude skips one entry, the one being moved.
func (s *SchedulerService) HasConflict(ctx context.Context, district, courtroom string, date time.Time, window calendar.TimeWindow, exclude *uuid.UUID) (bool, *models.ScheduledEntry, error) {
	district, courtroom = strings.TrimSpace(district), strings.TrimSpace(courtroom)
	if district == "" {
		return false, nil, apperrors.NewValidationError("district", "district is required")
	}
	if courtroom == "" && s.policy.ScopesCourtroom() {
		return false, nil, apperrors.NewValidationError("courtroom", "courtroom is required")
	}
	window, err := parseWindow("start_time", "end_time", window.Start, window.End)
	if err != nil {
		return false, nil, err
	}

	candidate := calendar.Booking{District: district, Courtroom: courtroom, Date: date, Window: window}
	excludeID := ""
	if exclude != nil {
		excludeID = exclude.String()
	}
	hit, err := findConflict(ctx, s.store, s.policy, candidate, excludeID)
	if err != nil {
		return false, nil, translateStoreError("check conflict", err)
	}
	return hit != nil, hit, nil
}

func (s *SchedulerService) checkConflict(ctx context.Context, tx repository.StoreInterface, candidate calendar.Booking, excludeID string) error {
	hit, err := findConflict(ctx, tx, s.policy, candidate, excludeID)
	if err != nil {
		return err
	}
	if hit != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"district":      candidate.District,
			"courtroom":     candidate.Courtroom,
			"date":          calendar.FormatDate(candidate.Date),
			"slot":          candidate.Window.String(),
			"occupied_by":   hit.CaseNumber,
			"conflict_mode": string(s.policy.Mode),
		}).Info("slot conflict")
		return apperrors.ErrSlotConflict
	}
	return nil
}

// findConflict loads the active entries that can collide with candidate and
// applies the policy to them
func findConflict(ctx context.Context, store repository.StoreInterface, policy calendar.Policy, candidate calendar.Booking, excludeID string) (*models.ScheduledEntry, error) {
	courtroom := ""
	if policy.ScopesCourtroom() {
		courtroom = candidate.Courtroom
	}
	entries, err := store.ScheduledEntries().FindActive(ctx, candidate.District, courtroom, candidate.Date)
	if err != nil {
		return nil, err
	}

	bookings := make([]calendar.Booking, len(entries))
	for i := range entries {
		bookings[i] = entries[i].Booking()
	}
	hit, found := policy.FindConflict(bookings, candidate, excludeID)
	if !found {
		return nil, nil
	}
	for i := range entries {
		if entries[i].ID.String() == hit.ID {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// updateFilingHearing moves the case's latest court filing to scheduled with
// the hearing date. A case without a filing is logged and skipped.
func updateFilingHearing(ctx context.Context, tx repository.StoreInterface, caseID uuid.UUID, date time.Time) error {
	filing, err := tx.CourtFilings().GetLatestByCaseID(ctx, caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithContext(ctx).WithField("case_id", caseID).Warn("no court filing found for case, skipping filing update")
			return nil
		}
		return err
	}
	return tx.CourtFilings().UpdateHearing(ctx, filing.ID, models.FilingStatusScheduled, date)
}

// AvailableSlots flags each standard slot of the day as free or occupied.
// Without a courtroom, a slot is occupied when any courtroom of the district
// holds a colliding entry.
func (s *SchedulerService) AvailableSlots(ctx context.Context, district, date, courtroom string) (*AvailableSlotsResponse, error) {
	district = strings.TrimSpace(district)
	if district == "" {
		return nil, apperrors.NewValidationError("district", "district is required")
	}
	day, err := parseDateField("date", date)
	if err != nil {
		return nil, err
	}
	courtroom = strings.TrimSpace(courtroom)

	scope := courtroom
	if !s.policy.ScopesCourtroom() {
		scope = ""
	}
	entries, err := s.store.ScheduledEntries().FindActive(ctx, district, scope, day)
	if err != nil {
		return nil, translateStoreError("list available slots", err)
	}

	slots := calendar.StandardSlots()
	out := make([]SlotAvailability, len(slots))
	for i, slot := range slots {
		out[i] = SlotAvailability{Start: slot.Start, End: slot.End, Available: true}
		for j := range entries {
			if s.policy.WindowsCollide(entries[j].Window(), slot) {
				out[i].Available = false
				out[i].CaseNumber = orDefault(entries[j].CaseNumber, UnknownName)
				out[i].Courtroom = entries[j].Courtroom
				break
			}
		}
	}

	return &AvailableSlotsResponse{
		District:  district,
		Date:      calendar.FormatDate(day),
		Courtroom: courtroom,
		Slots:     out,
	}, nil
}

// ListScheduledEntries lists the current entries of a district between two dates inclusive
func (s *SchedulerService) ListScheduledEntries(ctx context.Context, district, from, to string) ([]ScheduledEntryResponse, error) {
	district = strings.TrimSpace(district)
	if district == "" {
		return nil, apperrors.NewValidationError("district", "district is required")
	}
	fromDate, err := parseDateField("from", from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseDateField("to", to)
	if err != nil {
		return nil, err
	}
	if toDate.Before(fromDate) {
		return nil, apperrors.NewValidationError("to", "to must not be before from")
	}

	entries, err := s.store.ScheduledEntries().ListByDistrictAndRange(ctx, district, fromDate, toDate, currentEntryStatuses())
	if err != nil {
		return nil, translateStoreError("list scheduled entries", err)
	}
	return toScheduledEntryResponses(entries), nil
}

// CaseHearingHistory returns every entry of a case in sequence order,
// adjourned ones included
func (s *SchedulerService) CaseHearingHistory(ctx context.Context, actor *auth.Principal, caseID uuid.UUID) ([]ScheduledEntryResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	c, err := s.store.Cases().GetByID(ctx, caseID)
	if err != nil {
		return nil, translateStoreError("get case", notFound(err, apperrors.ErrCaseNotFound))
	}
	if actor.Role == models.UserRoleClient && c.ClientID != actor.UserID {
		return nil, apperrors.ErrNotCaseClient
	}

	entries, err := s.store.ScheduledEntries().ListByCaseID(ctx, caseID)
	if err != nil {
		return nil, translateStoreError("list case hearings", err)
	}
	return toScheduledEntryResponses(entries), nil
}

// currentEntryStatuses excludes superseded and cancelled entries
func currentEntryStatuses() []models.EntryStatus {
	return []models.EntryStatus{models.EntryStatusScheduled, models.EntryStatusInProgress, models.EntryStatusCompleted}
}

func toScheduledEntryResponse(e *models.ScheduledEntry) *ScheduledEntryResponse {
	return &ScheduledEntryResponse{
		ID:                e.ID,
		ScheduleRequestID: e.ScheduleRequestID,
		CaseID:            e.CaseID,
		Sequence:          e.Sequence,
		District:          e.District,
		Courtroom:         e.Courtroom,
		HearingDate:       calendar.FormatDate(e.HearingDate),
		StartTime:         e.StartTime,
		EndTime:           e.EndTime,
		Status:            e.Status,
		SupersededByID:    e.SupersededByID,
		ScheduledBy:       e.ScheduledBy,
		Notes:             e.Notes,
		CaseNumber:        orDefault(e.CaseNumber, UnknownName),
		CaseTitle:         orDefault(e.CaseTitle, UnknownName),
		ClientName:        orDefault(e.ClientName, UnknownName),
		LawyerName:        orDefault(e.LawyerName, NotAssignedLawyer),
		CreatedAt:         e.CreatedAt.Format(timestampLayout),
	}
}

// NewScheduledEntryResponse renders an entry for API output
func NewScheduledEntryResponse(e *models.ScheduledEntry) *ScheduledEntryResponse {
	return toScheduledEntryResponse(e)
}

func toScheduledEntryResponses(entries []models.ScheduledEntry) []ScheduledEntryResponse {
	out := make([]ScheduledEntryResponse, len(entries))
	for i := range entries {
		out[i] = *toScheduledEntryResponse(&entries[i])
	}
	return out
}
