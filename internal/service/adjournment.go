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

// AdjournmentService negotiates moving a scheduled hearing to a new date
type AdjournmentService struct {
	store     repository.StoreInterface
	scheduler *SchedulerService
	publisher notification.Publisher
	validator *validator.Validate
	now       func() time.Time
}

// NewAdjournmentService creates a new adjournment service. The scheduler
// supplies the conflict policy used when an adjournment is accepted.
func NewAdjournmentService(store repository.StoreInterface, scheduler *SchedulerService, publisher notification.Publisher, validator *validator.Validate) *AdjournmentService {
	return &AdjournmentService{
		store:     store,
		scheduler: scheduler,
		publisher: publisher,
		validator: validator,
		now:       time.Now,
	}
}

// CreateAdjournmentRequest represents a client's request to move a hearing
type CreateAdjournmentRequest struct {
	CaseID             string `json:"case_id" validate:"required,uuid"`
	PreferredDate      string `json:"preferred_date" validate:"required" example:"2026-01-20"`
	PreferredStartTime string `json:"preferred_start_time" example:"14:00"`
	PreferredEndTime   string `json:"preferred_end_time" example:"15:00"`
	Reason             string `json:"reason" validate:"required,max=2000" example:"Lead counsel is abroad"`
	Urgency            string `json:"urgency" validate:"omitempty,oneof=low medium high" example:"medium"`
}

// AcceptAdjournmentRequest represents the scheduler's decision on the new hearing
type AcceptAdjournmentRequest struct {
	NewHearingDate string `json:"new_hearing_date" validate:"required" example:"2026-01-22"`
	NewStartTime   string `json:"new_start_time" example:"10:00"`
	NewEndTime     string `json:"new_end_time" example:"11:00"`
	Courtroom      string `json:"courtroom" validate:"max=40" example:"Court-2"`
	Notes          string `json:"notes" validate:"max=2000"`
}

// RejectAdjournmentRequest carries the scheduler's reason for rejecting
type RejectAdjournmentRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

// AdjournmentFilter narrows ListAdjournmentRequests
type AdjournmentFilter struct {
	District string
	Status   string
	CaseID   string
}

// AdjournmentResponse represents an adjournment request
type AdjournmentResponse struct {
	ID                  uuid.UUID                 `json:"id"`
	CaseID              uuid.UUID                 `json:"case_id"`
	CaseNumber          string                    `json:"case_number"`
	District            string                    `json:"district"`
	ClientID            uuid.UUID                 `json:"client_id"`
	LawyerID            *uuid.UUID                `json:"lawyer_id,omitempty"`
	OriginalHearingDate string                    `json:"original_hearing_date,omitempty"`
	OriginalStartTime   string                    `json:"original_start_time,omitempty"`
	OriginalEndTime     string                    `json:"original_end_time,omitempty"`
	OriginalCourtroom   string                    `json:"original_courtroom,omitempty"`
	PreferredDate       string                    `json:"preferred_date"`
	PreferredStartTime  string                    `json:"preferred_start_time,omitempty"`
	PreferredEndTime    string                    `json:"preferred_end_time,omitempty"`
	Reason              string                    `json:"reason"`
	Urgency             models.AdjournmentUrgency `json:"urgency"`
	Status              models.AdjournmentStatus  `json:"status"`
	NewHearingDate      string                    `json:"new_hearing_date,omitempty"`
	NewStartTime        string                    `json:"new_start_time,omitempty"`
	NewEndTime          string                    `json:"new_end_time,omitempty"`
	NewCourtroom        string                    `json:"new_courtroom,omitempty"`
	ResolvedBy          *uuid.UUID                `json:"resolved_by,omitempty"`
	ResolvedAt          string                    `json:"resolved_at,omitempty"`
	SchedulerNotes      string                    `json:"scheduler_notes,omitempty"`
	CreatedAt           string                    `json:"created_at"`
	ScheduledEntry      *ScheduledEntryResponse   `json:"scheduled_entry,omitempty"`
}

// CreateAdjournmentRequest records a client's pending request to move the
// hearing of their case. At most one request per case may be pending.
func (s *AdjournmentService) CreateAdjournmentRequest(ctx context.Context, actor *auth.Principal, req *CreateAdjournmentRequest) (*AdjournmentResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	preferredDate, err := parseDateField("preferred_date", req.PreferredDate)
	if err != nil {
		return nil, err
	}
	var preferred calendar.TimeWindow
	if req.PreferredStartTime != "" || req.PreferredEndTime != "" {
		if preferred, err = parseWindow("preferred_start_time", "preferred_end_time", req.PreferredStartTime, req.PreferredEndTime); err != nil {
			return nil, err
		}
	}
	urgency := models.AdjournmentUrgency(req.Urgency)
	if urgency == "" {
		urgency = models.UrgencyMedium
	}
	caseID := uuid.MustParse(req.CaseID)

	var created *models.AdjournmentRequest
	err = s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		c, err := tx.Cases().GetByIDForUpdate(ctx, caseID)
		if err != nil {
			return notFound(err, apperrors.ErrCaseNotFound)
		}
		if c.ClientID != actor.UserID {
			return apperrors.ErrNotCaseClient
		}
		if c.Status != models.CaseStatusHearingScheduled {
			return apperrors.NewInvalidStateError("case", string(c.Status), "request adjournment")
		}

		if _, err := tx.Adjournments().GetPendingByCaseID(ctx, c.ID); err == nil {
			return apperrors.ErrDuplicatePendingRequest
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		created = &models.AdjournmentRequest{
			BaseModel:           models.BaseModel{CreatedBy: actor.UserID.String()},
			CaseID:              c.ID,
			ClientID:            c.ClientID,
			LawyerID:            c.CurrentLawyerID,
			District:            c.District,
			CaseNumber:          c.CaseNumber,
			OriginalHearingDate: c.HearingDate,
			OriginalStartTime:   c.HearingStartTime,
			OriginalEndTime:     c.HearingEndTime,
			OriginalCourtroom:   c.Courtroom,
			PreferredDate:       preferredDate,
			PreferredStartTime:  preferred.Start,
			PreferredEndTime:    preferred.End,
			Reason:              strings.TrimSpace(req.Reason),
			Urgency:             urgency,
			Status:              models.AdjournmentStatusPending,
		}
		return tx.Adjournments().Create(ctx, created)
	})
	if err != nil {
		return nil, translateStoreError("create adjournment request", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"case_id":        caseID,
		"adjournment_id": created.ID,
		"urgency":        string(urgency),
	}).Info("adjournment requested")

	return toAdjournmentResponse(created), nil
}

// AcceptAdjournmentRequest moves the hearing to the scheduler's chosen date.
// The current entry is marked adjourned and superseded by a new entry; the
// request, case, schedule request and court filing are rewritten in the same
// transaction. Omitted times keep the original window, an omitted courtroom
// keeps the original courtroom.
func (s *AdjournmentService) AcceptAdjournmentRequest(ctx context.Context, actor *auth.Principal, id uuid.UUID, req *AcceptAdjournmentRequest) (*AdjournmentResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	newDate, err := parseDateField("new_hearing_date", req.NewHearingDate)
	if err != nil {
		return nil, err
	}
	var requested *calendar.TimeWindow
	if req.NewStartTime != "" || req.NewEndTime != "" {
		w, err := parseWindow("new_start_time", "new_end_time", req.NewStartTime, req.NewEndTime)
		if err != nil {
			return nil, err
		}
		requested = &w
	}

	var (
		ar       *models.AdjournmentRequest
		newEntry *models.ScheduledEntry
	)
	err = s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		var err error
		ar, err = tx.Adjournments().GetByIDForUpdate(ctx, id)
		if err != nil {
			return notFound(err, apperrors.ErrAdjournmentRequestNotFound)
		}
		if ar.Status.IsTerminal() {
			return apperrors.NewInvalidStateError("adjournment request", string(ar.Status), "accept adjournment")
		}

		c, err := tx.Cases().GetByIDForUpdate(ctx, ar.CaseID)
		if err != nil {
			return notFound(err, apperrors.ErrCaseNotFound)
		}
		if c.Status != models.CaseStatusHearingScheduled {
			return apperrors.NewInvalidStateError("case", string(c.Status), "accept adjournment")
		}
		if _, err := c.Status.Transition(models.CaseStatusHearingScheduled, "accept adjournment"); err != nil {
			return err
		}
		lawyerID := c.CurrentLawyerID

		current, err := tx.ScheduledEntries().GetActiveByCaseID(ctx, c.ID)
		if err != nil {
			return notFound(err, apperrors.ErrActiveEntryNotFound)
		}

		window := current.Window()
		if requested != nil {
			window = *requested
		}
		courtroom := orDefault(strings.TrimSpace(req.Courtroom), current.Courtroom)

		candidate := calendar.Booking{District: current.District, Courtroom: courtroom, Date: newDate, Window: window}
		if err := tx.LockPartition(ctx, s.scheduler.policy.PartitionKey(current.District, courtroom, newDate)); err != nil {
			return err
		}
		if err := s.scheduler.checkConflict(ctx, tx, candidate, current.ID.String()); err != nil {
			return err
		}

		sequence, err := tx.ScheduledEntries().NextSequence(ctx, c.ID)
		if err != nil {
			return err
		}

		newEntry = &models.ScheduledEntry{
			BaseModel:                models.BaseModel{ID: uuid.New(), CreatedBy: actor.UserID.String()},
			ScheduleRequestID:        current.ScheduleRequestID,
			CaseID:                   c.ID,
			Sequence:                 sequence,
			District:                 current.District,
			HearingDate:              newDate,
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

		// The old entry leaves the active set before its successor joins it.
		if err := tx.ScheduledEntries().Supersede(ctx, current.ID, newEntry.ID); err != nil {
			return err
		}
		if err := tx.ScheduledEntries().Create(ctx, newEntry); err != nil {
			return err
		}

		resolvedAt := s.now().UTC()
		if err := tx.Adjournments().Resolve(ctx, ar.ID, repository.Resolution{
			Status:     models.AdjournmentStatusAccepted,
			NewDate:    &newDate,
			NewWindow:  window,
			Courtroom:  courtroom,
			ResolvedBy: actor.UserID,
			ResolvedAt: resolvedAt,
			Notes:      req.Notes,
		}); err != nil {
			return err
		}

		if err := tx.Cases().UpdateHearing(ctx, c.ID, models.CaseStatusHearingScheduled, repository.HearingUpdate{
			Status:    models.CaseStatusHearingScheduled,
			LawyerID:  lawyerID,
			Date:      newDate,
			Window:    window,
			Courtroom: courtroom,
			UpdatedBy: actor.UserID.String(),
		}); err != nil {
			return err
		}

		if err := tx.ScheduleRequests().UpdateAllocation(ctx, current.ScheduleRequestID, repository.Allocation{
			Date:        newDate,
			Window:      window,
			Courtroom:   courtroom,
			ScheduledBy: actor.UserID,
			ScheduledAt: resolvedAt,
			Notes:       req.Notes,
		}); err != nil {
			return err
		}

		if err := updateFilingHearing(ctx, tx, c.ID, newDate); err != nil {
			return err
		}

		ar.Status = models.AdjournmentStatusAccepted
		ar.NewHearingDate = &newDate
		ar.NewStartTime = window.Start
		ar.NewEndTime = window.End
		ar.NewCourtroom = courtroom
		ar.ResolvedBy = &actor.UserID
		ar.ResolvedAt = &resolvedAt
		ar.SchedulerNotes = req.Notes
		return nil
	})
	if err != nil {
		return nil, translateStoreError("accept adjournment request", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"case_id":        ar.CaseID,
		"adjournment_id": ar.ID,
		"entry_id":       newEntry.ID,
		"sequence":       newEntry.Sequence,
		"hearing_date":   calendar.FormatDate(newDate),
	}).Info("adjournment accepted")

	publish(ctx, s.publisher, notification.NewEvent(notification.EventAdjournmentResolved, ar.District, notification.AdjournmentResolved{
		RequestID:    ar.ID,
		CaseID:       ar.CaseID,
		CaseNumber:   ar.CaseNumber,
		Accepted:     true,
		NewDate:      calendar.FormatDate(newDate),
		NewStartTime: newEntry.StartTime,
		NewEndTime:   newEntry.EndTime,
		Courtroom:    newEntry.Courtroom,
	}))

	resp := toAdjournmentResponse(ar)
	resp.ScheduledEntry = toScheduledEntryResponse(newEntry)
	return resp, nil
}

// RejectAdjournmentRequest resolves a pending request as rejected. The case
// and its calendar entries are left untouched.
func (s *AdjournmentService) RejectAdjournmentRequest(ctx context.Context, actor *auth.Principal, id uuid.UUID, req *RejectAdjournmentRequest) (*AdjournmentResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	ar, err := s.store.Adjournments().GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError("get adjournment request", notFound(err, apperrors.ErrAdjournmentRequestNotFound))
	}
	if ar.Status.IsTerminal() {
		return nil, apperrors.NewInvalidStateError("adjournment request", string(ar.Status), "reject adjournment")
	}

	resolvedAt := s.now().UTC()
	err = s.store.Adjournments().Resolve(ctx, id, repository.Resolution{
		Status:     models.AdjournmentStatusRejected,
		ResolvedBy: actor.UserID,
		ResolvedAt: resolvedAt,
		Notes:      req.Notes,
	})
	if errors.Is(err, repository.ErrConditionNotMet) {
		// Resolved concurrently; report the state that won.
		if latest, getErr := s.store.Adjournments().GetByID(ctx, id); getErr == nil {
			return nil, apperrors.NewInvalidStateError("adjournment request", string(latest.Status), "reject adjournment")
		}
		return nil, apperrors.ErrConcurrentUpdate
	}
	if err != nil {
		return nil, translateStoreError("reject adjournment request", err)
	}

	ar.Status = models.AdjournmentStatusRejected
	ar.ResolvedBy = &actor.UserID
	ar.ResolvedAt = &resolvedAt
	ar.SchedulerNotes = req.Notes

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"case_id":        ar.CaseID,
		"adjournment_id": ar.ID,
	}).Info("adjournment rejected")

	publish(ctx, s.publisher, notification.NewEvent(notification.EventAdjournmentResolved, ar.District, notification.AdjournmentResolved{
		RequestID:  ar.ID,
		CaseID:     ar.CaseID,
		CaseNumber: ar.CaseNumber,
		Accepted:   false,
	}))

	return toAdjournmentResponse(ar), nil
}

// GetAdjournmentRequest retrieves one request. Clients only see their own.
func (s *AdjournmentService) GetAdjournmentRequest(ctx context.Context, actor *auth.Principal, id uuid.UUID) (*AdjournmentResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	ar, err := s.store.Adjournments().GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError("get adjournment request", notFound(err, apperrors.ErrAdjournmentRequestNotFound))
	}
	if actor.Role == models.UserRoleClient && ar.ClientID != actor.UserID {
		return nil, apperrors.ErrNotCaseClient
	}
	return toAdjournmentResponse(ar), nil
}

// ListAdjournmentRequests lists requests newest first. Clients only see their own.
func (s *AdjournmentService) ListAdjournmentRequests(ctx context.Context, actor *auth.Principal, filter AdjournmentFilter) ([]AdjournmentResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	repoFilter := repository.AdjournmentFilter{District: strings.TrimSpace(filter.District)}
	if filter.Status != "" {
		status := models.AdjournmentStatus(filter.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown adjournment status")
		}
		repoFilter.Status = status
	}
	if filter.CaseID != "" {
		caseID, err := uuid.Parse(filter.CaseID)
		if err != nil {
			return nil, apperrors.NewValidationError("case_id", "invalid case ID")
		}
		repoFilter.CaseID = &caseID
	}
	if actor.Role == models.UserRoleClient {
		clientID := actor.UserID
		repoFilter.ClientID = &clientID
	}

	requests, err := s.store.Adjournments().List(ctx, repoFilter)
	if err != nil {
		return nil, translateStoreError("list adjournment requests", err)
	}

	out := make([]AdjournmentResponse, len(requests))
	for i := range requests {
		out[i] = *toAdjournmentResponse(&requests[i])
	}
	return out, nil
}

func toAdjournmentResponse(a *models.AdjournmentRequest) *AdjournmentResponse {
	resp := &AdjournmentResponse{
		ID:                  a.ID,
		CaseID:              a.CaseID,
		CaseNumber:          orDefault(a.CaseNumber, UnknownName),
		District:            a.District,
		ClientID:            a.ClientID,
		LawyerID:            a.LawyerID,
		OriginalHearingDate: formatOptionalDate(a.OriginalHearingDate),
		OriginalStartTime:   a.OriginalStartTime,
		OriginalEndTime:     a.OriginalEndTime,
		OriginalCourtroom:   a.OriginalCourtroom,
		PreferredDate:       calendar.FormatDate(a.PreferredDate),
		PreferredStartTime:  a.PreferredStartTime,
		PreferredEndTime:    a.PreferredEndTime,
		Reason:              a.Reason,
		Urgency:             a.Urgency,
		Status:              a.Status,
		NewHearingDate:      formatOptionalDate(a.NewHearingDate),
		NewStartTime:        a.NewStartTime,
		NewEndTime:          a.NewEndTime,
		NewCourtroom:        a.NewCourtroom,
		ResolvedBy:          a.ResolvedBy,
		SchedulerNotes:      a.SchedulerNotes,
		CreatedAt:           a.CreatedAt.Format(timestampLayout),
	}
	if a.ResolvedAt != nil {
		resp.ResolvedAt = a.ResolvedAt.Format(timestampLayout)
	}
	return resp
}
