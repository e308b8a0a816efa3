package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"court-scheduling-backend/internal/auth"
	"court-scheduling-backend/internal/database/models"
	apperrors "court-scheduling-backend/internal/errors"
	"court-scheduling-backend/internal/logger"
	"court-scheduling-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseService handles case intake and the move into the scheduling queue
type CaseService struct {
	store     repository.StoreInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewCaseService creates a new case service
func NewCaseService(store repository.StoreInterface, validator *validator.Validate) *CaseService {
	return &CaseService{
		store:     store,
		validator: validator,
		now:       time.Now,
	}
}

// FileCaseRequest represents a lawyer filing a case with a court
type FileCaseRequest struct {
	CaseNumber   string `json:"case_number" validate:"required,max=40" example:"CL2025-0001"`
	Title        string `json:"title" validate:"max=200" example:"Perera v. Silva"`
	CaseType     string `json:"case_type" validate:"required,max=60" example:"civil"`
	District     string `json:"district" validate:"required,max=80" example:"Colombo"`
	ClientID     string `json:"client_id" validate:"required,uuid" example:"0b8f5a3c-3d43-4d8e-9c55-1f0d3f0a6a11"`
	ClientName   string `json:"client_name" validate:"max=120" example:"Kamala Perera"`
	LawyerName   string `json:"lawyer_name" validate:"max=120" example:"Nimal Silva"`
	FilingNumber string `json:"filing_number" validate:"max=60" example:"DC-COL-2025-118"`
}

// RequestSchedulingRequest represents a lawyer asking for a hearing date
type RequestSchedulingRequest struct {
	Priority            string `json:"priority" validate:"omitempty,oneof=high medium low" example:"medium"`
	CourtroomPreference string `json:"courtroom_preference" validate:"max=40" example:"Court-1"`
	Notes               string `json:"notes" validate:"max=2000"`
}

// CaseResponse represents the response for case operations
type CaseResponse struct {
	ID               uuid.UUID         `json:"id"`
	CaseNumber       string            `json:"case_number"`
	Title            string            `json:"title"`
	CaseType         string            `json:"case_type"`
	District         string            `json:"district"`
	Status           models.CaseStatus `json:"status"`
	ClientID         uuid.UUID         `json:"client_id"`
	ClientName       string            `json:"client_name"`
	CurrentLawyerID  *uuid.UUID        `json:"current_lawyer_id,omitempty"`
	LawyerName       string            `json:"lawyer_name"`
	HearingDate      string            `json:"hearing_date,omitempty"`
	HearingStartTime string            `json:"hearing_start_time,omitempty"`
	HearingEndTime   string            `json:"hearing_end_time,omitempty"`
	Courtroom        string            `json:"courtroom,omitempty"`
	CreatedAt        string            `json:"created_at"`
	UpdatedAt        string            `json:"updated_at"`
}

// CaseListResponse represents a paginated list of cases
type CaseListResponse struct {
	Cases    []CaseResponse `json:"cases"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CaseListFilter narrows ListCases
type CaseListFilter struct {
	District string
	Status   string
	Page     int
	PageSize int
}

// ScheduleRequestResponse represents a schedule request in the queue
type ScheduleRequestResponse struct {
	ID                  uuid.UUID               `json:"id"`
	CaseID              uuid.UUID               `json:"case_id"`
	CaseNumber          string                  `json:"case_number"`
	CaseTitle           string                  `json:"case_title"`
	CaseType            string                  `json:"case_type"`
	ClientName          string                  `json:"client_name"`
	LawyerName          string                  `json:"lawyer_name"`
	District            string                  `json:"district"`
	CourtroomPreference string                  `json:"courtroom_preference,omitempty"`
	Priority            models.SchedulePriority `json:"priority"`
	IsScheduled         bool                    `json:"is_scheduled"`
	Notes               string                  `json:"notes,omitempty"`
	ScheduledDate       string                  `json:"scheduled_date,omitempty"`
	ScheduledStartTime  string                  `json:"scheduled_start_time,omitempty"`
	ScheduledEndTime    string                  `json:"scheduled_end_time,omitempty"`
	ScheduledCourtroom  string                  `json:"scheduled_courtroom,omitempty"`
	SchedulerNotes      string                  `json:"scheduler_notes,omitempty"`
	CreatedAt           string                  `json:"created_at"`
}

// FileCase records a filed case with the acting lawyer as current lawyer and
// creates its court filing in the same transaction
func (s *CaseService) FileCase(ctx context.Context, actor *auth.Principal, req *FileCaseRequest) (*CaseResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if actor.Role != models.UserRoleLawyer {
		return nil, apperrors.NewAuthorizationError("only lawyers may file cases")
	}

	lawyerID := actor.UserID
	c := &models.Case{
		BaseModel:       models.BaseModel{CreatedBy: actor.UserID.String(), UpdatedBy: actor.UserID.String()},
		CaseNumber:      strings.TrimSpace(req.CaseNumber),
		Title:           strings.TrimSpace(req.Title),
		CaseType:        strings.TrimSpace(req.CaseType),
		District:        strings.TrimSpace(req.District),
		Status:          models.CaseStatusFiled,
		ClientID:        uuid.MustParse(req.ClientID),
		ClientName:      strings.TrimSpace(req.ClientName),
		CurrentLawyerID: &lawyerID,
		LawyerName:      orDefault(strings.TrimSpace(req.LawyerName), actor.Name),
	}

	err := s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		if err := tx.Cases().Create(ctx, c); err != nil {
			return err
		}

		filedAt := s.now().UTC()
		filing := &models.CourtFiling{
			BaseModel:    models.BaseModel{CreatedBy: actor.UserID.String()},
			CaseID:       c.ID,
			District:     c.District,
			FilingNumber: orDefault(strings.TrimSpace(req.FilingNumber), c.CaseNumber),
			Status:       models.FilingStatusFiled,
			SubmittedBy:  actor.UserID,
			FiledAt:      &filedAt,
		}
		return tx.CourtFilings().Create(ctx, filing)
	})
	if err != nil {
		return nil, translateStoreError("file case", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"case_id":     c.ID,
		"case_number": c.CaseNumber,
		"district":    c.District,
	}).Info("case filed")

	return toCaseResponse(c), nil
}

// RequestScheduling moves a filed case into the scheduling queue. Only the
// case's current lawyer may do this and the lawyer is preserved.
func (s *CaseService) RequestScheduling(ctx context.Context, actor *auth.Principal, caseID uuid.UUID, req *RequestSchedulingRequest) (*ScheduleRequestResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	priority := models.SchedulePriority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}

	var created *models.ScheduleRequest
	err := s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		c, err := tx.Cases().GetByIDForUpdate(ctx, caseID)
		if err != nil {
			return notFound(err, apperrors.ErrCaseNotFound)
		}

		if c.CurrentLawyerID == nil {
			return apperrors.ErrLawyerNotSet
		}
		if *c.CurrentLawyerID != actor.UserID {
			return apperrors.ErrNotCaseLawyer
		}
		if c.Status != models.CaseStatusFiled {
			return apperrors.NewInvalidStateError("case", string(c.Status), "request scheduling")
		}
		next, err := c.Status.Transition(models.CaseStatusSchedulingRequested, "request scheduling")
		if err != nil {
			return err
		}

		if _, err := tx.ScheduleRequests().GetOpenByCaseID(ctx, c.ID); err == nil {
			return apperrors.ErrScheduleRequestPending
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Cases().TransitionStatus(ctx, c.ID, c.Status, next, c.CurrentLawyerID); err != nil {
			return err
		}

		created = &models.ScheduleRequest{
			BaseModel:           models.BaseModel{CreatedBy: actor.UserID.String()},
			CaseID:              c.ID,
			District:            c.District,
			CourtroomPreference: strings.TrimSpace(req.CourtroomPreference),
			Priority:            priority,
			Notes:               req.Notes,
			RequestedBy:         actor.UserID,
			CaseNumber:          c.CaseNumber,
			CaseTitle:           c.Title,
			CaseType:            c.CaseType,
			ClientID:            c.ClientID,
			ClientName:          c.ClientName,
			LawyerID:            c.CurrentLawyerID,
			LawyerName:          c.LawyerName,
		}
		return tx.ScheduleRequests().Create(ctx, created)
	})
	if err != nil {
		return nil, translateStoreError("request scheduling", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"case_id":             caseID,
		"schedule_request_id": created.ID,
		"priority":            string(priority),
	}).Info("scheduling requested")

	return toScheduleRequestResponse(created), nil
}

// GetCase retrieves a case. Clients may only read their own cases.
func (s *CaseService) GetCase(ctx context.Context, actor *auth.Principal, id uuid.UUID) (*CaseResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	c, err := s.store.Cases().GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError("get case", notFound(err, apperrors.ErrCaseNotFound))
	}
	if actor.Role == models.UserRoleClient && c.ClientID != actor.UserID {
		return nil, apperrors.ErrNotCaseClient
	}
	return toCaseResponse(c), nil
}

// ListCases lists cases, newest first. Clients only see their own cases.
func (s *CaseService) ListCases(ctx context.Context, actor *auth.Principal, filter CaseListFilter) (*CaseListResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	repoFilter := repository.CaseFilter{District: strings.TrimSpace(filter.District)}
	if filter.Status != "" {
		status := models.CaseStatus(filter.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown case status")
		}
		repoFilter.Status = status
	}
	if actor.Role == models.UserRoleClient {
		clientID := actor.UserID
		repoFilter.ClientID = &clientID
	}

	page, pageSize, limit, offset := paginate(filter.Page, filter.PageSize)
	cases, total, err := s.store.Cases().List(ctx, repoFilter, limit, offset)
	if err != nil {
		return nil, translateStoreError("list cases", err)
	}

	responses := make([]CaseResponse, len(cases))
	for i := range cases {
		responses[i] = *toCaseResponse(&cases[i])
	}

	return &CaseListResponse{
		Cases:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func toCaseResponse(c *models.Case) *CaseResponse {
	return &CaseResponse{
		ID:               c.ID,
		CaseNumber:       c.CaseNumber,
		Title:            c.Title,
		CaseType:         c.CaseType,
		District:         c.District,
		Status:           c.Status,
		ClientID:         c.ClientID,
		ClientName:       orDefault(c.ClientName, UnknownName),
		CurrentLawyerID:  c.CurrentLawyerID,
		LawyerName:       orDefault(c.LawyerName, NotAssignedLawyer),
		HearingDate:      formatOptionalDate(c.HearingDate),
		HearingStartTime: c.HearingStartTime,
		HearingEndTime:   c.HearingEndTime,
		Courtroom:        c.Courtroom,
		CreatedAt:        c.CreatedAt.Format(timestampLayout),
		UpdatedAt:        c.UpdatedAt.Format(timestampLayout),
	}
}

func toScheduleRequestResponse(r *models.ScheduleRequest) *ScheduleRequestResponse {
	return &ScheduleRequestResponse{
		ID:                  r.ID,
		CaseID:              r.CaseID,
		CaseNumber:          orDefault(r.CaseNumber, UnknownName),
		CaseTitle:           orDefault(r.CaseTitle, UnknownName),
		CaseType:            r.CaseType,
		ClientName:          orDefault(r.ClientName, UnknownName),
		LawyerName:          orDefault(r.LawyerName, NotAssignedLawyer),
		District:            r.District,
		CourtroomPreference: r.CourtroomPreference,
		Priority:            r.Priority,
		IsScheduled:         r.IsScheduled,
		Notes:               r.Notes,
		ScheduledDate:       formatOptionalDate(r.ScheduledDate),
		ScheduledStartTime:  r.ScheduledStartTime,
		ScheduledEndTime:    r.ScheduledEndTime,
		ScheduledCourtroom:  r.ScheduledCourtroom,
		SchedulerNotes:      r.SchedulerNotes,
		CreatedAt:           r.CreatedAt.Format(timestampLayout),
	}
}
