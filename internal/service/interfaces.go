package service

import (
	"context"
	"time"

	"court-scheduling-backend/internal/auth"
	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CaseServiceInterface defines the interface for case service
type CaseServiceInterface interface {
	FileCase(ctx context.Context, actor *auth.Principal, req *FileCaseRequest) (*CaseResponse, error)
	RequestScheduling(ctx context.Context, actor *auth.Principal, caseID uuid.UUID, req *RequestSchedulingRequest) (*ScheduleRequestResponse, error)
	GetCase(ctx context.Context, actor *auth.Principal, id uuid.UUID) (*CaseResponse, error)
	ListCases(ctx context.Context, actor *auth.Principal, filter CaseListFilter) (*CaseListResponse, error)
}

// SchedulerServiceInterface defines the interface for scheduler service
type SchedulerServiceInterface interface {
	ScheduleCase(ctx context.Context, actor *auth.Principal, requestID uuid.UUID, req *ScheduleCaseRequest) (*ScheduledEntryResponse, error)
	HasConflict(ctx context.Context, district, courtroom string, date time.Time, window calendar.TimeWindow, exclude *uuid.UUID) (bool, *models.ScheduledEntry, error)
	AvailableSlots(ctx context.Context, district, date, courtroom string) (*AvailableSlotsResponse, error)
	ListScheduledEntries(ctx context.Context, district, from, to string) ([]ScheduledEntryResponse, error)
	CaseHearingHistory(ctx context.Context, actor *auth.Principal, caseID uuid.UUID) ([]ScheduledEntryResponse, error)
}

// AdjournmentServiceInterface defines the interface for adjournment service
type AdjournmentServiceInterface interface {
	CreateAdjournmentRequest(ctx context.Context, actor *auth.Principal, req *CreateAdjournmentRequest) (*AdjournmentResponse, error)
	AcceptAdjournmentRequest(ctx context.Context, actor *auth.Principal, id uuid.UUID, req *AcceptAdjournmentRequest) (*AdjournmentResponse, error)
	RejectAdjournmentRequest(ctx context.Context, actor *auth.Principal, id uuid.UUID, req *RejectAdjournmentRequest) (*AdjournmentResponse, error)
	GetAdjournmentRequest(ctx context.Context, actor *auth.Principal, id uuid.UUID) (*AdjournmentResponse, error)
	ListAdjournmentRequests(ctx context.Context, actor *auth.Principal, filter AdjournmentFilter) ([]AdjournmentResponse, error)
}

// CalendarServiceInterface defines the interface for calendar service
type CalendarServiceInterface interface {
	CalendarForMonth(ctx context.Context, district string, year, month int) (*MonthCalendarResponse, error)
	ScheduleRequestsQueue(ctx context.Context, filter QueueFilter) ([]ScheduleRequestResponse, error)
	UpcomingHearings(ctx context.Context, district string, date time.Time) ([]models.ScheduledEntry, error)
}
