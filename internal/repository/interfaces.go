package repository

import (
	"context"
	"time"

	"court-scheduling-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CaseRepositoryInterface defines the interface for case repository operations
type CaseRepositoryInterface interface {
	Create(ctx context.Context, c *models.Case) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Case, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Case, error)
	GetByCaseNumber(ctx context.Context, caseNumber string) (*models.Case, error)
	List(ctx context.Context, filter CaseFilter, limit, offset int) ([]models.Case, int64, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.CaseStatus, lawyerID *uuid.UUID) error
	UpdateHearing(ctx context.Context, id uuid.UUID, expected models.CaseStatus, hearing HearingUpdate) error
}

// ScheduleRequestRepositoryInterface defines the interface for schedule request repository operations
type ScheduleRequestRepositoryInterface interface {
	Create(ctx context.Context, req *models.ScheduleRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ScheduleRequest, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.ScheduleRequest, error)
	GetOpenByCaseID(ctx context.Context, caseID uuid.UUID) (*models.ScheduleRequest, error)
	GetLatestByCaseID(ctx context.Context, caseID uuid.UUID) (*models.ScheduleRequest, error)
	ListQueue(ctx context.Context, filter QueueFilter) ([]models.ScheduleRequest, error)
	MarkScheduled(ctx context.Context, id uuid.UUID, allocation Allocation) error
	UpdateAllocation(ctx context.Context, id uuid.UUID, allocation Allocation) error
}

// ScheduledEntryRepositoryInterface defines the interface for scheduled entry repository operations
type ScheduledEntryRepositoryInterface interface {
	Create(ctx context.Context, entry *models.ScheduledEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ScheduledEntry, error)
	GetActiveByCaseID(ctx context.Context, caseID uuid.UUID) (*models.ScheduledEntry, error)
	FindActive(ctx context.Context, district, courtroom string, date time.Time) ([]models.ScheduledEntry, error)
	ListByDistrictAndRange(ctx context.Context, district string, from, to time.Time, statuses []models.EntryStatus) ([]models.ScheduledEntry, error)
	ListByCaseID(ctx context.Context, caseID uuid.UUID) ([]models.ScheduledEntry, error)
	NextSequence(ctx context.Context, caseID uuid.UUID) (int, error)
	Supersede(ctx context.Context, id, successorID uuid.UUID) error
}

// AdjournmentRequestRepositoryInterface defines the interface for adjournment request repository operations
type AdjournmentRequestRepositoryInterface interface {
	Create(ctx context.Context, req *models.AdjournmentRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AdjournmentRequest, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.AdjournmentRequest, error)
	GetPendingByCaseID(ctx context.Context, caseID uuid.UUID) (*models.AdjournmentRequest, error)
	List(ctx context.Context, filter AdjournmentFilter) ([]models.AdjournmentRequest, error)
	Resolve(ctx context.Context, id uuid.UUID, resolution Resolution) error
}

// CourtFilingRepositoryInterface defines the interface for court filing repository operations
type CourtFilingRepositoryInterface interface {
	Create(ctx context.Context, filing *models.CourtFiling) error
	GetLatestByCaseID(ctx context.Context, caseID uuid.UUID) (*models.CourtFiling, error)
	UpdateHearing(ctx context.Context, id uuid.UUID, status models.FilingStatus, hearingDate time.Time) error
}

// StoreInterface groups the repositories that share one database handle.
// Repositories obtained from the store passed to a Transaction callback run
// inside that transaction.
type StoreInterface interface {
	Cases() CaseRepositoryInterface
	ScheduleRequests() ScheduleRequestRepositoryInterface
	ScheduledEntries() ScheduledEntryRepositoryInterface
	Adjournments() AdjournmentRequestRepositoryInterface
	CourtFilings() CourtFilingRepositoryInterface
	// LockPartition takes a transaction-scoped advisory lock on key. It only
	// serializes anything when called inside Transaction.
	LockPartition(ctx context.Context, key string) error
	Transaction(ctx context.Context, fn func(tx StoreInterface) error) error
}
