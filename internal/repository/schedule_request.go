package repository

import (
	"context"
	"fmt"
	"strings"

	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// queueOrder sorts the queue by priority rank, then newest first
var queueOrder = priorityOrder("priority") + ", created_at DESC"

// priorityOrder renders SchedulePriority.Rank as a SQL CASE over column
func priorityOrder(column string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CASE %s", column)
	for _, p := range models.Priorities() {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", p, p.Rank())
	}
	fmt.Fprintf(&b, " ELSE %d END", models.SchedulePriority("").Rank())
	return b.String()
}

// ScheduleRequestRepository handles database operations for schedule requests
type ScheduleRequestRepository struct {
	db *gorm.DB
}

// NewScheduleRequestRepository creates a new schedule request repository
func NewScheduleRequestRepository(db *gorm.DB) *ScheduleRequestRepository {
	return &ScheduleRequestRepository{db: db}
}

// Create creates a new schedule request
func (r *ScheduleRequestRepository) Create(ctx context.Context, req *models.ScheduleRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// GetByID retrieves a schedule request by ID
func (r *ScheduleRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ScheduleRequest, error) {
	var req models.ScheduleRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByIDForUpdate retrieves a schedule request by ID and row-locks it
func (r *ScheduleRequestRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.ScheduleRequest, error) {
	var req models.ScheduleRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetOpenByCaseID retrieves the unscheduled request of a case, if any
func (r *ScheduleRequestRepository) GetOpenByCaseID(ctx context.Context, caseID uuid.UUID) (*models.ScheduleRequest, error) {
	var req models.ScheduleRequest
	err := r.db.WithContext(ctx).
		Where("case_id = ? AND is_scheduled = ?", caseID, false).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetLatestByCaseID retrieves the most recent request of a case
func (r *ScheduleRequestRepository) GetLatestByCaseID(ctx context.Context, caseID uuid.UUID) (*models.ScheduleRequest, error) {
	var req models.ScheduleRequest
	err := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("created_at DESC").
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListQueue retrieves schedule requests ordered by priority then newest first
func (r *ScheduleRequestRepository) ListQueue(ctx context.Context, filter QueueFilter) ([]models.ScheduleRequest, error) {
	var requests []models.ScheduleRequest

	query := r.db.WithContext(ctx).Model(&models.ScheduleRequest{})
	if filter.District != "" {
		query = query.Where("LOWER(district) = LOWER(?)", filter.District)
	}
	if filter.IsScheduled != nil {
		query = query.Where("is_scheduled = ?", *filter.IsScheduled)
	}

	err := query.Order(queueOrder).Find(&requests).Error
	return requests, err
}

// MarkScheduled flips is_scheduled from false to true and records the
// allocation. Returns ErrConditionNotMet if the request was already scheduled.
func (r *ScheduleRequestRepository) MarkScheduled(ctx context.Context, id uuid.UUID, allocation Allocation) error {
	updates := allocationColumns(allocation)
	updates["is_scheduled"] = true

	result := r.db.WithContext(ctx).Model(&models.ScheduleRequest{}).
		Where("id = ? AND is_scheduled = ?", id, false).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConditionNotMet
	}
	return nil
}

// UpdateAllocation rewrites the allocation of an already scheduled request
func (r *ScheduleRequestRepository) UpdateAllocation(ctx context.Context, id uuid.UUID, allocation Allocation) error {
	result := r.db.WithContext(ctx).Model(&models.ScheduleRequest{}).
		Where("id = ? AND is_scheduled = ?", id, true).
		Updates(allocationColumns(allocation))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConditionNotMet
	}
	return nil
}

func allocationColumns(a Allocation) map[string]interface{} {
	return map[string]interface{}{
		"scheduled_date":       calendar.DateOf(a.Date, nil),
		"scheduled_start_time": a.Window.Start,
		"scheduled_end_time":   a.Window.End,
		"scheduled_courtroom":  a.Courtroom,
		"scheduled_by":         a.ScheduledBy,
		"scheduled_at":         a.ScheduledAt,
		"scheduler_notes":      a.Notes,
		"updated_by":           a.ScheduledBy.String(),
	}
}
