package repository

import (
	"context"

	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdjournmentRequestRepository handles database operations for adjournment requests
type AdjournmentRequestRepository struct {
	db *gorm.DB
}

// NewAdjournmentRequestRepository creates a new adjournment request repository
func NewAdjournmentRequestRepository(db *gorm.DB) *AdjournmentRequestRepository {
	return &AdjournmentRequestRepository{db: db}
}

// Create creates a new adjournment request
func (r *AdjournmentRequestRepository) Create(ctx context.Context, req *models.AdjournmentRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// GetByID retrieves an adjournment request by ID
func (r *AdjournmentRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AdjournmentRequest, error) {
	var req models.AdjournmentRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByIDForUpdate retrieves an adjournment request by ID and row-locks it
func (r *AdjournmentRequestRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.AdjournmentRequest, error) {
	var req models.AdjournmentRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetPendingByCaseID retrieves the pending request of a case, if any
func (r *AdjournmentRequestRepository) GetPendingByCaseID(ctx context.Context, caseID uuid.UUID) (*models.AdjournmentRequest, error) {
	var req models.AdjournmentRequest
	err := r.db.WithContext(ctx).
		Where("case_id = ? AND status = ?", caseID, models.AdjournmentStatusPending).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List retrieves adjournment requests matching filter, newest first
func (r *AdjournmentRequestRepository) List(ctx context.Context, filter AdjournmentFilter) ([]models.AdjournmentRequest, error) {
	var requests []models.AdjournmentRequest

	query := r.db.WithContext(ctx).Model(&models.AdjournmentRequest{})
	if filter.District != "" {
		query = query.Where("LOWER(district) = LOWER(?)", filter.District)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CaseID != nil {
		query = query.Where("case_id = ?", *filter.CaseID)
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}

	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// Resolve moves a pending request to its terminal status. Returns
// ErrConditionNotMet if the request is no longer pending.
func (r *AdjournmentRequestRepository) Resolve(ctx context.Context, id uuid.UUID, resolution Resolution) error {
	updates := map[string]interface{}{
		"status":          resolution.Status,
		"resolved_by":     resolution.ResolvedBy,
		"resolved_at":     resolution.ResolvedAt,
		"scheduler_notes": resolution.Notes,
		"updated_by":      resolution.ResolvedBy.String(),
	}
	if resolution.NewDate != nil {
		updates["new_hearing_date"] = calendar.DateOf(*resolution.NewDate, nil)
		updates["new_start_time"] = resolution.NewWindow.Start
		updates["new_end_time"] = resolution.NewWindow.End
		updates["new_courtroom"] = resolution.Courtroom
	}

	result := r.db.WithContext(ctx).Model(&models.AdjournmentRequest{}).
		Where("id = ? AND status = ?", id, models.AdjournmentStatusPending).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConditionNotMet
	}
	return nil
}
