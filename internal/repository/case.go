package repository

import (
	"context"

	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CaseRepository handles database operations for cases
type CaseRepository struct {
	db *gorm.DB
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// Create creates a new case
func (r *CaseRepository) Create(ctx context.Context, c *models.Case) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// GetByID retrieves a case by ID
func (r *CaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	var c models.Case
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByIDForUpdate retrieves a case by ID and row-locks it until the
// surrounding transaction ends
func (r *CaseRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	var c models.Case
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByCaseNumber retrieves a case by its case number
func (r *CaseRepository) GetByCaseNumber(ctx context.Context, caseNumber string) (*models.Case, error) {
	var c models.Case
	err := r.db.WithContext(ctx).Where("case_number = ?", caseNumber).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List retrieves cases matching filter, newest first
func (r *CaseRepository) List(ctx context.Context, filter CaseFilter, limit, offset int) ([]models.Case, int64, error) {
	var cases []models.Case
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Case{})
	if filter.District != "" {
		query = query.Where("LOWER(district) = LOWER(?)", filter.District)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.LawyerID != nil {
		query = query.Where("current_lawyer_id = ?", *filter.LawyerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&cases).Error
	return cases, total, err
}

// TransitionStatus moves a case from one status to another. The update only
// applies while the row is still in from and still holds lawyerID.
func (r *CaseRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.CaseStatus, lawyerID *uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Case{}).
		Where("id = ? AND status = ?", id, from).
		Where("current_lawyer_id IS NOT DISTINCT FROM ?", lawyerID).
		Updates(map[string]interface{}{
			"status":            to,
			"current_lawyer_id": lawyerID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConditionNotMet
	}
	return nil
}

// UpdateHearing writes the hearing fields onto a case that is still in the
// expected status and still held by hearing.LawyerID
func (r *CaseRepository) UpdateHearing(ctx context.Context, id uuid.UUID, expected models.CaseStatus, hearing HearingUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Case{}).
		Where("id = ? AND status = ?", id, expected).
		Where("current_lawyer_id IS NOT DISTINCT FROM ?", hearing.LawyerID).
		Updates(map[string]interface{}{
			"status":             hearing.Status,
			"current_lawyer_id":  hearing.LawyerID,
			"hearing_date":       calendar.DateOf(hearing.Date, nil),
			"hearing_start_time": hearing.Window.Start,
			"hearing_end_time":   hearing.Window.End,
			"courtroom":          hearing.Courtroom,
			"updated_by":         hearing.UpdatedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConditionNotMet
	}
	return nil
}
