package repository

import (
	"context"
	"time"

	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourtFilingRepository handles database operations for court filings
type CourtFilingRepository struct {
	db *gorm.DB
}

// NewCourtFilingRepository creates a new court filing repository
func NewCourtFilingRepository(db *gorm.DB) *CourtFilingRepository {
	return &CourtFilingRepository{db: db}
}

// Create creates a new court filing
func (r *CourtFilingRepository) Create(ctx context.Context, filing *models.CourtFiling) error {
	return r.db.WithContext(ctx).Create(filing).Error
}

// GetLatestByCaseID retrieves the most recent filing of a case
func (r *CourtFilingRepository) GetLatestByCaseID(ctx context.Context, caseID uuid.UUID) (*models.CourtFiling, error) {
	var filing models.CourtFiling
	err := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("created_at DESC").
		First(&filing).Error
	if err != nil {
		return nil, err
	}
	return &filing, nil
}

// UpdateHearing sets the filing status and hearing date
func (r *CourtFilingRepository) UpdateHearing(ctx context.Context, id uuid.UUID, status models.FilingStatus, hearingDate time.Time) error {
	return r.db.WithContext(ctx).Model(&models.CourtFiling{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"hearing_date": calendar.DateOf(hearingDate, nil),
		}).Error
}
