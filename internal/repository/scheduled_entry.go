package repository

import (
	"context"
	"time"

	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduledEntryRepository handles database operations for calendar entries
type ScheduledEntryRepository struct {
	db *gorm.DB
}

// NewScheduledEntryRepository creates a new scheduled entry repository
func NewScheduledEntryRepository(db *gorm.DB) *ScheduledEntryRepository {
	return &ScheduledEntryRepository{db: db}
}

// Create creates a new scheduled entry
func (r *ScheduledEntryRepository) Create(ctx context.Context, entry *models.ScheduledEntry) error {
	entry.HearingDate = calendar.DateOf(entry.HearingDate, nil)
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID retrieves a scheduled entry by ID
func (r *ScheduledEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ScheduledEntry, error) {
	var entry models.ScheduledEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetActiveByCaseID retrieves and row-locks the case's current active entry
func (r *ScheduledEntryRepository) GetActiveByCaseID(ctx context.Context, caseID uuid.UUID) (*models.ScheduledEntry, error) {
	var entry models.ScheduledEntry
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("case_id = ? AND status IN ?", caseID, models.ActiveEntryStatuses()).
		Order("sequence DESC").
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindActive retrieves the active entries of a district on date. An empty
// courtroom matches every courtroom of the district.
func (r *ScheduledEntryRepository) FindActive(ctx context.Context, district, courtroom string, date time.Time) ([]models.ScheduledEntry, error) {
	var entries []models.ScheduledEntry

	query := r.db.WithContext(ctx).
		Where("LOWER(district) = LOWER(?) AND hearing_date = ?", district, calendar.DateOf(date, nil)).
		Where("status IN ?", models.ActiveEntryStatuses())
	if courtroom != "" {
		query = query.Where("LOWER(courtroom) = LOWER(?)", courtroom)
	}

	err := query.Order("start_time ASC").Find(&entries).Error
	return entries, err
}

// ListByDistrictAndRange retrieves entries of a district between from and to
// inclusive. An empty statuses slice matches every status.
func (r *ScheduledEntryRepository) ListByDistrictAndRange(ctx context.Context, district string, from, to time.Time, statuses []models.EntryStatus) ([]models.ScheduledEntry, error) {
	var entries []models.ScheduledEntry

	query := r.db.WithContext(ctx).
		Where("LOWER(district) = LOWER(?)", district).
		Where("hearing_date BETWEEN ? AND ?", calendar.DateOf(from, nil), calendar.DateOf(to, nil))
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	err := query.Order("hearing_date ASC, start_time ASC, courtroom ASC").Find(&entries).Error
	return entries, err
}

// ListByCaseID retrieves the full hearing history of a case in sequence order
func (r *ScheduledEntryRepository) ListByCaseID(ctx context.Context, caseID uuid.UUID) ([]models.ScheduledEntry, error) {
	var entries []models.ScheduledEntry
	err := r.db.WithContext(ctx).Where("case_id = ?", caseID).Order("sequence ASC").Find(&entries).Error
	return entries, err
}

// NextSequence returns the sequence number the next entry of a case gets
func (r *ScheduledEntryRepository) NextSequence(ctx context.Context, caseID uuid.UUID) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Model(&models.ScheduledEntry{}).
		Select("COALESCE(MAX(sequence), 0) + 1").
		Where("case_id = ?", caseID).
		Scan(&next).Error
	return next, err
}

// Supersede marks an active entry adjourned and links it to its successor
func (r *ScheduledEntryRepository) Supersede(ctx context.Context, id, successorID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.ScheduledEntry{}).
		Where("id = ? AND status IN ?", id, models.ActiveEntryStatuses()).
		Updates(map[string]interface{}{
			"status":           models.EntryStatusAdjourned,
			"superseded_by_id": successorID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConditionNotMet
	}
	return nil
}
