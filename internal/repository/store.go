package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// retryBackoff is the base wait between transaction attempts
const retryBackoff = 20 * time.Millisecond

// Store bundles the scheduling repositories over one *gorm.DB, which is
// either the pool or an open transaction.
type Store struct {
	db         *gorm.DB
	maxRetries int

	cases            *CaseRepository
	scheduleRequests *ScheduleRequestRepository
	scheduledEntries *ScheduledEntryRepository
	adjournments     *AdjournmentRequestRepository
	courtFilings     *CourtFilingRepository
}

// NewStore creates a store. maxRetries bounds how many extra attempts a
// transaction gets after a serialization failure or deadlock.
func NewStore(db *gorm.DB, maxRetries int) *Store {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Store{
		db:               db,
		maxRetries:       maxRetries,
		cases:            NewCaseRepository(db),
		scheduleRequests: NewScheduleRequestRepository(db),
		scheduledEntries: NewScheduledEntryRepository(db),
		adjournments:     NewAdjournmentRequestRepository(db),
		courtFilings:     NewCourtFilingRepository(db),
	}
}

// Cases returns the case repository
func (s *Store) Cases() CaseRepositoryInterface { return s.cases }

// ScheduleRequests returns the schedule request repository
func (s *Store) ScheduleRequests() ScheduleRequestRepositoryInterface { return s.scheduleRequests }

// ScheduledEntries returns the scheduled entry repository
func (s *Store) ScheduledEntries() ScheduledEntryRepositoryInterface { return s.scheduledEntries }

// Adjournments returns the adjournment request repository
func (s *Store) Adjournments() AdjournmentRequestRepositoryInterface { return s.adjournments }

// CourtFilings returns the court filing repository
func (s *Store) CourtFilings() CourtFilingRepositoryInterface { return s.courtFilings }

// LockPartition takes pg_advisory_xact_lock on the hash of key. The lock is
// released when the enclosing transaction commits or rolls back.
func (s *Store) LockPartition(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}

// Transaction runs fn inside a database transaction. The whole callback is
// retried when Postgres reports a serialization failure or deadlock.
func (s *Store) Transaction(ctx context.Context, fn func(tx StoreInterface) error) error {
	var err error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
		}

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(NewStore(tx, 0))
		})
		if err == nil || !IsRetryable(err) {
			return err
		}
	}
	return err
}
