package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConditionNotMet is returned by conditional updates that matched no row,
// meaning the guarded state changed since it was read.
var ErrConditionNotMet = errors.New("repository: update condition not met")

// Postgres SQLSTATE codes the repositories react to.
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// Unique index names the services map to domain conflicts.
const (
	ConstraintOpenRequestPerCase = "ux_schedule_requests_open_per_case"
	ConstraintActiveWindow       = "ux_scheduled_entries_active_window"
	ConstraintCaseSequence       = "ux_scheduled_entries_case_sequence"
	ConstraintActivePerCase      = "ux_scheduled_entries_active_per_case"
	ConstraintPendingAdjournment = "ux_adjournment_requests_pending_per_case"
	ConstraintCaseNumber         = "idx_cases_case_number"
)

// UniqueViolation reports whether err is a unique constraint violation and
// which constraint was violated.
func UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// IsRetryable reports whether the transaction that produced err may succeed
// when run again from the start.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}
