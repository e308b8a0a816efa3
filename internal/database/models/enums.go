package models

import (
	apperrors "court-scheduling-backend/internal/errors"
)

// UserRole defines the roles recognised by the scheduling API
type UserRole string

const (
	UserRoleClient         UserRole = "client"
	UserRoleLawyer         UserRole = "lawyer"
	UserRoleCourtScheduler UserRole = "court_scheduler"
)

// CaseStatus is the lifecycle field of a Case
type CaseStatus string

const (
	CaseStatusDraft               CaseStatus = "draft"
	CaseStatusPending             CaseStatus = "pending"
	CaseStatusVerified            CaseStatus = "verified"
	CaseStatusLawyerRequested     CaseStatus = "lawyer_requested"
	CaseStatusLawyerAssigned      CaseStatus = "lawyer_assigned"
	CaseStatusFilingRequested     CaseStatus = "filing_requested"
	CaseStatusFiled               CaseStatus = "filed"
	CaseStatusSchedulingRequested CaseStatus = "scheduling_requested"
	CaseStatusHearingScheduled    CaseStatus = "hearing_scheduled"
	CaseStatusCompleted           CaseStatus = "completed"
	CaseStatusRejected            CaseStatus = "rejected"
)

// caseTransitions lists the legal next states for each case status.
var caseTransitions = map[CaseStatus][]CaseStatus{
	CaseStatusDraft:               {CaseStatusPending},
	CaseStatusPending:             {CaseStatusVerified, CaseStatusRejected},
	CaseStatusVerified:            {CaseStatusLawyerRequested},
	CaseStatusLawyerRequested:     {CaseStatusLawyerAssigned, CaseStatusRejected},
	CaseStatusLawyerAssigned:      {CaseStatusFilingRequested},
	CaseStatusFilingRequested:     {CaseStatusFiled, CaseStatusRejected},
	CaseStatusFiled:               {CaseStatusSchedulingRequested},
	CaseStatusSchedulingRequested: {CaseStatusHearingScheduled},
	CaseStatusHearingScheduled:    {CaseStatusHearingScheduled, CaseStatusCompleted},
}

// IsValid checks if the CaseStatus is valid
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusDraft, CaseStatusPending, CaseStatusVerified, CaseStatusLawyerRequested,
		CaseStatusLawyerAssigned, CaseStatusFilingRequested, CaseStatusFiled,
		CaseStatusSchedulingRequested, CaseStatusHearingScheduled, CaseStatusCompleted,
		CaseStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal transition
func (s CaseStatus) CanTransitionTo(next CaseStatus) bool {
	for _, allowed := range caseTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition returns next if the move from s is legal, otherwise an
// InvalidStateError naming the attempted operation.
func (s CaseStatus) Transition(next CaseStatus, operation string) (CaseStatus, error) {
	if !s.CanTransitionTo(next) {
		return s, apperrors.NewInvalidStateError("case", string(s), operation)
	}
	return next, nil
}

// SchedulePriority orders the schedule request queue
type SchedulePriority string

const (
	PriorityHigh   SchedulePriority = "high"
	PriorityMedium SchedulePriority = "medium"
	PriorityLow    SchedulePriority = "low"
)

// Priorities lists the queue priorities, highest first
func Priorities() []SchedulePriority {
	return []SchedulePriority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid checks if the SchedulePriority is valid
func (p SchedulePriority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank returns the queue position of the priority, lower first
func (p SchedulePriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// EntryStatus is the status of a calendar booking
type EntryStatus string

const (
	EntryStatusScheduled  EntryStatus = "scheduled"
	EntryStatusInProgress EntryStatus = "in_progress"
	EntryStatusCompleted  EntryStatus = "completed"
	EntryStatusAdjourned  EntryStatus = "adjourned"
	EntryStatusCancelled  EntryStatus = "cancelled"
)

var entryStatuses = []EntryStatus{
	EntryStatusScheduled, EntryStatusInProgress, EntryStatusCompleted, EntryStatusAdjourned, EntryStatusCancelled,
}

// ActiveEntryStatuses are the statuses that occupy a slot
func ActiveEntryStatuses() []EntryStatus {
	var active []EntryStatus
	for _, s := range entryStatuses {
		if s.IsActive() {
			active = append(active, s)
		}
	}
	return active
}

// IsValid checks if the EntryStatus is valid
func (s EntryStatus) IsValid() bool {
	for _, known := range entryStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsActive reports whether an entry in this status occupies its slot
func (s EntryStatus) IsActive() bool {
	return s == EntryStatusScheduled || s == EntryStatusInProgress
}

// AdjournmentStatus is the negotiation state of an adjournment request
type AdjournmentStatus string

const (
	AdjournmentStatusPending  AdjournmentStatus = "pending"
	AdjournmentStatusAccepted AdjournmentStatus = "accepted"
	AdjournmentStatusRejected AdjournmentStatus = "rejected"
)

// IsValid checks if the AdjournmentStatus is valid
func (s AdjournmentStatus) IsValid() bool {
	switch s {
	case AdjournmentStatusPending, AdjournmentStatusAccepted, AdjournmentStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the request has been resolved
func (s AdjournmentStatus) IsTerminal() bool {
	return s == AdjournmentStatusAccepted || s == AdjournmentStatusRejected
}

// AdjournmentUrgency is the client's stated urgency
type AdjournmentUrgency string

const (
	UrgencyLow    AdjournmentUrgency = "low"
	UrgencyMedium AdjournmentUrgency = "medium"
	UrgencyHigh   AdjournmentUrgency = "high"
)

// IsValid checks if the AdjournmentUrgency is valid
func (u AdjournmentUrgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// FilingStatus is the status of a case's submission to court
type FilingStatus string

const (
	FilingStatusDraft            FilingStatus = "draft"
	FilingStatusSubmitted        FilingStatus = "submitted"
	FilingStatusConfirmed        FilingStatus = "confirmed"
	FilingStatusFiled            FilingStatus = "filed"
	FilingStatusScheduled        FilingStatus = "scheduled"
	FilingStatusHearingCompleted FilingStatus = "hearing_completed"
	FilingStatusRejected         FilingStatus = "rejected"
)

// IsValid checks if the FilingStatus is valid
func (s FilingStatus) IsValid() bool {
	switch s {
	case FilingStatusDraft, FilingStatusSubmitted, FilingStatusConfirmed, FilingStatusFiled,
		FilingStatusScheduled, FilingStatusHearingCompleted, FilingStatusRejected:
		return true
	}
	return false
}
