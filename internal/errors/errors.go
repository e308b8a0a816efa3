package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a write that collides with existing state:
// an occupied slot, an already scheduled request or a duplicate pending record.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// InvalidStateError represents an operation attempted against a record that is
// not in the state the operation requires
type InvalidStateError struct {
	Entity    string
	State     string
	Operation string
}

func (e *InvalidStateError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("cannot %s: %s is %s", e.Operation, e.Entity, e.State)
	}
	return fmt.Sprintf("%s is in invalid state %s", e.Entity, e.State)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// PersistenceError wraps a storage failure that aborted a write sequence.
// The wrapped error is kept for logs and never shown to API callers.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrCaseNotFound               = &NotFoundError{Entity: "case"}
	ErrScheduleRequestNotFound    = &NotFoundError{Entity: "schedule request"}
	ErrScheduledEntryNotFound     = &NotFoundError{Entity: "scheduled entry"}
	ErrActiveEntryNotFound        = &NotFoundError{Entity: "active scheduled entry"}
	ErrAdjournmentRequestNotFound = &NotFoundError{Entity: "adjournment request"}
	ErrCourtFilingNotFound        = &NotFoundError{Entity: "court filing"}
)

// Conflict Errors
var (
	ErrSlotConflict            = &ConflictError{Reason: "time slot is already occupied"}
	ErrAlreadyScheduled        = &ConflictError{Reason: "schedule request is already scheduled"}
	ErrDuplicatePendingRequest = &ConflictError{Reason: "a pending adjournment request already exists for this case"}
	ErrScheduleRequestPending  = &ConflictError{Reason: "an unscheduled schedule request already exists for this case"}
	ErrCaseNumberExists        = &ConflictError{Reason: "case number already exists"}
	ErrConcurrentUpdate        = &ConflictError{Reason: "record was modified by another request"}
)

// Business Logic Errors
var (
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrLawyerNotSet     = &InvalidStateError{Entity: "case", State: "without an assigned lawyer", Operation: "request scheduling"}
)

// Authorization Errors
var (
	ErrNotCaseLawyer    = &AuthorizationError{Message: "only the case's assigned lawyer may perform this action"}
	ErrNotCaseClient    = &AuthorizationError{Message: "only the case's client may perform this action"}
	ErrPrincipalMissing = &AuthenticationError{Message: "authenticated user not found in context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistErr *PersistenceError
	return errors.As(err, &persistErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(reason string) error {
	return &ConflictError{Reason: reason}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(entity, state, operation string) error {
	return &InvalidStateError{Entity: entity, State: state, Operation: operation}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewPersistenceError wraps a storage error raised during op
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
