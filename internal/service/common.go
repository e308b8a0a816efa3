package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"court-scheduling-backend/internal/auth"
	"court-scheduling-backend/internal/calendar"
	apperrors "court-scheduling-backend/internal/errors"
	"court-scheduling-backend/internal/logger"
	"court-scheduling-backend/internal/notification"
	"court-scheduling-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Display fallbacks for missing denormalized names
const (
	UnknownName       = "Unknown"
	NotAssignedLawyer = "Not Assigned"
)

const timestampLayout = time.RFC3339

// NewValidator returns a validator that reports JSON field names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs struct validation and converts the first failure into a ValidationError
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("request", err.Error())
}

// requireActor fails when no authenticated principal is attached
func requireActor(actor *auth.Principal) error {
	if actor == nil {
		return apperrors.ErrPrincipalMissing
	}
	return nil
}

// parseDateField parses a civil date, reporting failures against field
func parseDateField(field, value string) (time.Time, error) {
	d, err := calendar.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, err.Error())
	}
	return d, nil
}

// parseWindow validates an HH:MM start/end pair, reporting a malformed bound
// against its own field and a reversed window against endField
func parseWindow(startField, endField, start, end string) (calendar.TimeWindow, error) {
	w := calendar.TimeWindow{Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}
	if _, err := calendar.ParseClock(w.Start); err != nil {
		return calendar.TimeWindow{}, apperrors.NewValidationError(startField, err.Error())
	}
	if _, err := calendar.ParseClock(w.End); err != nil {
		return calendar.TimeWindow{}, apperrors.NewValidationError(endField, err.Error())
	}
	if err := w.Validate(); err != nil {
		return calendar.TimeWindow{}, apperrors.NewValidationError(endField, err.Error())
	}
	return w, nil
}

// notFound maps gorm's record-not-found onto the given domain error
func notFound(err, domain error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain
	}
	return err
}

// isDomainError reports whether err already carries a domain classification
func isDomainError(err error) bool {
	return apperrors.IsNotFound(err) || apperrors.IsConflict(err) || apperrors.IsInvalidState(err) ||
		apperrors.IsValidation(err) || apperrors.IsAuthorization(err) || apperrors.IsAuthentication(err) ||
		apperrors.IsPersistence(err)
}

// translateStoreError maps storage failures onto the domain taxonomy. Unique
// index violations become conflicts, lost conditional updates become
// concurrent-update conflicts, everything else is a persistence failure.
func translateStoreError(op string, err error) error {
	if err == nil || isDomainError(err) {
		return err
	}

	if constraint, ok := repository.UniqueViolation(err); ok {
		switch constraint {
		case repository.ConstraintActiveWindow:
			return apperrors.ErrSlotConflict
		case repository.ConstraintOpenRequestPerCase:
			return apperrors.ErrScheduleRequestPending
		case repository.ConstraintPendingAdjournment:
			return apperrors.ErrDuplicatePendingRequest
		case repository.ConstraintCaseNumber:
			return apperrors.ErrCaseNumberExists
		case repository.ConstraintCaseSequence, repository.ConstraintActivePerCase:
			return apperrors.ErrConcurrentUpdate
		default:
			return apperrors.NewConflictError(fmt.Sprintf("%s: record already exists", op))
		}
	}

	if errors.Is(err, repository.ErrConditionNotMet) {
		return apperrors.ErrConcurrentUpdate
	}

	return apperrors.NewPersistenceError(op, err)
}

// publish delivers an event without letting failures reach the caller
func publish(ctx context.Context, publisher notification.Publisher, event notification.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WithContext(ctx).WithField("event", string(event.Type)).Warnf("failed to publish event: %v", err)
	}
}

// orDefault returns value unless it is blank
func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func formatOptionalDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return calendar.FormatDate(*t)
}

// paginate converts page/pageSize into limit/offset with the usual bounds
func paginate(page, pageSize int) (int, int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}
