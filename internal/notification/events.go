package notification

import (
	"context"
	"errors"
	"time"

	"court-scheduling-backend/internal/logger"

	"github.com/google/uuid"
)

// EventType names a scheduling event
type EventType string

const (
	EventScheduleAllocated   EventType = "schedule.allocated"
	EventAdjournmentResolved EventType = "adjournment.resolved"
	EventHearingReminder     EventType = "hearing.reminder"
)

// Event is the envelope delivered to subscribers
type Event struct {
	Type       EventType   `json:"event"`
	District   string      `json:"district"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// ScheduleAllocated is published after a hearing is first booked
type ScheduleAllocated struct {
	CaseID      uuid.UUID `json:"case_id"`
	CaseNumber  string    `json:"case_number"`
	EntryID     uuid.UUID `json:"entry_id"`
	HearingDate string    `json:"hearing_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Courtroom   string    `json:"courtroom"`
}

// AdjournmentResolved is published when a scheduler accepts or rejects an adjournment
type AdjournmentResolved struct {
	RequestID    uuid.UUID `json:"request_id"`
	CaseID       uuid.UUID `json:"case_id"`
	CaseNumber   string    `json:"case_number"`
	Accepted     bool      `json:"accepted"`
	NewDate      string    `json:"new_date,omitempty"`
	NewStartTime string    `json:"new_start_time,omitempty"`
	NewEndTime   string    `json:"new_end_time,omitempty"`
	Courtroom    string    `json:"courtroom,omitempty"`
}

// HearingReminder is published the day before an active hearing
type HearingReminder struct {
	EntryID     uuid.UUID  `json:"entry_id"`
	CaseID      uuid.UUID  `json:"case_id"`
	CaseNumber  string     `json:"case_number"`
	HearingDate string     `json:"hearing_date"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	Courtroom   string     `json:"courtroom"`
	ClientID    uuid.UUID  `json:"client_id"`
	LawyerID    *uuid.UUID `json:"lawyer_id,omitempty"`
}

// NewEvent builds an envelope stamped with the current time
func NewEvent(t EventType, district string, data interface{}) Event {
	return Event{Type: t, District: district, OccurredAt: time.Now().UTC(), Data: data}
}

// Publisher delivers events after the originating transaction committed.
// Delivery failures never undo the committed state.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// LogPublisher writes every event to the structured log
type LogPublisher struct{}

// Publish logs the event
func (LogPublisher) Publish(ctx context.Context, event Event) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event":    string(event.Type),
		"district": event.District,
		"data":     event.Data,
	}).Info("event published")
	return nil
}

// Fanout publishes to every publisher and joins their errors
type Fanout []Publisher

// Publish delivers event to each publisher in order
func (f Fanout) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
