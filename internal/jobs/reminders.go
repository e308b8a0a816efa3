package jobs

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"
	"court-scheduling-backend/internal/logger"
	"court-scheduling-backend/internal/notification"

	"github.com/robfig/cron/v3"
)

const runTimeout = 2 * time.Minute

// HearingSource lists the active hearings of a district on a date
type HearingSource interface {
	UpcomingHearings(ctx context.Context, district string, date time.Time) ([]models.ScheduledEntry, error)
}

// ReminderRegistry runs one cron job per district that announces the next
// day's hearings. Jobs are keyed by the lower-cased district name.
type ReminderRegistry struct {
	mu        sync.Mutex
	cron      *cron.Cron
	spec      string
	location  *time.Location
	source    HearingSource
	publisher notification.Publisher
	entries   map[string]cron.EntryID
	now       func() time.Time
}

// NewReminderRegistry validates spec and builds a stopped registry evaluated
// in loc
func NewReminderRegistry(spec string, loc *time.Location, source HearingSource, publisher notification.Publisher) (*ReminderRegistry, error) {
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ReminderRegistry{
		cron:      cron.New(cron.WithLocation(loc)),
		spec:      spec,
		location:  loc,
		source:    source,
		publisher: publisher,
		entries:   make(map[string]cron.EntryID),
		now:       time.Now,
	}, nil
}

func districtKey(district string) string {
	return strings.ToLower(strings.TrimSpace(district))
}

// Register schedules the reminder job for district. Registering the same
// district twice is an error.
func (r *ReminderRegistry) Register(district string) error {
	key := districtKey(district)
	if key == "" {
		return fmt.Errorf("district is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("reminder job for district %q already registered", district)
	}

	name := strings.TrimSpace(district)
	id, err := r.cron.AddFunc(r.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		if _, err := r.RunNow(ctx, name); err != nil {
			logger.New().WithFields(map[string]interface{}{"district": name}).Errorf("hearing reminder job failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to register reminder job for %q: %w", district, err)
	}
	r.entries[key] = id

	logger.New().WithFields(map[string]interface{}{
		"district": name,
		"schedule": r.spec,
	}).Info("hearing reminder job registered")
	return nil
}

// Unregister removes the job of district and reports whether one existed
func (r *ReminderRegistry) Unregister(district string) bool {
	key := districtKey(district)

	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.entries[key]
	if !ok {
		return false
	}
	r.cron.Remove(id)
	delete(r.entries, key)
	return true
}

// Districts returns the registered district keys in order
func (r *ReminderRegistry) Districts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.entries))
	for key := range r.entries {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Start runs the cron scheduler in the background
func (r *ReminderRegistry) Start() {
	r.cron.Start()
	logger.New().WithField("jobs", len(r.Districts())).Info("hearing reminder scheduler started")
}

// Stop halts the scheduler and waits for running jobs
func (r *ReminderRegistry) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	logger.New().Info("hearing reminder scheduler stopped")
}

// RunNow publishes a hearing.reminder event for every active entry of
// district on the day after today in the court timezone. It returns the
// number of reminders published.
func (r *ReminderRegistry) RunNow(ctx context.Context, district string) (int, error) {
	tomorrow := calendar.DateOf(r.now(), r.location).AddDate(0, 0, 1)

	entries, err := r.source.UpcomingHearings(ctx, district, tomorrow)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range entries {
		e := &entries[i]
		event := notification.NewEvent(notification.EventHearingReminder, e.District, notification.HearingReminder{
			EntryID:     e.ID,
			CaseID:      e.CaseID,
			CaseNumber:  e.CaseNumber,
			HearingDate: calendar.FormatDate(e.HearingDate),
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			Courtroom:   e.Courtroom,
			ClientID:    e.ClientID,
			LawyerID:    e.LawyerID,
		})
		if err := r.publisher.Publish(ctx, event); err != nil {
			logger.WithContext(ctx).WithField("entry_id", e.ID).Warnf("failed to publish hearing reminder: %v", err)
			continue
		}
		sent++
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"district":     district,
		"hearing_date": calendar.FormatDate(tomorrow),
		"reminders":    sent,
	}).Info("hearing reminders published")
	return sent, nil
}
