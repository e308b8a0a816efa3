package calendar

import (
	"fmt"
	"strings"
	"time"
)

// ConflictMode selects the rule used to decide whether two bookings collide
type ConflictMode string

const (
	// ConflictModeOverlap compares true interval overlap within one courtroom.
	ConflictModeOverlap ConflictMode = "overlap"
	// ConflictModeLegacy matches identical start and end strings across every
	// courtroom of the district, the behaviour of historical data.
	ConflictModeLegacy ConflictMode = "legacy"
)

// IsValid checks if the ConflictMode is valid
func (m ConflictMode) IsValid() bool {
	switch m {
	case ConflictModeOverlap, ConflictModeLegacy:
		return true
	}
	return false
}

// Booking is the minimal view of a calendar entry the conflict rule needs.
type Booking struct {
	ID        string
	District  string
	Courtroom string
	Date      time.Time
	Window    TimeWindow
}

// Policy applies a ConflictMode to bookings.
type Policy struct {
	Mode ConflictMode
}

// NewPolicy returns a policy for mode, defaulting to overlap.
func NewPolicy(mode ConflictMode) Policy {
	if !mode.IsValid() {
		mode = ConflictModeOverlap
	}
	return Policy{Mode: mode}
}

// ScopesCourtroom reports whether bookings in different courtrooms can coexist.
func (p Policy) ScopesCourtroom() bool {
	return p.Mode != ConflictModeLegacy
}

// Conflicts reports whether candidate collides with existing.
func (p Policy) Conflicts(existing, candidate Booking) bool {
	if !strings.EqualFold(existing.District, candidate.District) {
		return false
	}
	if !sameDate(existing.Date, candidate.Date) {
		return false
	}
	if p.ScopesCourtroom() && !strings.EqualFold(existing.Courtroom, candidate.Courtroom) {
		return false
	}
	return p.WindowsCollide(existing.Window, candidate.Window)
}

// WindowsCollide applies only the time rule of the mode: identical windows in
// legacy mode, interval overlap otherwise.
func (p Policy) WindowsCollide(a, b TimeWindow) bool {
	if p.Mode == ConflictModeLegacy {
		return a.Equal(b)
	}
	return a.Overlaps(b)
}

// FindConflict returns the first booking in existing that collides with
// candidate, skipping the booking whose ID equals excludeID.
func (p Policy) FindConflict(existing []Booking, candidate Booking, excludeID string) (Booking, bool) {
	for _, b := range existing {
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if p.Conflicts(b, candidate) {
			return b, true
		}
	}
	return Booking{}, false
}

// PartitionKey names the slot-space partition a booking belongs to. Writers
// targeting the same key must be serialized.
func (p Policy) PartitionKey(district, courtroom string, date time.Time) string {
	district = strings.ToLower(strings.TrimSpace(district))
	if !p.ScopesCourtroom() {
		return fmt.Sprintf("%s|%s", district, FormatDate(date))
	}
	courtroom = strings.ToLower(strings.TrimSpace(courtroom))
	return fmt.Sprintf("%s|%s|%s", district, courtroom, FormatDate(date))
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
