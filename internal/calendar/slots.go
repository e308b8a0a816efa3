package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockLayout is the wire format for hearing start and end times
const ClockLayout = "HH:MM"

// TimeWindow is a half-open [Start, End) hearing window within one day.
type TimeWindow struct {
	Start string `json:"start" example:"09:00"`
	End   string `json:"end" example:"10:00"`
}

// standardSlots are the bookable windows of a court day. The lunch break
// 12:00-14:00 is deliberately absent.
var standardSlots = []TimeWindow{
	{Start: "09:00", End: "10:00"},
	{Start: "10:00", End: "11:00"},
	{Start: "11:00", End: "12:00"},
	{Start: "14:00", End: "15:00"},
	{Start: "15:00", End: "16:00"},
	{Start: "16:00", End: "17:00"},
}

// StandardSlots returns the fixed ordered slot catalog. The returned slice is a
// copy and may be modified by the caller.
func StandardSlots() []TimeWindow {
	out := make([]TimeWindow, len(standardSlots))
	copy(out, standardSlots)
	return out
}

// ParseClock converts an "HH:MM" string into minutes after midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || !twoDigits(parts[0]) || !twoDigits(parts[1]) {
		return 0, fmt.Errorf("time %q must use %s format", s, ClockLayout)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("time %q has an invalid hour", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q has an invalid minute", s)
	}
	return h*60 + m, nil
}

// twoDigits rejects signs and padding that strconv.Atoi would accept
func twoDigits(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}

// FormatClock renders minutes after midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Minutes returns the parsed bounds of the window.
func (w TimeWindow) Minutes() (start, end int, err error) {
	start, err = ParseClock(w.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err = ParseClock(w.End)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Validate checks both bounds are well formed and Start is before End.
func (w TimeWindow) Validate() error {
	start, end, err := w.Minutes()
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("start time %s must be before end time %s", w.Start, w.End)
	}
	return nil
}

// Duration returns the window length in minutes; malformed windows report 0.
func (w TimeWindow) Duration() int {
	start, end, err := w.Minutes()
	if err != nil || end < start {
		return 0
	}
	return end - start
}

// Overlaps reports whether two half-open windows share any minute.
// Malformed windows never overlap anything.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	aStart, aEnd, err := w.Minutes()
	if err != nil {
		return false
	}
	bStart, bEnd, err := other.Minutes()
	if err != nil {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}

// Equal reports whether both windows carry identical bound strings.
func (w TimeWindow) Equal(other TimeWindow) bool {
	return w.Start == other.Start && w.End == other.End
}

func (w TimeWindow) String() string {
	return w.Start + "-" + w.End
}
