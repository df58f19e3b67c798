package domain

import (
	"fmt"
	"time"
)

type SlotStatus string

const (
	SlotAvailable SlotStatus = "Available"
	SlotBlocked   SlotStatus = "Blocked"
	SlotBooked    SlotStatus = "Booked"
)

type Slot struct {
	Time   string     `json:"time"`
	Status SlotStatus `json:"status"`
}

// Mutable reports whether staff may toggle the slot.
func (s Slot) Mutable() bool {
	return s.Status == SlotAvailable || s.Status == SlotBlocked
}

// DisabledDate is a fully booked or closed day returned for a month.
type DisabledDate struct {
	Date string `json:"date"`
}

const dateLayout = "2006-01-02"

// FormatDate renders the calendar date of t in its own location as
// YYYY-MM-DD. It never converts to UTC first, so a local midnight stays
// on the same day.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate reads YYYY-MM-DD as a local calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// NormalizeDate accepts either a bare date or an RFC3339 timestamp and
// returns the local calendar date as YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return FormatDate(t.In(time.Local)), nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return FormatDate(t), nil
}
