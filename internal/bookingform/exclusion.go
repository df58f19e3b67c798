package bookingform

import (
	"slices"

	"github.com/stpnv0/MOTBooker/internal/domain"
)

const NoSlotsWarning = "No available slots for this date"

// ExclusionSet holds the dates the date picker must not offer.
type ExclusionSet map[string]struct{}

func NewExclusionSet(dates ...string) ExclusionSet {
	s := make(ExclusionSet, len(dates))
	s.Add(dates...)
	return s
}

func (s ExclusionSet) Add(dates ...string) {
	for _, d := range dates {
		if d != "" {
			s[d] = struct{}{}
		}
	}
}

func (s ExclusionSet) Contains(date string) bool {
	_, ok := s[date]
	return ok
}

// Sorted returns the dates in calendar order.
func (s ExclusionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// DisabledDays normalizes backend disabled dates to YYYY-MM-DD. Entries
// that cannot be read are skipped.
func DisabledDays(dates []domain.DisabledDate) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		day, err := domain.NormalizeDate(d.Date)
		if err != nil {
			continue
		}
		out = append(out, day)
	}
	return out
}

// AvailableTimes keeps only the slots a customer can pick.
func AvailableTimes(slots []domain.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if s.Status == domain.SlotAvailable {
			out = append(out, s.Time)
		}
	}
	return out
}
