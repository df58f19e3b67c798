package liststate

import (
	"cmp"
	"slices"
	"strings"

	"github.com/stpnv0/MOTBooker/internal/domain"
)

// Column is a sortable table column.
type Column string

const (
	ColumnName          Column = "name"
	ColumnDate          Column = "date"
	ColumnTimeSlot      Column = "time_slot"
	ColumnTotal         Column = "total"
	ColumnPaymentStatus Column = "payment_status"
	ColumnBookedBy      Column = "booked_by"
	ColumnPayment       Column = "payment_method"
)

var Columns = []Column{
	ColumnName, ColumnDate, ColumnTimeSlot, ColumnTotal,
	ColumnPaymentStatus, ColumnBookedBy, ColumnPayment,
}

// Sort orders the rows of the current page only; it never asks the
// backend for other pages.
type Sort struct {
	Column Column `json:"column,omitempty"`
	Desc   bool   `json:"desc,omitempty"`
}

func (s Sort) Active() bool { return s.Column != "" }

func (s Sort) toggle(c Column) Sort {
	switch {
	case s.Column != c:
		return Sort{Column: c}
	case !s.Desc:
		return Sort{Column: c, Desc: true}
	default:
		return Sort{}
	}
}

// Apply returns a sorted copy of rows. The sort is stable, so equal
// keys keep the backend order.
func (s Sort) Apply(rows []domain.Booking) []domain.Booking {
	out := slices.Clone(rows)
	if !s.Active() {
		return out
	}
	cmpFn := comparator(s.Column)
	slices.SortStableFunc(out, func(a, b domain.Booking) int {
		c := cmpFn(&a, &b)
		if s.Desc {
			return -c
		}
		return c
	})
	return out
}

func comparator(c Column) func(a, b *domain.Booking) int {
	switch c {
	case ColumnName:
		return func(a, b *domain.Booking) int { return compareFold(a.Name(), b.Name()) }
	case ColumnDate:
		return func(a, b *domain.Booking) int {
			ta, _ := a.Date()
			tb, _ := b.Date()
			return ta.Compare(tb)
		}
	case ColumnTimeSlot:
		return func(a, b *domain.Booking) int { return cmp.Compare(a.SelectedTimeSlot, b.SelectedTimeSlot) }
	case ColumnTotal:
		return func(a, b *domain.Booking) int { return cmp.Compare(a.TotalPrice, b.TotalPrice) }
	case ColumnPaymentStatus:
		return func(a, b *domain.Booking) int { return compareFold(a.PaymentStatus, b.PaymentStatus) }
	case ColumnBookedBy:
		return func(a, b *domain.Booking) int { return compareFold(a.BookedBy, b.BookedBy) }
	case ColumnPayment:
		return func(a, b *domain.Booking) int {
			return compareFold(string(a.PaymentMethod), string(b.PaymentMethod))
		}
	default:
		return func(a, b *domain.Booking) int { return 0 }
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
