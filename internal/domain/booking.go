package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodPayPal PaymentMethod = "PayPal"
	PaymentMethodMollie PaymentMethod = "Mollie"
)

// RefundStatusCompleted marks a booking whose money has already been returned.
const RefundStatusCompleted = "completed"

// Amount is a money value in pounds. The backend sends it either as a
// JSON number or as a decimal string ("43.20").
type Amount float64

func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		*a = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", raw, err)
	}
	*a = Amount(v)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(json.Number(a.String()))
}

// ParseAmount reads a user-entered amount such as "43.2" or "£43.20".
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "£")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q", ErrValidation, s)
	}
	return Amount(v), nil
}

// Booking is a customer booking as owned by the backend. The admin
// dashboard only ever holds a page of these.
type Booking struct {
	ID               string        `json:"_id"`
	FirstName        string        `json:"firstName"`
	LastName         string        `json:"lastName"`
	CustomerName     string        `json:"customerName"`
	Email            string        `json:"email"`
	ContactNumber    string        `json:"contactNumber"`
	MakeAndModel     string        `json:"makeAndModel"`
	RegistrationNo   string        `json:"registrationNo"`
	SelectedDate     string        `json:"selectedDate"`
	SelectedTimeSlot string        `json:"selectedTimeSlot"`
	TotalPrice       Amount        `json:"totalPrice"`
	PaymentStatus    string        `json:"paymentStatus"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	CaptureID        string        `json:"captureId"`
	RefundStatus     string        `json:"refundStatus"`
	BookedBy         string        `json:"bookedBy"`
	Photos           []string      `json:"photos"`
}

// Name returns the display name, falling back to first + last name.
func (b *Booking) Name() string {
	if b.CustomerName != "" {
		return b.CustomerName
	}
	return strings.TrimSpace(b.FirstName + " " + b.LastName)
}

// Date parses SelectedDate, which the backend stores either as a bare
// date or as an RFC3339 timestamp.
func (b *Booking) Date() (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, b.SelectedDate); err == nil {
		return t, true
	}
	if t, err := ParseDate(b.SelectedDate); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// DisplayDate renders SelectedDate as dd/MM/yyyy.
func (b *Booking) DisplayDate() string {
	t, ok := b.Date()
	if !ok {
		return b.SelectedDate
	}
	return t.Format("02/01/2006")
}

func (b *Booking) Refunded() bool {
	return b.RefundStatus == RefundStatusCompleted
}

// BookingPage is one server-side page of bookings.
type BookingPage struct {
	Bookings   []Booking `json:"customers"`
	TotalPages int       `json:"totalPages"`
}

// PageQuery is the wire form of a list request: page is 1-based.
type PageQuery struct {
	Page   int
	Limit  int
	Search string
}
