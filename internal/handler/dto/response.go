package dto

import (
	"time"

	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/liststate"
)

type BookingResponse struct {
	ID               string   `json:"id"`
	CustomerName     string   `json:"customer_name"`
	Email            string   `json:"email"`
	ContactNumber    string   `json:"contact_number"`
	MakeAndModel     string   `json:"make_and_model"`
	RegistrationNo   string   `json:"registration_no"`
	SelectedDate     string   `json:"selected_date"`
	DisplayDate      string   `json:"display_date"`
	SelectedTimeSlot string   `json:"selected_time_slot"`
	TotalPrice       string   `json:"total_price"`
	PaymentStatus    string   `json:"payment_status"`
	PaymentMethod    string   `json:"payment_method"`
	RefundStatus     string   `json:"refund_status"`
	Refundable       bool     `json:"refundable"`
	BookedBy         string   `json:"booked_by"`
	Photos           []string `json:"photos,omitempty"`
}

type BookingPageResponse struct {
	Bookings  []BookingResponse   `json:"bookings"`
	View      liststate.ViewState `json:"view"`
	Sort      liststate.Sort      `json:"sort"`
	URL       string              `json:"url"`
	PageSizes []int               `json:"page_sizes"`
}

type SlotsResponse struct {
	Date  string        `json:"date"`
	Slots []domain.Slot `json:"slots"`
	Error string        `json:"error,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AuditEntryResponse struct {
	ID         string `json:"id"`
	Action     string `json:"action"`
	ResourceID string `json:"resource_id"`
	Actor      string `json:"actor"`
	Outcome    string `json:"outcome"`
	CreatedAt  string `json:"created_at"`
}

type ErrorResponse struct {
	Error    string            `json:"error"`
	Fields   map[string]string `json:"fields,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		CustomerName:     b.Name(),
		Email:            b.Email,
		ContactNumber:    b.ContactNumber,
		MakeAndModel:     b.MakeAndModel,
		RegistrationNo:   b.RegistrationNo,
		SelectedDate:     b.SelectedDate,
		DisplayDate:      b.DisplayDate(),
		SelectedTimeSlot: b.SelectedTimeSlot,
		TotalPrice:       b.TotalPrice.String(),
		PaymentStatus:    b.PaymentStatus,
		PaymentMethod:    string(b.PaymentMethod),
		RefundStatus:     b.RefundStatus,
		Refundable:       !b.Refunded(),
		BookedBy:         b.BookedBy,
		Photos:           b.Photos,
	}
}

func ToBookingPageResponse(rows []domain.Booking, view liststate.ViewState, sort liststate.Sort, path string) BookingPageResponse {
	bookings := make([]BookingResponse, 0, len(rows))
	for i := range rows {
		bookings = append(bookings, ToBookingResponse(&rows[i]))
	}

	return BookingPageResponse{
		Bookings:  bookings,
		View:      view,
		Sort:      sort,
		URL:       view.URL(path),
		PageSizes: liststate.PageSizes,
	}
}

func ToAuditEntryResponse(e *domain.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:         e.ID,
		Action:     string(e.Action),
		ResourceID: e.ResourceID,
		Actor:      e.Actor,
		Outcome:    e.Outcome,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}
