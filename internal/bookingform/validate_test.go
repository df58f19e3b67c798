package bookingform

import (
	"testing"

	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		FirstName:                 "John",
		LastName:                  "Smith",
		Email:                     "john@example.com",
		ContactNumber:             "07123456789",
		MakeAndModel:              "Ford Focus",
		RegistrationNo:            "AB12 CDE",
		SelectedDate:              "2024-05-01",
		SelectedTimeSlot:          "09:00",
		HowDidYouHearAboutUs:      "Google",
		AwareOfCancellationPolicy: true,
	}
}

func TestValidator_Valid(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(validRequest()))
}

func TestValidator_EmptyFormReportsEveryField(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&domain.BookingRequest{})

	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, FieldErrors{
		"firstName":                 "First name is required",
		"lastName":                  "Last name is required",
		"email":                     "Email is required",
		"contactNumber":             "Contact number is required",
		"selectedDate":              "Date is required",
		"selectedTimeSlot":          "Time slot is required",
		"awareOfCancellationPolicy": "Please accept the cancellation policy",
	}, fe)
}

func TestValidator_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.BookingRequest)
		field  string
		msg    string
	}{
		{"bad email", func(r *domain.BookingRequest) { r.Email = "john@example" }, "email", "Invalid email format"},
		{"email with space", func(r *domain.BookingRequest) { r.Email = "jo hn@example.com" }, "email", "Invalid email format"},
		{"short number", func(r *domain.BookingRequest) { r.ContactNumber = "071234567" }, "contactNumber", "Invalid contact number"},
		{"number with letters", func(r *domain.BookingRequest) { r.ContactNumber = "0712345678x" }, "contactNumber", "Invalid contact number"},
		{"number with plus", func(r *domain.BookingRequest) { r.ContactNumber = "+447123456789" }, "contactNumber", "Invalid contact number"},
		{"no time slot", func(r *domain.BookingRequest) { r.SelectedTimeSlot = "" }, "selectedTimeSlot", "Time slot is required"},
		{"policy not accepted", func(r *domain.BookingRequest) { r.AwareOfCancellationPolicy = false }, "awareOfCancellationPolicy", "Please accept the cancellation policy"},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := v.Validate(req)

			var fe FieldErrors
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, FieldErrors{tt.field: tt.msg}, fe)
		})
	}
}

func TestValidator_OptionalFields(t *testing.T) {
	v := NewValidator()
	req := validRequest()
	req.MakeAndModel = ""
	req.RegistrationNo = ""
	req.HowDidYouHearAboutUs = ""

	assert.NoError(t, v.Validate(req))
}

func TestFieldErrors_Error(t *testing.T) {
	fe := FieldErrors{"lastName": "Last name is required", "email": "Email is required"}

	assert.Equal(t, "validation error: email: Email is required; lastName: Last name is required", fe.Error())
}
