package bookingform

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/stpnv0/MOTBooker/internal/domain"
)

// FieldErrors maps a form field (its JSON name) to the message shown
// beside it.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return fmt.Sprintf("%s: %s", domain.ErrValidation, strings.Join(parts, "; "))
}

func (e FieldErrors) Unwrap() error { return domain.ErrValidation }

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	contactRe = regexp.MustCompile(`^\d{10,}$`)
)

// form mirrors domain.BookingRequest with the rules of the public form.
// Field order decides which message wins when a field breaks two rules.
type form struct {
	FirstName                 string `json:"firstName"                 validate:"required"`
	LastName                  string `json:"lastName"                  validate:"required"`
	Email                     string `json:"email"                     validate:"required,mailbox"`
	ContactNumber             string `json:"contactNumber"             validate:"required,contact"`
	SelectedDate              string `json:"selectedDate"              validate:"required"`
	SelectedTimeSlot          string `json:"selectedTimeSlot"          validate:"required"`
	AwareOfCancellationPolicy bool   `json:"awareOfCancellationPolicy" validate:"accepted"`
}

var messages = map[string]string{
	"firstName.required":                 "First name is required",
	"lastName.required":                  "Last name is required",
	"email.required":                     "Email is required",
	"email.mailbox":                      "Invalid email format",
	"contactNumber.required":             "Contact number is required",
	"contactNumber.contact":              "Invalid contact number",
	"selectedDate.required":              "Date is required",
	"selectedTimeSlot.required":          "Time slot is required",
	"awareOfCancellationPolicy.accepted": "Please accept the cancellation policy",
}

type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	mustRegister(v, "mailbox", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "contact", func(fl validator.FieldLevel) bool {
		return contactRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "accepted", func(fl validator.FieldLevel) bool {
		return fl.Field().Bool()
	})
	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Validate checks req the same way the form does before it is sent for
// verification. It returns nil or FieldErrors with one message per
// failing field.
func (v *Validator) Validate(req *domain.BookingRequest) error {
	f := form{
		FirstName:                 req.FirstName,
		LastName:                  req.LastName,
		Email:                     req.Email,
		ContactNumber:             req.ContactNumber,
		SelectedDate:              req.SelectedDate,
		SelectedTimeSlot:          req.SelectedTimeSlot,
		AwareOfCancellationPolicy: req.AwareOfCancellationPolicy,
	}

	err := v.v.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate booking request: %w", err)
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, ok := out[field]; ok {
			continue
		}
		msg, ok := messages[field+"."+fe.Tag()]
		if !ok {
			msg = field + " is invalid"
		}
		out[field] = msg
	}
	return out
}
