package domain

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized request")
	ErrNotFound     = errors.New("booking not found")
	ErrBackend      = errors.New("backend request failed")
)

var (
	ErrSlotBooked               = errors.New("booked slots cannot be changed")
	ErrSlotChanged              = errors.New("slot status has changed, refresh and try again")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	ErrAlreadyRefunded          = errors.New("booking is already refunded")
	ErrVerificationFailed       = errors.New("booking verification failed")
)

var (
	ErrValidation  = errors.New("validation error")
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
