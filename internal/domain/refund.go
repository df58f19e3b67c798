package domain

type RefundRequest struct {
	BookingID string
	CaptureID string
	Method    PaymentMethod
	Amount    Amount
	Reason    string
}

type RefundOutcome struct {
	Method  PaymentMethod `json:"payment_method"`
	Message string        `json:"message"`
}
