package dto

type RefundRequest struct {
	Amount string `json:"amount" form:"amount" binding:"required"`
	Reason string `json:"reason" form:"reason" binding:"required"`
}

type ToggleSlotRequest struct {
	Date   string `json:"date"   form:"date"   binding:"required"`
	Time   string `json:"time"   form:"time"   binding:"required"`
	Status string `json:"status" form:"status" binding:"required,oneof=Available Blocked Booked"`
}

type LoginRequest struct {
	Email    string `json:"email"    form:"email"    binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// MonthQuery names a month either by year and month or by any date in it.
type MonthQuery struct {
	Date  string `form:"date"`
	Year  int    `form:"year"  binding:"required_without=Date,omitempty,min=1"`
	Month int    `form:"month" binding:"required_without=Date,omitempty,min=1,max=12"`
}

type CancelPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" form:"paymentMethod" binding:"required"`
}
