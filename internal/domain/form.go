package domain

// BookingRequest is what a customer submits from the public form.
type BookingRequest struct {
	FirstName                 string `json:"firstName"`
	LastName                  string `json:"lastName"`
	Email                     string `json:"email"`
	ContactNumber             string `json:"contactNumber"`
	MakeAndModel              string `json:"makeAndModel"`
	RegistrationNo            string `json:"registrationNo"`
	SelectedDate              string `json:"selectedDate"`
	SelectedTimeSlot          string `json:"selectedTimeSlot"`
	HowDidYouHearAboutUs      string `json:"howDidYouHearAboutUs"`
	AwareOfCancellationPolicy bool   `json:"awareOfCancellationPolicy"`
	TotalPrice                string `json:"totalPrice"`
	PaymentMethod             string `json:"paymentMethod"`
}

const (
	DefaultTotalPrice    = "43.20"
	DefaultPaymentMethod = string(PaymentMethodPayPal)
)

// ApplyDefaults fills the price and payment method the form preselects.
func (r *BookingRequest) ApplyDefaults() {
	if r.TotalPrice == "" {
		r.TotalPrice = DefaultTotalPrice
	}
	if r.PaymentMethod == "" {
		r.PaymentMethod = DefaultPaymentMethod
	}
}

var ReferralSources = []string{"Thomson Local", "Google", "Through a friend", "Yell.com", "Other"}

// DateSelection is the result of picking a date on the public form.
type DateSelection struct {
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
	Excluded []string `json:"excluded_dates"`
	Warning  string   `json:"warning,omitempty"`
}

// SubmitResult tells the form whether to open the payment step.
type SubmitResult struct {
	PaymentStep bool   `json:"payment_step"`
	Message     string `json:"message"`
}
