package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "motbooker"

var (
	once sync.Once

	backendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Count of backend API calls by endpoint and status code.",
		},
		[]string{"endpoint", "code"},
	)

	backendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Duration of backend API calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	refunds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refunds_total",
			Help:      "Count of refund attempts by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)

	slotToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_toggles_total",
			Help:      "Count of block/unblock requests by action and outcome.",
		},
		[]string{"action", "outcome"},
	)

	bookingDeletes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_deletes_total",
			Help:      "Count of booking deletions by outcome.",
		},
		[]string{"outcome"},
	)

	formSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submissions_total",
			Help:      "Count of public booking form submissions by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			backendRequests, backendDuration,
			refunds, slotToggles, bookingDeletes, formSubmissions,
		)
	})
}

// ObserveBackend records one backend call. code 0 means the request never
// got a response.
func ObserveBackend(endpoint string, code int, elapsed time.Duration) {
	backendRequests.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()
	backendDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func IncRefund(provider, outcome string) {
	refunds.WithLabelValues(provider, outcome).Inc()
}

func IncSlotToggle(action, outcome string) {
	slotToggles.WithLabelValues(action, outcome).Inc()
}

func IncBookingDelete(outcome string) {
	bookingDeletes.WithLabelValues(outcome).Inc()
}

func IncFormSubmission(outcome string) {
	formSubmissions.WithLabelValues(outcome).Inc()
}

// Outcome maps an error to the label used by the counters above.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
