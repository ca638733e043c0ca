package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	method := "GET"
	path := "/api/v1/bookings"
	status := "200"
	duration := 0.5

	RecordHTTPRequest(method, path, status, duration)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(method, path, status))
	assert.Equal(t, float64(1), count)

	metric := HTTPRequestDuration.WithLabelValues(method, path).(prometheus.Histogram)
	metric.Observe(duration)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/api/v1/auth/login", "200", 0.1)
	RecordHTTPRequest("POST", "/api/v1/auth/login", "200", 0.2)
	RecordHTTPRequest("POST", "/api/v1/auth/login", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/auth/login", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/auth/login", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordBooking(t *testing.T) {
	BookingsTotal.Reset()

	RecordBooking("pending", "5-a-side")

	count := testutil.ToFloat64(BookingsTotal.WithLabelValues("pending", "5-a-side"))
	assert.Equal(t, float64(1), count)
}

func TestRecordBookingMultiple(t *testing.T) {
	BookingsTotal.Reset()

	RecordBooking("pending", "5-a-side")
	RecordBooking("pending", "7-a-side")
	RecordBooking("confirmed", "5-a-side")

	fivePending := testutil.ToFloat64(BookingsTotal.WithLabelValues("pending", "5-a-side"))
	sevenPending := testutil.ToFloat64(BookingsTotal.WithLabelValues("pending", "7-a-side"))
	fiveConfirmed := testutil.ToFloat64(BookingsTotal.WithLabelValues("confirmed", "5-a-side"))

	assert.Equal(t, float64(1), fivePending)
	assert.Equal(t, float64(1), sevenPending)
	assert.Equal(t, float64(1), fiveConfirmed)
}

func TestRecordBookingCancellation(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "turfadmin_booking_cancellations_total_test",
			Help: "Total number of booking cancellations",
		},
	)

	oldCounter := BookingCancellationsTotal
	BookingCancellationsTotal = testCounter
	defer func() { BookingCancellationsTotal = oldCounter }()

	RecordBookingCancellation()
	RecordBookingCancellation()

	count := testutil.ToFloat64(testCounter)
	assert.Equal(t, float64(2), count)
}

func TestRecordPayment(t *testing.T) {
	PaymentsRecordedTotal.Reset()

	RecordPayment("advance", "upi")
	RecordPayment("advance", "cash")
	RecordPayment("remaining", "cash")

	advanceUPI := testutil.ToFloat64(PaymentsRecordedTotal.WithLabelValues("advance", "upi"))
	advanceCash := testutil.ToFloat64(PaymentsRecordedTotal.WithLabelValues("advance", "cash"))
	remainingCash := testutil.ToFloat64(PaymentsRecordedTotal.WithLabelValues("remaining", "cash"))

	assert.Equal(t, float64(1), advanceUPI)
	assert.Equal(t, float64(1), advanceCash)
	assert.Equal(t, float64(1), remainingCash)
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("booking_confirmation", "success")

	count := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "success"))
	assert.Equal(t, float64(1), count)
}

func TestRecordEmailMultipleTypes(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("booking_confirmation", "success")
	RecordEmail("booking_confirmation", "failed")
	RecordEmail("booking_reminder", "success")

	confirmSuccess := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "success"))
	confirmFailed := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "failed"))
	reminderSuccess := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_reminder", "success"))

	assert.Equal(t, float64(1), confirmSuccess)
	assert.Equal(t, float64(1), confirmFailed)
	assert.Equal(t, float64(1), reminderSuccess)
}

func TestRecordReview(t *testing.T) {
	ReviewsCreatedTotal.Reset()

	RecordReview(5)
	RecordReview(5)
	RecordReview(3)

	fiveStar := testutil.ToFloat64(ReviewsCreatedTotal.WithLabelValues("5"))
	threeStar := testutil.ToFloat64(ReviewsCreatedTotal.WithLabelValues("3"))

	assert.Equal(t, float64(2), fiveStar)
	assert.Equal(t, float64(1), threeStar)
}

func TestEmailQueueLength(t *testing.T) {
	EmailQueueLength.Set(10)
	value := testutil.ToFloat64(EmailQueueLength)
	assert.Equal(t, float64(10), value)

	EmailQueueLength.Set(5)
	value = testutil.ToFloat64(EmailQueueLength)
	assert.Equal(t, float64(5), value)

	EmailQueueLength.Set(0)
	value = testutil.ToFloat64(EmailQueueLength)
	assert.Equal(t, float64(0), value)
}

func TestMetricsIntegration(t *testing.T) {
	HTTPRequestsTotal.Reset()
	BookingsTotal.Reset()
	EmailsSentTotal.Reset()
	ReviewsCreatedTotal.Reset()

	RecordHTTPRequest("POST", "/api/v1/bookings", "201", 0.25)
	RecordBooking("pending", "5-a-side")
	RecordEmail("booking_confirmation", "success")
	RecordReview(4)

	httpCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/bookings", "201"))
	bookingCount := testutil.ToFloat64(BookingsTotal.WithLabelValues("pending", "5-a-side"))
	emailCount := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "success"))
	reviewCount := testutil.ToFloat64(ReviewsCreatedTotal.WithLabelValues("4"))

	assert.Equal(t, float64(1), httpCount)
	assert.Equal(t, float64(1), bookingCount)
	assert.Equal(t, float64(1), emailCount)
	assert.Equal(t, float64(1), reviewCount)
}
