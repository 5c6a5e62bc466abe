package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/classes", "200", 0.05)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/classes", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/book", "201", 0.1)
	RecordHTTPRequest("POST", "/book", "201", 0.2)
	RecordHTTPRequest("POST", "/book", "400", 0.05)

	created := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/book", "201"))
	rejected := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/book", "400"))

	assert.Equal(t, float64(2), created)
	assert.Equal(t, float64(1), rejected)
}

func TestRecordReservationOutcomes(t *testing.T) {
	ReservationsTotal.Reset()

	RecordReservation("success")
	RecordReservation("success")
	RecordReservation("conflict")
	RecordReservation("not_found")

	assert.Equal(t, float64(2), testutil.ToFloat64(ReservationsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ReservationsTotal.WithLabelValues("conflict")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ReservationsTotal.WithLabelValues("not_found")))
}

func TestRecordClassCreated(t *testing.T) {
	ClassesCreatedTotal.Reset()

	RecordClassCreated("yoga")
	RecordClassCreated("yoga")
	RecordClassCreated("hiit")

	assert.Equal(t, float64(2), testutil.ToFloat64(ClassesCreatedTotal.WithLabelValues("yoga")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ClassesCreatedTotal.WithLabelValues("hiit")))
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("booking_confirmation", "success")
	RecordEmail("booking_confirmation", "failed")

	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "failed")))
}

func TestEmailQueueLength(t *testing.T) {
	EmailQueueLength.Set(10)
	assert.Equal(t, float64(10), testutil.ToFloat64(EmailQueueLength))

	EmailQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(EmailQueueLength))
}
