package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestBookingMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.ObserveBooking("success")
	m.ObserveBooking("success")
	m.ObserveBooking("meeting_creation")
	m.ObserveProviderLatency("zoom", 0.25)

	if got := testutil.ToFloat64(m.bookingsTotal.WithLabelValues("success")); got != 2 {
		t.Errorf("success count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.bookingsTotal.WithLabelValues("meeting_creation")); got != 1 {
		t.Errorf("failure count = %v, want 1", got)
	}
}

func TestEmailMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewEmailMetrics(reg)

	m.ObserveSend("booking_confirmation", "success")
	m.ObserveSend("booking_confirmation", "error")

	if got := testutil.ToFloat64(m.emailsTotal.WithLabelValues("booking_confirmation", "success")); got != 1 {
		t.Errorf("success count = %v, want 1", got)
	}
}

func TestNilReceiversAreSafe(t *testing.T) {
	var bm *BookingMetrics
	var em *EmailMetrics
	bm.ObserveBooking("success")
	bm.ObserveProviderLatency("zoom", 1)
	em.ObserveSend("x", "success")
}
