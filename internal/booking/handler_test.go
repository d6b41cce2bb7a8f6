package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/moksh009/topedge-site-sub001/internal/apperrors"
)

var errMeeting = apperrors.New(apperrors.KindMeetingCreation, "zoom: meeting unavailable")

func TestCreateMeetingHandler_RoundTrip(t *testing.T) {
	f := &fakeDeps{}
	h := NewHandler(newTestService(f), nil)

	body := `{
		"startTime": "2025-01-01T10:00:00Z",
		"endTime": "2025-01-01T11:00:00Z",
		"summary": "Intro Call",
		"description": "Discovery session",
		"attendeeEmail": "priya@example.com",
		"attendeeName": "Priya"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/create-meeting", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateMeeting(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	want := map[string]any{
		"success":             true,
		"calendarEventId":     "evt_1",
		"zoomMeetingUrl":      "https://provider.test/j/123",
		"zoomMeetingPassword": "abc123",
	}
	if len(got) != len(want) {
		t.Errorf("response has extra keys: %v", got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
}

func TestCreateMeetingHandler_InvalidJSON(t *testing.T) {
	f := &fakeDeps{}
	h := NewHandler(newTestService(f), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/create-meeting", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.CreateMeeting(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(f.calls) != 0 {
		t.Errorf("expected zero dependency calls, got %v", f.calls)
	}
}

func TestCreateMeetingHandler_ValidationError(t *testing.T) {
	f := &fakeDeps{}
	h := NewHandler(newTestService(f), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/create-meeting",
		strings.NewReader(`{"summary": "Intro Call"}`))
	rec := httptest.NewRecorder()
	h.CreateMeeting(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	var got Result
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Success || got.Error == "" {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestCreateMeetingHandler_ProviderError(t *testing.T) {
	f := &fakeDeps{meetingErr: errMeeting}
	h := NewHandler(newTestService(f), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/create-meeting",
		strings.NewReader(`{
			"startTime": "2025-01-01T10:00:00Z",
			"endTime": "2025-01-01T11:00:00Z",
			"summary": "Intro Call",
			"attendeeEmail": "priya@example.com"
		}`))
	rec := httptest.NewRecorder()
	h.CreateMeeting(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	var got Result
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Success || !strings.Contains(got.Error, "meeting unavailable") {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestCreateMeetingHandler_HidesInternalCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:443: connection refused")
	f := &fakeDeps{meetingErr: apperrors.Wrap(apperrors.KindMeetingCreation, "zoom: meeting request failed", cause)}
	h := NewHandler(newTestService(f), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/create-meeting",
		strings.NewReader(`{
			"startTime": "2025-01-01T10:00:00Z",
			"endTime": "2025-01-01T11:00:00Z",
			"summary": "Intro Call",
			"attendeeEmail": "priya@example.com"
		}`))
	rec := httptest.NewRecorder()
	h.CreateMeeting(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var got Result
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Error != "zoom: meeting request failed" {
		t.Errorf("error = %q, want the classified message only", got.Error)
	}
	if strings.Contains(got.Error, "dial tcp") {
		t.Error("internal cause leaked into the response body")
	}
}

func TestBookedSlotsHandler(t *testing.T) {
	f := &fakeDeps{}
	h := NewHandler(newTestService(f), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/booked-slots?startDate=2025-01-01&endDate=2025-01-07", nil)
	rec := httptest.NewRecorder()
	h.BookedSlots(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	// Empty result is an empty JSON array, not null.
	if strings.TrimSpace(rec.Body.String()) == "null" {
		t.Error("expected empty array, got null")
	}
}

func TestBookedSlotsHandler_MissingParams(t *testing.T) {
	f := &fakeDeps{}
	h := NewHandler(newTestService(f), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/booked-slots?startDate=2025-01-01", nil)
	rec := httptest.NewRecorder()
	h.BookedSlots(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(f.calls) != 0 {
		t.Errorf("expected zero calendar calls, got %v", f.calls)
	}
}
