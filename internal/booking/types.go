package booking

// Request is the payload the booking form posts to create a meeting.
type Request struct {
	StartTime     string `json:"startTime"` // RFC 3339
	EndTime       string `json:"endTime"`   // RFC 3339
	Summary       string `json:"summary"`
	Description   string `json:"description"`
	AttendeeEmail string `json:"attendeeEmail"`
	AttendeeName  string `json:"attendeeName,omitempty"`
}

// Result is what the booking endpoint returns. On success the meeting
// identifiers are set and Error is empty; on failure only Error is set.
type Result struct {
	Success             bool   `json:"success"`
	CalendarEventID     string `json:"calendarEventId,omitempty"`
	ZoomMeetingURL      string `json:"zoomMeetingUrl,omitempty"`
	ZoomMeetingPassword string `json:"zoomMeetingPassword,omitempty"`
	Error               string `json:"error,omitempty"`
}
