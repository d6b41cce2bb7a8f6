// Package booking orchestrates the meeting-booking pipeline: acquire a
// provider token, create the meeting, put it on the calendar, then notify
// the attendee and the ops inbox.
package booking

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/moksh009/topedge-site-sub001/internal/apperrors"
	"github.com/moksh009/topedge-site-sub001/internal/gcal"
	"github.com/moksh009/topedge-site-sub001/internal/notify"
	"github.com/moksh009/topedge-site-sub001/internal/observability/metrics"
	"github.com/moksh009/topedge-site-sub001/internal/zoom"
	"github.com/moksh009/topedge-site-sub001/pkg/logging"
)

// TokenSource acquires a bearer token for the meeting provider.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// MeetingCreator creates a scheduled meeting with the provider.
type MeetingCreator interface {
	CreateMeeting(ctx context.Context, token string, params zoom.MeetingParams) (*zoom.Meeting, error)
}

// CalendarService creates events and lists occupied slots.
type CalendarService interface {
	CreateEvent(ctx context.Context, in gcal.EventInput) (*gcal.Event, error)
	ListBookedSlots(ctx context.Context, from, to time.Time) ([]gcal.BookedSlot, error)
}

// Notifier sends the post-booking emails.
type Notifier interface {
	SendMeetingConfirmation(ctx context.Context, to, toName string, d notify.MeetingConfirmationData) error
	SendBookingAlert(ctx context.Context, d notify.BookingEmailData) error
}

// Service runs the booking pipeline.
type Service struct {
	tokens   TokenSource
	meetings MeetingCreator
	calendar CalendarService
	notifier Notifier
	metrics  *metrics.BookingMetrics
	timezone string
	logger   *logging.Logger
}

// NewService creates a booking service.
func NewService(tokens TokenSource, meetings MeetingCreator, calendar CalendarService,
	notifier Notifier, m *metrics.BookingMetrics, timezone string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if timezone == "" {
		timezone = "UTC"
	}
	return &Service{
		tokens:   tokens,
		meetings: meetings,
		calendar: calendar,
		notifier: notifier,
		metrics:  m,
		timezone: timezone,
		logger:   logger,
	}
}

type validatedRequest struct {
	start time.Time
	end   time.Time
	req   Request
}

func (s *Service) validate(req Request) (*validatedRequest, error) {
	if req.AttendeeEmail == "" {
		return nil, apperrors.New(apperrors.KindValidation, "booking: attendeeEmail is required")
	}
	if _, err := mail.ParseAddress(req.AttendeeEmail); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation,
			fmt.Sprintf("booking: invalid attendeeEmail %q", req.AttendeeEmail), err)
	}
	if req.Summary == "" {
		return nil, apperrors.New(apperrors.KindValidation, "booking: summary is required")
	}
	if req.StartTime == "" || req.EndTime == "" {
		return nil, apperrors.New(apperrors.KindValidation, "booking: startTime and endTime are required")
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, fmt.Sprintf("booking: invalid startTime %q", req.StartTime), err)
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, fmt.Sprintf("booking: invalid endTime %q", req.EndTime), err)
	}
	if !end.After(start) {
		return nil, apperrors.New(apperrors.KindValidation, "booking: endTime must be after startTime")
	}
	return &validatedRequest{start: start, end: end, req: req}, nil
}

// Book runs the pipeline in order. Any failure before the notification step
// aborts the booking; a notification failure does not, because the meeting
// and calendar event already exist and the attendee can still be reached
// manually.
func (s *Service) Book(ctx context.Context, req Request) (*Result, error) {
	v, err := s.validate(req)
	if err != nil {
		s.metrics.ObserveBooking(string(apperrors.KindValidation))
		return nil, err
	}

	token, err := timed(s.metrics, "zoom_token", func() (string, error) {
		return s.tokens.Token(ctx)
	})
	if err != nil {
		s.metrics.ObserveBooking(string(apperrors.KindOf(err)))
		return nil, err
	}

	meeting, err := timed(s.metrics, "zoom_meeting", func() (*zoom.Meeting, error) {
		return s.meetings.CreateMeeting(ctx, token, zoom.MeetingParams{
			Topic:           v.req.Summary,
			StartTime:       v.start,
			DurationMinutes: int(v.end.Sub(v.start).Minutes()),
			Timezone:        s.timezone,
			Agenda:          v.req.Description,
		})
	})
	if err != nil {
		s.metrics.ObserveBooking(string(apperrors.KindOf(err)))
		return nil, err
	}

	event, err := timed(s.metrics, "calendar", func() (*gcal.Event, error) {
		return s.calendar.CreateEvent(ctx, gcal.EventInput{
			Summary:       v.req.Summary,
			Description:   meetingDescription(v.req.Description, meeting),
			Start:         v.start,
			End:           v.end,
			AttendeeEmail: v.req.AttendeeEmail,
		})
	})
	if err != nil {
		s.metrics.ObserveBooking(string(apperrors.KindOf(err)))
		return nil, err
	}

	s.notifyBooked(ctx, v, meeting)

	s.metrics.ObserveBooking("success")
	s.logger.Info("booking completed",
		"event_id", event.ID, "meeting_id", meeting.ID, "attendee", v.req.AttendeeEmail)
	return &Result{
		Success:             true,
		CalendarEventID:     event.ID,
		ZoomMeetingURL:      meeting.JoinURL,
		ZoomMeetingPassword: meeting.Password,
	}, nil
}

// notifyBooked sends the attendee confirmation and the ops alert. Failures
// are logged and counted, never returned.
func (s *Service) notifyBooked(ctx context.Context, v *validatedRequest, meeting *zoom.Meeting) {
	if s.notifier == nil {
		return
	}
	local := v.start
	if loc, err := time.LoadLocation(s.timezone); err == nil {
		local = v.start.In(loc)
	}

	if err := s.notifier.SendMeetingConfirmation(ctx, v.req.AttendeeEmail, v.req.AttendeeName,
		notify.MeetingConfirmationData{
			AttendeeName: v.req.AttendeeName,
			Summary:      v.req.Summary,
			StartTime:    local.Format("Monday, 2 Jan 2006 at 15:04 MST"),
			JoinURL:      meeting.JoinURL,
			Password:     meeting.Password,
		}); err != nil {
		s.metrics.ObserveBooking("notification_failed")
		s.logger.Error("attendee confirmation failed after successful booking",
			"error", err, "attendee", v.req.AttendeeEmail)
	}

	if err := s.notifier.SendBookingAlert(ctx, notify.BookingEmailData{
		Name:  v.req.AttendeeName,
		Email: v.req.AttendeeEmail,
		Date:  local.Format("2006-01-02"),
		Time:  local.Format("15:04"),
		Notes: v.req.Description,
	}); err != nil {
		s.metrics.ObserveBooking("notification_failed")
		s.logger.Error("ops booking alert failed after successful booking", "error", err)
	}
}

// BookedSlots lists occupied slots between two dates, end date inclusive.
func (s *Service) BookedSlots(ctx context.Context, startDate, endDate string) ([]gcal.BookedSlot, error) {
	from, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, fmt.Sprintf("booking: invalid startDate %q", startDate), err)
	}
	to, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, fmt.Sprintf("booking: invalid endDate %q", endDate), err)
	}
	if to.Before(from) {
		return nil, apperrors.New(apperrors.KindValidation, "booking: endDate before startDate")
	}
	return s.calendar.ListBookedSlots(ctx, from, to.AddDate(0, 0, 1))
}

func meetingDescription(base string, m *zoom.Meeting) string {
	desc := base
	if desc != "" {
		desc += "\n\n"
	}
	desc += "Join Zoom Meeting: " + m.JoinURL
	if m.Password != "" {
		desc += "\nPassword: " + m.Password
	}
	return desc
}

// timed runs fn and records its latency under the given provider label.
func timed[T any](m *metrics.BookingMetrics, provider string, fn func() (T, error)) (T, error) {
	startedAt := time.Now()
	out, err := fn()
	m.ObserveProviderLatency(provider, time.Since(startedAt).Seconds())
	return out, err
}
