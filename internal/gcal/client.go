// Package gcal creates calendar events for confirmed bookings and lists
// already-booked slots, authenticating as a Google service account.
package gcal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/moksh009/topedge-site-sub001/internal/apperrors"
	"github.com/moksh009/topedge-site-sub001/pkg/logging"
)

// EventInput describes the calendar event to create for a booking.
type EventInput struct {
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
}

// Event is the provider's representation of the created event.
type Event struct {
	ID       string
	HTMLLink string
}

// BookedSlot is one occupied slot on the booking calendar.
type BookedSlot struct {
	Date     string `json:"date"`     // 2006-01-02
	TimeSlot string `json:"timeSlot"` // 15:04
}

// Client wraps the Google Calendar service for a single calendar.
type Client struct {
	svc        *calendar.Service
	calendarID string
	timezone   string
	location   *time.Location
	logger     *logging.Logger

	// newRequestID generates the per-call conference idempotency token.
	newRequestID func() string
}

// Config holds configuration for the calendar client.
type Config struct {
	ClientEmail string
	PrivateKey  string // PEM, with real newlines
	CalendarID  string
	Timezone    string // IANA zone applied to event start/end
}

// New creates a calendar client authenticated via a service-account JWT.
func New(ctx context.Context, cfg Config, logger *logging.Logger) (*Client, error) {
	if cfg.ClientEmail == "" || cfg.PrivateKey == "" {
		return nil, apperrors.New(apperrors.KindConfiguration, "gcal: service account email and private key are required")
	}
	if cfg.CalendarID == "" {
		return nil, apperrors.New(apperrors.KindConfiguration, "gcal: CalendarID is required")
	}

	jwtCfg := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{calendar.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindCalendar, "gcal: create calendar service", err)
	}

	return newWithService(svc, cfg.CalendarID, cfg.Timezone, logger), nil
}

// newWithService wires a client around an existing calendar service.
// Split out so tests can point the service at a fake endpoint.
func newWithService(svc *calendar.Service, calendarID, timezone string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		logger.Warn("gcal: unknown timezone, falling back to UTC", "timezone", timezone)
		timezone = "UTC"
		loc = time.UTC
	}
	return &Client{
		svc:          svc,
		calendarID:   calendarID,
		timezone:     timezone,
		location:     loc,
		logger:       logger,
		newRequestID: uuid.NewString,
	}
}

// CreateEvent inserts an event with the attendee invited and provider-side
// conference data requested under a fresh idempotency token. The calendar
// provider sends its own invitation email to the attendee.
func (c *Client) CreateEvent(ctx context.Context, in EventInput) (*Event, error) {
	event := &calendar.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start: &calendar.EventDateTime{
			DateTime: in.Start.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: in.End.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		Attendees: []*calendar.EventAttendee{
			{Email: in.AttendeeEmail},
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: c.newRequestID(),
			},
		},
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindCalendar, "gcal: insert event", err)
	}
	if created.Id == "" {
		return nil, apperrors.New(apperrors.KindCalendar, "gcal: insert response missing event id")
	}

	c.logger.Info("calendar event created", "event_id", created.Id, "attendee", in.AttendeeEmail)
	return &Event{ID: created.Id, HTMLLink: created.HtmlLink}, nil
}

// ListBookedSlots returns the occupied slots between from and to, formatted
// in the client's configured timezone.
func (c *Client) ListBookedSlots(ctx context.Context, from, to time.Time) ([]BookedSlot, error) {
	events, err := c.svc.Events.List(c.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindCalendar, "gcal: list events", err)
	}

	slots := make([]BookedSlot, 0, len(events.Items))
	for _, item := range events.Items {
		if item.Start == nil || item.Start.DateTime == "" {
			// All-day events do not occupy a bookable slot.
			continue
		}
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindCalendar,
				fmt.Sprintf("gcal: parse event start %q", item.Start.DateTime), err)
		}
		local := start.In(c.location)
		slots = append(slots, BookedSlot{
			Date:     local.Format("2006-01-02"),
			TimeSlot: local.Format("15:04"),
		})
	}
	return slots, nil
}
