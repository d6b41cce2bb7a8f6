package notify

import (
	"context"

	"github.com/moksh009/topedge-site-sub001/internal/apperrors"
	"github.com/moksh009/topedge-site-sub001/internal/observability/metrics"
	"github.com/moksh009/topedge-site-sub001/pkg/logging"
)

// Service renders the site's transactional emails and hands them to the
// configured sender. Acknowledgments go to the visitor, alerts to the
// admin inbox.
type Service struct {
	sender     EmailSender
	adminEmail string
	metrics    *metrics.EmailMetrics
	logger     *logging.Logger
}

// NewService creates a notification service.
func NewService(sender EmailSender, adminEmail string, m *metrics.EmailMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		sender:     sender,
		adminEmail: adminEmail,
		metrics:    m,
		logger:     logger,
	}
}

func (s *Service) send(ctx context.Context, template string, msg EmailMessage, renderErr error) error {
	if renderErr != nil {
		s.metrics.ObserveSend(template, "error")
		return apperrors.Wrap(apperrors.KindNotification, "notify: render "+template, renderErr)
	}
	if s.sender == nil {
		s.metrics.ObserveSend(template, "error")
		return apperrors.New(apperrors.KindNotification, "notify: no email sender configured")
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		s.metrics.ObserveSend(template, "error")
		return apperrors.Wrap(apperrors.KindNotification, "notify: send "+template, err)
	}
	s.metrics.ObserveSend(template, "success")
	return nil
}

// SendMeetingConfirmation emails the attendee their join details after the
// booking pipeline has created the meeting and calendar event.
func (s *Service) SendMeetingConfirmation(ctx context.Context, to, toName string, d MeetingConfirmationData) error {
	subject, html, err := renderMeetingConfirmation(d)
	return s.send(ctx, "meeting_confirmation", EmailMessage{
		To:      to,
		ToName:  toName,
		Subject: subject,
		Body:    "Your meeting is confirmed. Join at " + d.JoinURL,
		HTML:    html,
	}, err)
}

// SendBookingConfirmation acknowledges a demo booking to the visitor.
func (s *Service) SendBookingConfirmation(ctx context.Context, d BookingEmailData) error {
	subject, html, err := renderBookingConfirmation(d)
	return s.send(ctx, "booking_confirmation", EmailMessage{
		To:      d.Email,
		ToName:  d.Name,
		Subject: subject,
		Body:    "Your demo is booked for " + d.Date + " at " + d.Time + ".",
		HTML:    html,
	}, err)
}

// SendBookingAlert notifies the admin inbox of a new demo booking.
func (s *Service) SendBookingAlert(ctx context.Context, d BookingEmailData) error {
	subject, html, err := renderBookingAlert(d)
	return s.send(ctx, "booking_alert", EmailMessage{
		To:      s.adminEmail,
		Subject: subject,
		Body:    d.Name + " booked a demo for " + d.Date + " at " + d.Time + ".",
		HTML:    html,
	}, err)
}

// SendContactAcknowledgment acknowledges a contact-form message to the visitor.
func (s *Service) SendContactAcknowledgment(ctx context.Context, d ContactEmailData) error {
	subject, html, err := renderContactAcknowledgment(d)
	return s.send(ctx, "contact_acknowledgment", EmailMessage{
		To:      d.Email,
		ToName:  d.Name,
		Subject: subject,
		Body:    "Thanks for reaching out. We will get back to you within one business day.",
		HTML:    html,
	}, err)
}

// SendContactAlert notifies the admin inbox of a contact-form message.
func (s *Service) SendContactAlert(ctx context.Context, d ContactEmailData) error {
	subject, html, err := renderContactAlert(d)
	return s.send(ctx, "contact_alert", EmailMessage{
		To:      s.adminEmail,
		Subject: subject,
		Body:    d.Name + " sent a message through the contact form.",
		HTML:    html,
	}, err)
}

// SendMaintenanceAcknowledgment acknowledges a maintenance signup to the visitor.
func (s *Service) SendMaintenanceAcknowledgment(ctx context.Context, d MaintenanceEmailData) error {
	subject, html, err := renderMaintenanceAcknowledgment(d)
	return s.send(ctx, "maintenance_acknowledgment", EmailMessage{
		To:      d.Email,
		ToName:  d.Name,
		Subject: subject,
		Body:    "Thanks for your interest in the " + orDefault(d.Plan) + " plan. We will confirm your subscription shortly.",
		HTML:    html,
	}, err)
}

// SendMaintenanceAlert notifies the admin inbox of a maintenance signup.
func (s *Service) SendMaintenanceAlert(ctx context.Context, d MaintenanceEmailData) error {
	subject, html, err := renderMaintenanceAlert(d)
	return s.send(ctx, "maintenance_alert", EmailMessage{
		To:      s.adminEmail,
		Subject: subject,
		Body:    d.Name + " requested the " + orDefault(d.Plan) + " plan.",
		HTML:    html,
	}, err)
}
