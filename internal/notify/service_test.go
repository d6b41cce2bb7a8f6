package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/moksh009/topedge-site-sub001/internal/apperrors"
)

type fakeSender struct {
	sent []EmailMessage
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg EmailMessage) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func TestSendBookingConfirmation(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "admin@topedge.test", nil, nil)

	err := svc.SendBookingConfirmation(context.Background(), BookingEmailData{
		Name:     "Priya",
		Email:    "priya@example.com",
		Date:     "2025-01-01",
		Time:     "10:00",
		Services: []string{"AI Calling Agent", "Chatbot"},
	})
	if err != nil {
		t.Fatalf("SendBookingConfirmation: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 send, got %d", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.To != "priya@example.com" || msg.ToName != "Priya" {
		t.Errorf("unexpected recipient: %+v", msg)
	}
	if !strings.Contains(msg.Subject, "2025-01-01") {
		t.Errorf("subject missing date: %q", msg.Subject)
	}
	if !strings.Contains(msg.HTML, "AI Calling Agent, Chatbot") {
		t.Error("expected services joined into the details table")
	}
	if !strings.Contains(msg.HTML, "Hi Priya,") {
		t.Error("expected personalized greeting")
	}
}

func TestSendBookingConfirmation_OmitsCompanyWhenBlank(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "admin@topedge.test", nil, nil)

	err := svc.SendBookingConfirmation(context.Background(), BookingEmailData{
		Name:  "Priya",
		Email: "priya@example.com",
		Date:  "2025-01-01",
		Time:  "10:00",
	})
	if err != nil {
		t.Fatalf("SendBookingConfirmation: %v", err)
	}
	html := sender.sent[0].HTML
	if strings.Contains(html, "demo for .") || strings.Contains(html, "for  ") {
		t.Errorf("blank company leaked into intro: %q", html)
	}
	if !strings.Contains(html, "Not provided") {
		t.Error("expected placeholder for blank optional fields")
	}
}

func TestSendBookingAlert_GoesToAdmin(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "admin@topedge.test", nil, nil)

	err := svc.SendBookingAlert(context.Background(), BookingEmailData{
		Name: "Priya", Email: "priya@example.com", Date: "2025-01-01", Time: "10:00",
	})
	if err != nil {
		t.Fatalf("SendBookingAlert: %v", err)
	}
	if sender.sent[0].To != "admin@topedge.test" {
		t.Errorf("alert sent to %q, want admin inbox", sender.sent[0].To)
	}
}

func TestSendContactAlert_EscapesUserInput(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "admin@topedge.test", nil, nil)

	err := svc.SendContactAlert(context.Background(), ContactEmailData{
		Name:    "Mallory",
		Email:   "m@example.com",
		Message: `<script>alert("x")</script>`,
	})
	if err != nil {
		t.Fatalf("SendContactAlert: %v", err)
	}
	html := sender.sent[0].HTML
	if strings.Contains(html, "<script>") {
		t.Error("user input rendered unescaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped markup in rendered body")
	}
}

func TestSendMeetingConfirmation(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "admin@topedge.test", nil, nil)

	err := svc.SendMeetingConfirmation(context.Background(), "a@b.com", "Priya", MeetingConfirmationData{
		AttendeeName: "Priya",
		Summary:      "Intro Call",
		StartTime:    "2025-01-01T10:00:00Z",
		JoinURL:      "https://provider.test/j/123",
		Password:     "abc123",
	})
	if err != nil {
		t.Fatalf("SendMeetingConfirmation: %v", err)
	}
	msg := sender.sent[0]
	if !strings.Contains(msg.HTML, "https://provider.test/j/123") {
		t.Error("expected join link in body")
	}
	if !strings.Contains(msg.HTML, "abc123") {
		t.Error("expected meeting password in body")
	}
	if !strings.Contains(msg.Subject, "Intro Call") {
		t.Errorf("subject = %q", msg.Subject)
	}
}

func TestSendMeetingConfirmation_NoPasswordRow(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "admin@topedge.test", nil, nil)

	err := svc.SendMeetingConfirmation(context.Background(), "a@b.com", "", MeetingConfirmationData{
		Summary:   "Intro Call",
		StartTime: "2025-01-01T10:00:00Z",
		JoinURL:   "https://provider.test/j/123",
	})
	if err != nil {
		t.Fatalf("SendMeetingConfirmation: %v", err)
	}
	msg := sender.sent[0]
	if strings.Contains(msg.HTML, "Password") {
		t.Error("password row rendered for passwordless meeting")
	}
	if !strings.Contains(msg.HTML, "Hi there,") {
		t.Error("expected fallback greeting for missing attendee name")
	}
}

func TestSenderFailureWrappedAsNotification(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	svc := NewService(sender, "admin@topedge.test", nil, nil)

	err := svc.SendContactAcknowledgment(context.Background(), ContactEmailData{
		Name: "Priya", Email: "priya@example.com", Message: "hi",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if apperrors.KindOf(err) != apperrors.KindNotification {
		t.Errorf("kind = %q, want notification", apperrors.KindOf(err))
	}
	if !errors.Is(err, sender.err) {
		t.Error("expected underlying sender error to be wrapped")
	}
}

func TestNilSenderIsNotificationError(t *testing.T) {
	svc := NewService(nil, "admin@topedge.test", nil, nil)
	err := svc.SendMaintenanceAlert(context.Background(), MaintenanceEmailData{
		Name: "Priya", Email: "priya@example.com", Plan: "Pro",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if apperrors.KindOf(err) != apperrors.KindNotification {
		t.Errorf("kind = %q, want notification", apperrors.KindOf(err))
	}
}
