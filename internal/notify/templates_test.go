package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBookingConfirmation(t *testing.T) {
	subject, html, err := renderBookingConfirmation(BookingEmailData{
		Name:        "Priya",
		Email:       "priya@example.com",
		CompanyName: "Acme",
		Services:    []string{"AI Calling Agent"},
		Date:        "2025-01-01",
		Time:        "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "Demo booked for 2025-01-01 at 10:00", subject)
	assert.Contains(t, html, "for Acme")
	assert.Contains(t, html, "AI Calling Agent")
	assert.Contains(t, html, "calendar invitation")
}

func TestRenderBookingConfirmation_NoRawPlaceholders(t *testing.T) {
	_, html, err := renderBookingConfirmation(BookingEmailData{
		Name:  "Priya",
		Email: "priya@example.com",
		Date:  "2025-01-01",
		Time:  "10:00",
	})
	require.NoError(t, err)

	// Blank optional fields must render as a placeholder value, never as
	// leftover template syntax.
	assert.NotContains(t, html, "{{")
	assert.NotContains(t, html, "}}")
	assert.Contains(t, html, "Not provided")
}

func TestRenderBookingAlert(t *testing.T) {
	subject, html, err := renderBookingAlert(BookingEmailData{
		Name:  "Priya",
		Email: "priya@example.com",
		Phone: "+91 98765 43210",
		Date:  "2025-01-01",
		Time:  "10:00",
	})
	require.NoError(t, err)

	assert.Contains(t, subject, "Priya")
	assert.Contains(t, html, "+91 98765 43210")
}

func TestRenderContactAlert_MailtoLink(t *testing.T) {
	_, html, err := renderContactAlert(ContactEmailData{
		Name:    "Priya",
		Email:   "priya@example.com",
		Message: "Pricing question",
	})
	require.NoError(t, err)

	assert.Contains(t, html, `href="mailto:priya@example.com"`)
}

func TestRenderMaintenanceEmails(t *testing.T) {
	d := MaintenanceEmailData{Name: "Priya", Email: "priya@example.com", Plan: "Pro"}

	subject, html, err := renderMaintenanceAcknowledgment(d)
	require.NoError(t, err)
	assert.Contains(t, html, "Pro")
	assert.NotEmpty(t, subject)

	subject, html, err = renderMaintenanceAlert(d)
	require.NoError(t, err)
	assert.Contains(t, subject, "Priya")
	assert.Contains(t, html, "Pro")
}

func TestRenderMeetingConfirmation_EscapesUserText(t *testing.T) {
	_, html, err := renderMeetingConfirmation(MeetingConfirmationData{
		AttendeeName: `<b>Mallory</b>`,
		Summary:      "Intro",
		StartTime:    "2025-01-01T10:00:00Z",
		JoinURL:      "https://provider.test/j/123",
	})
	require.NoError(t, err)

	assert.False(t, strings.Contains(html, "<b>Mallory</b>"), "user text rendered unescaped")
	assert.Contains(t, html, "&lt;b&gt;Mallory&lt;/b&gt;")
}

func TestAllTemplatesShareFooter(t *testing.T) {
	_, bookingHTML, err := renderBookingConfirmation(BookingEmailData{Name: "A", Email: "a@b.c", Date: "d", Time: "t"})
	require.NoError(t, err)
	_, contactHTML, err := renderContactAcknowledgment(ContactEmailData{Name: "A", Email: "a@b.c", Message: "m"})
	require.NoError(t, err)

	assert.Contains(t, bookingHTML, emailFooter)
	assert.Contains(t, contactHTML, emailFooter)
}
