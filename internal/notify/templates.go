package notify

import (
	"fmt"
	"html/template"
	"strings"
)

// Template data for the transactional emails the site sends. Every render
// function returns the subject line and the HTML body together so callers
// never pair a subject with the wrong template.

// BookingEmailData carries the fields collected by the booking form.
type BookingEmailData struct {
	Name           string
	Email          string
	Phone          string
	CompanyName    string
	Services       []string
	Date           string
	Time           string
	Duration       string
	Notes          string
	AdditionalInfo string
}

// ContactEmailData carries the fields collected by the contact form.
type ContactEmailData struct {
	Name        string
	Email       string
	Phone       string
	CompanyName string
	Subject     string
	Message     string
}

// MaintenanceEmailData carries the fields collected by the maintenance
// subscription form.
type MaintenanceEmailData struct {
	Name  string
	Email string
	Phone string
	Plan  string
}

// MeetingConfirmationData carries the details of a freshly booked meeting.
type MeetingConfirmationData struct {
	AttendeeName string
	Summary      string
	StartTime    string
	JoinURL      string
	Password     string
}

type detailRow struct {
	Label string
	Value string
	URL   string // renders Value as a link when set
}

type layoutData struct {
	Title     string
	Greeting  string
	Intro     string
	Rows      []detailRow
	Checklist []string
	Outro     string
	Footer    string
}

// layoutTmpl is the single HTML shell every email renders through.
// html/template escapes user-supplied fields, so form input cannot inject
// markup into the message.
var layoutTmpl = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f7;font-family:Arial,Helvetica,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
    <tr><td align="center" style="padding:24px;">
      <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;">
        <tr><td style="background-color:#111827;padding:20px 32px;">
          <h1 style="color:#ffffff;font-size:20px;margin:0;">{{.Title}}</h1>
        </td></tr>
        <tr><td style="padding:32px;">
          {{if .Greeting}}<p style="font-size:15px;color:#111827;margin:0 0 16px;">{{.Greeting}}</p>{{end}}
          {{if .Intro}}<p style="font-size:14px;color:#374151;margin:0 0 20px;">{{.Intro}}</p>{{end}}
          {{if .Rows}}
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="border-collapse:collapse;">
            {{range .Rows}}
            <tr>
              <td style="padding:8px 12px;border:1px solid #e5e7eb;font-size:13px;color:#6b7280;width:160px;">{{.Label}}</td>
              <td style="padding:8px 12px;border:1px solid #e5e7eb;font-size:13px;color:#111827;">{{if .URL}}<a href="{{.URL}}" style="color:#2563eb;">{{.Value}}</a>{{else}}{{.Value}}{{end}}</td>
            </tr>
            {{end}}
          </table>
          {{end}}
          {{if .Checklist}}
          <ul style="font-size:14px;color:#374151;margin:20px 0 0;padding-left:20px;">
            {{range .Checklist}}<li style="margin-bottom:6px;">{{.}}</li>{{end}}
          </ul>
          {{end}}
          {{if .Outro}}<p style="font-size:14px;color:#374151;margin:20px 0 0;">{{.Outro}}</p>{{end}}
        </td></tr>
        <tr><td style="background-color:#f9fafb;padding:16px 32px;">
          <p style="font-size:12px;color:#9ca3af;margin:0;">{{.Footer}}</p>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`))

const emailFooter = "TopEdge AI · AI calling agents and chat automation for growing businesses"

func renderLayout(data layoutData) (string, error) {
	if data.Footer == "" {
		data.Footer = emailFooter
	}
	var b strings.Builder
	if err := layoutTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("notify: render email template: %w", err)
	}
	return b.String(), nil
}

// orDefault substitutes a placeholder for optional form fields left blank so
// the admin tables never show an empty cell.
func orDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}

func bookingRows(d BookingEmailData) []detailRow {
	return []detailRow{
		{Label: "Name", Value: d.Name},
		{Label: "Email", Value: d.Email},
		{Label: "Phone", Value: orDefault(d.Phone)},
		{Label: "Company", Value: orDefault(d.CompanyName)},
		{Label: "Services", Value: orDefault(strings.Join(d.Services, ", "))},
		{Label: "Date", Value: d.Date},
		{Label: "Time", Value: d.Time},
		{Label: "Duration", Value: orDefault(d.Duration)},
		{Label: "Notes", Value: orDefault(d.Notes)},
		{Label: "Additional info", Value: orDefault(d.AdditionalInfo)},
	}
}

// renderBookingConfirmation is the acknowledgment sent to the person who
// booked a demo.
func renderBookingConfirmation(d BookingEmailData) (subject, html string, err error) {
	company := ""
	if strings.TrimSpace(d.CompanyName) != "" {
		company = " for " + d.CompanyName
	}
	html, err = renderLayout(layoutData{
		Title:    "Your Demo Is Booked",
		Greeting: fmt.Sprintf("Hi %s,", d.Name),
		Intro: fmt.Sprintf("Thanks for booking a demo%s. Here is what we have on file; "+
			"a calendar invitation with the meeting link follows separately.", company),
		Rows: bookingRows(d),
		Checklist: []string{
			"Keep an eye on your inbox for the calendar invitation.",
			"Have your current call volumes handy so we can size the agent for you.",
			"Reply to this email if you need to reschedule.",
		},
		Outro: "Talk soon,\nThe TopEdge AI team",
	})
	return fmt.Sprintf("Demo booked for %s at %s", d.Date, d.Time), html, err
}

// renderBookingAlert is the internal notification for a new booking.
func renderBookingAlert(d BookingEmailData) (subject, html string, err error) {
	html, err = renderLayout(layoutData{
		Title: "New Demo Booking",
		Intro: fmt.Sprintf("%s just booked a demo for %s at %s.", d.Name, d.Date, d.Time),
		Rows:  bookingRows(d),
	})
	return fmt.Sprintf("New demo booking: %s (%s %s)", d.Name, d.Date, d.Time), html, err
}

// renderContactAcknowledgment confirms receipt of a contact-form message.
func renderContactAcknowledgment(d ContactEmailData) (subject, html string, err error) {
	html, err = renderLayout(layoutData{
		Title:    "We Got Your Message",
		Greeting: fmt.Sprintf("Hi %s,", d.Name),
		Intro: "Thanks for reaching out. Your message is with our team and " +
			"someone will get back to you within one business day.",
		Rows: []detailRow{
			{Label: "Subject", Value: orDefault(d.Subject)},
			{Label: "Message", Value: d.Message},
		},
		Outro: "Talk soon,\nThe TopEdge AI team",
	})
	return "We received your message", html, err
}

// renderContactAlert is the internal notification for a contact-form message.
func renderContactAlert(d ContactEmailData) (subject, html string, err error) {
	html, err = renderLayout(layoutData{
		Title: "New Contact Message",
		Intro: fmt.Sprintf("%s sent a message through the contact form.", d.Name),
		Rows: []detailRow{
			{Label: "Name", Value: d.Name},
			{Label: "Email", Value: d.Email, URL: "mailto:" + d.Email},
			{Label: "Phone", Value: orDefault(d.Phone)},
			{Label: "Company", Value: orDefault(d.CompanyName)},
			{Label: "Subject", Value: orDefault(d.Subject)},
			{Label: "Message", Value: d.Message},
		},
	})
	return fmt.Sprintf("Contact form: %s", orDefault(d.Subject)), html, err
}

// renderMaintenanceAcknowledgment confirms a maintenance plan signup.
func renderMaintenanceAcknowledgment(d MaintenanceEmailData) (subject, html string, err error) {
	html, err = renderLayout(layoutData{
		Title:    "Maintenance Request Received",
		Greeting: fmt.Sprintf("Hi %s,", d.Name),
		Intro: fmt.Sprintf("Thanks for your interest in the %s plan. "+
			"We will confirm your subscription details shortly.", orDefault(d.Plan)),
		Rows: []detailRow{
			{Label: "Plan", Value: orDefault(d.Plan)},
			{Label: "Email", Value: d.Email},
			{Label: "Phone", Value: orDefault(d.Phone)},
		},
		Outro: "Talk soon,\nThe TopEdge AI team",
	})
	return "Your maintenance request is in", html, err
}

// renderMaintenanceAlert is the internal notification for a maintenance signup.
func renderMaintenanceAlert(d MaintenanceEmailData) (subject, html string, err error) {
	html, err = renderLayout(layoutData{
		Title: "New Maintenance Signup",
		Intro: fmt.Sprintf("%s requested the %s plan.", d.Name, orDefault(d.Plan)),
		Rows: []detailRow{
			{Label: "Name", Value: d.Name},
			{Label: "Email", Value: d.Email, URL: "mailto:" + d.Email},
			{Label: "Phone", Value: orDefault(d.Phone)},
			{Label: "Plan", Value: orDefault(d.Plan)},
		},
	})
	return fmt.Sprintf("Maintenance signup: %s", d.Name), html, err
}

// renderMeetingConfirmation is sent after the booking pipeline creates the
// meeting and calendar event.
func renderMeetingConfirmation(d MeetingConfirmationData) (subject, html string, err error) {
	rows := []detailRow{
		{Label: "Meeting", Value: d.Summary},
		{Label: "Starts", Value: d.StartTime},
		{Label: "Join link", Value: d.JoinURL, URL: d.JoinURL},
	}
	if d.Password != "" {
		rows = append(rows, detailRow{Label: "Password", Value: d.Password})
	}
	name := strings.TrimSpace(d.AttendeeName)
	if name == "" {
		name = "there"
	}
	html, err = renderLayout(layoutData{
		Title:    "Your Meeting Is Confirmed",
		Greeting: fmt.Sprintf("Hi %s,", name),
		Intro:    "Your meeting is booked. Join with the link below at the scheduled time.",
		Rows:     rows,
		Outro:    "See you there,\nThe TopEdge AI team",
	})
	return fmt.Sprintf("Confirmed: %s", d.Summary), html, err
}
