package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// DigestEntry is one committed assignment in the ops digest.
type DigestEntry struct {
	StudentName string
	TutorName   string
	Date        string
	Time        string
}

// AssignmentDigestData holds data for the post-commit ops digest email.
type AssignmentDigestData struct {
	CommittedBy string
	Entries     []DigestEntry
}

// EmailService defines the contract for sending domain-level emails.
// Student/tutor confirmation and cancellation emails are dispatched by the
// external bookings service; only internal ops mail is sent from here.
type EmailService interface {
	SendAssignmentDigest(ctx context.Context, data *AssignmentDigestData) error
}
