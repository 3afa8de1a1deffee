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

// EventPublishedEmailData holds data for the "your event is live" email.
type EventPublishedEmailData struct {
	Email            string
	EventID          string
	EventTitle       string
	StartDate        string
	EndDate          string
	Location         string
	IsFree           bool
	TicketTypeCount  int
	PotentialRevenue string
	Agenda           string
}

// EmailService sends domain-level emails.
type EmailService interface {
	SendEventPublished(ctx context.Context, data *EventPublishedEmailData) error
}
