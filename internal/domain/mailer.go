package domain

import "context"

// EmailMessage is a rendered email ready to send.
type EmailMessage struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer delivers rendered emails.
type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) error
}
