package email

import (
	"context"
	"time"
)

// SendRequest describes a single outbound email.
type SendRequest struct {
	From    string // optional; sender default applies when empty
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// SendResult carries the provider's acknowledgement.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender delivers emails. Implementations: ResendSender (production)
// and NoopSender (development/tests).
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}
