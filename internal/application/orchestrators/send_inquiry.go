package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/oto-ml/PILARES-web/internal/adapters/email"
)

// InquiryInput carries a visitor's course inquiry from the detail view.
type InquiryInput struct {
	CourseTitle  string
	VisitorName  string
	VisitorEmail string
	Message      string
}

// SendInquiryDeps holds dependencies for SendInquiry.
type SendInquiryDeps struct {
	Sender  email.Sender
	To      string // center inbox
	ReplyTo string
}

// Domain errors
var (
	ErrEmptyVisitorName  = errors.New("visitor name cannot be empty")
	ErrInvalidReplyEmail = errors.New("visitor email must contain '@'")
)

// ExecuteSendInquiry emails a course inquiry to the center's inbox.
// PRE: deps.Sender is configured (Resend or noop)
// POST: the inquiry is queued for delivery or an error is returned
func ExecuteSendInquiry(ctx context.Context, input InquiryInput, deps SendInquiryDeps) error {
	if strings.TrimSpace(input.VisitorName) == "" {
		return ErrEmptyVisitorName
	}
	if !strings.Contains(input.VisitorEmail, "@") {
		return ErrInvalidReplyEmail
	}

	body := fmt.Sprintf(
		"<p><strong>Curso:</strong> %s</p><p><strong>De:</strong> %s (%s)</p><p>%s</p>",
		html.EscapeString(input.CourseTitle),
		html.EscapeString(input.VisitorName),
		html.EscapeString(input.VisitorEmail),
		html.EscapeString(input.Message),
	)

	_, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{deps.To},
		ReplyTo: input.VisitorEmail,
		Subject: "Nueva solicitud de información: " + input.CourseTitle,
		HTML:    body,
	})
	if err != nil {
		return err
	}

	slog.Info("inquiry_event", "event", "inquiry_sent", "course", input.CourseTitle)
	return nil
}
