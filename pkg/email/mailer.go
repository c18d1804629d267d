package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string            `json:"send_to"`             // Email address of the recipient
	Subject  string            `json:"subject"`             // Subject of the email
	BodyHTML string            `json:"body_html"`           // HTML body of the email
	BodyText string            `json:"body_text,omitempty"` // Optional plain-text alternative
	Tag      string            `json:"tag,omitempty"`       // Optional
	Metadata map[string]string `json:"metadata,omitempty"`  // Optional, forwarded to the provider
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks that the recipient, subject and HTML body are present.
func (p SendEmailParams) Validate() error {
	if strings.TrimSpace(p.SendTo) == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}
