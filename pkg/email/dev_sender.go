package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements EmailSender for local runs and previews.
// It saves each email as HTML, optional plain text, and JSON metadata files
// instead of sending it.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender creates a development email sender that saves emails to dir.
// The directory is created on first send.
func NewDevSender(dir string) EmailSender {
	return &DevSender{dir: dir, now: time.Now}
}

// emailMetadata is the JSON sidecar written next to the HTML body.
type emailMetadata struct {
	Timestamp string            `json:"timestamp"`
	SendTo    string            `json:"send_to"`
	Subject   string            `json:"subject"`
	Tag       string            `json:"tag,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// SendEmail writes the email to the configured directory.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	// Recipient is part of the name: one run sends the same subject to everyone.
	baseFilename := fmt.Sprintf("%s_%s_%s",
		now.Format("2006_01_02_150405"),
		sanitizeFilename(identifier(params)),
		sanitizeFilename(params.SendTo),
	)

	htmlPath := filepath.Join(d.dir, baseFilename+".html")
	if err := os.WriteFile(htmlPath, []byte(params.BodyHTML), 0644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
	}

	if params.BodyText != "" {
		textPath := filepath.Join(d.dir, baseFilename+".txt")
		if err := os.WriteFile(textPath, []byte(params.BodyText), 0644); err != nil {
			return fmt.Errorf("%w: failed to write text file: %v", ErrFailedToSendEmail, err)
		}
	}

	jsonData, err := json.MarshalIndent(emailMetadata{
		Timestamp: now.Format(time.RFC3339),
		SendTo:    params.SendTo,
		Subject:   params.Subject,
		Tag:       params.Tag,
		Metadata:  params.Metadata,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}

	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	return nil
}

func identifier(params SendEmailParams) string {
	if params.Tag != "" {
		return params.Tag
	}
	return params.Subject
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts s into a lowercase, filesystem-safe name.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "@", "_at_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
