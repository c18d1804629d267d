package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// PostmarkAPI is the subset of *postmark.Client used for sending.
type PostmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkOption configures the Postmark sender.
type PostmarkOption func(*postmarkClient)

// WithPostmarkAPI replaces the underlying Postmark client, mainly for tests.
func WithPostmarkAPI(api PostmarkAPI) PostmarkOption {
	return func(c *postmarkClient) {
		if api != nil {
			c.client = api
		}
	}
}

type postmarkClient struct {
	client PostmarkAPI
	config Config
}

// NewPostmarkClient creates a Postmark-backed email sender.
func NewPostmarkClient(cfg Config, opts ...PostmarkOption) (EmailSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.ReplyToEmail != "" && !emailRegex.MatchString(cfg.ReplyToEmail) {
		return nil, fmt.Errorf("%w: ReplyToEmail must be a valid email address", ErrInvalidConfig)
	}

	c := &postmarkClient{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SendEmail implements EmailSender using Postmark's transactional API.
// Assignment emails are private, so open and link tracking stay off.
func (c *postmarkClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:          c.config.SenderEmail,
		ReplyTo:       c.config.ReplyToEmail,
		To:            params.SendTo,
		Subject:       params.Subject,
		Tag:           params.Tag,
		HTMLBody:      params.BodyHTML,
		TextBody:      params.BodyText,
		Metadata:      params.Metadata,
		MessageStream: c.config.MessageStream,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
