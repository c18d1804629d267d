package email

// Config holds email service configuration.
// The server token is optional so that local runs can fall back to DevSender;
// NewPostmarkClient rejects a config without one.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	MessageStream        string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound"`
	SenderEmail          string `env:"SENDER_EMAIL"`
	ReplyToEmail         string `env:"REPLY_TO_EMAIL"`
	DevOutputDir         string `env:"EMAIL_DEV_DIR" envDefault:"./email-output"`
}

// Enabled reports whether enough configuration exists to send real emails.
func (c Config) Enabled() bool {
	return c.PostmarkServerToken != "" && c.SenderEmail != ""
}
