package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dundeezhang/secret-santa/pkg/config"
	"github.com/dundeezhang/secret-santa/pkg/email"
	"github.com/dundeezhang/secret-santa/pkg/ledger"
	"github.com/dundeezhang/secret-santa/pkg/logger"
)

const serviceName = "secretsanta"

// Ledger backends.
const (
	backendLocal = "local"
	backendS3    = "s3"
)

// Config is the process configuration.
type Config struct {
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"` // json or text; empty follows AppEnv

	RosterPath string `env:"ROSTER_PATH" envDefault:"names.txt"`

	LedgerBackend string `env:"LEDGER_BACKEND" envDefault:"local"`
	LedgerDir     string `env:"LEDGER_DIR" envDefault:"."`
	LedgerKey     string `env:"LEDGER_KEY" envDefault:"output.txt"`
	S3            ledger.S3Config

	SendEmails bool          `env:"SEND_EMAILS" envDefault:"true"`
	EmailDelay time.Duration `env:"EMAIL_DELAY" envDefault:"600ms"`
	EmailDev   bool          `env:"EMAIL_DEV_MODE"` // write emails to Email.DevOutputDir instead of sending
	EmailTag   string        `env:"EMAIL_TAG" envDefault:"secret-santa"`
	Email      email.Config
}

// app holds what every command needs.
type app struct {
	cfg Config
	log *slog.Logger
	out io.Writer
}

func newApp(cmd *cobra.Command, configOpts []config.Option) (*app, error) {
	var cfg Config
	if err := config.Load(&cfg, configOpts...); err != nil {
		return nil, err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, serviceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(slog.String("command", cmd.Name())),
		logger.WithContextExtractors(logger.RunIDExtractor()),
	}
	switch format := logger.Format(cfg.LogFormat); format {
	case "":
	case logger.FormatJSON, logger.FormatText:
		logOpts = append(logOpts, logger.WithFormat(format))
	default:
		return nil, fmt.Errorf("%w: LOG_FORMAT must be %q or %q, got %q",
			config.ErrParsingConfig, logger.FormatJSON, logger.FormatText, cfg.LogFormat)
	}

	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	return &app{cfg: cfg, log: log, out: cmd.OutOrStdout()}, nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// ledger opens the configured result store. key overrides LedgerKey when non-empty.
func (a *app) ledger(ctx context.Context, key string) (*ledger.Ledger, error) {
	if key == "" {
		key = a.cfg.LedgerKey
	}

	var (
		store ledger.Store
		err   error
	)
	switch a.cfg.LedgerBackend {
	case backendLocal, "":
		store, err = ledger.NewLocalStore(a.cfg.LedgerDir)
	case backendS3:
		store, err = ledger.NewS3Store(ctx, a.cfg.S3, ledger.WithS3Timeout(30*time.Second))
	default:
		return nil, fmt.Errorf("%w: unknown ledger backend %q", ledger.ErrInvalidConfig, a.cfg.LedgerBackend)
	}
	if err != nil {
		return nil, err
	}
	return ledger.New(store, key), nil
}

// sender returns the configured email sender, or a reason why emails are skipped.
func (a *app) sender() (email.EmailSender, string, error) {
	if a.cfg.EmailDev {
		return email.NewDevSender(a.cfg.Email.DevOutputDir), "", nil
	}
	if !a.cfg.Email.Enabled() {
		return nil, emailSkipReason(a.cfg.Email), nil
	}
	s, err := email.NewPostmarkClient(a.cfg.Email)
	if err != nil {
		return nil, "", err
	}
	return s, "", nil
}

func emailSkipReason(cfg email.Config) string {
	if cfg.SenderEmail == "" {
		return "SENDER_EMAIL not configured. Set SENDER_EMAIL and POSTMARK_SERVER_TOKEN to enable emails."
	}
	return "POSTMARK_SERVER_TOKEN not configured. Set POSTMARK_SERVER_TOKEN to enable emails."
}
