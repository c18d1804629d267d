// Package notify emails each giver the name of their receiver.
//
// Messages are sent one at a time, spaced by a fixed delay to stay within the
// provider's rate limit. A failed message is recorded in the Report and the
// run continues; only context cancellation stops a run early.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/dundeezhang/secret-santa/pkg/email"
	"github.com/dundeezhang/secret-santa/pkg/email/templates"
	"github.com/dundeezhang/secret-santa/pkg/logger"
	"github.com/dundeezhang/secret-santa/pkg/santa"
)

const (
	// DefaultDelay keeps a sequential run at under two requests per second.
	DefaultDelay = 600 * time.Millisecond

	// DefaultTag is attached to every message for provider-side filtering.
	DefaultTag = "secret-santa"
)

// Result is the outcome of a single message.
type Result struct {
	Santa string `json:"santa"`
	Email string `json:"email"`
	Err   error  `json:"-"`
}

// Success reports whether the message was accepted by the sender.
func (r Result) Success() bool {
	return r.Err == nil
}

// Report summarizes a run in assignment order.
type Report struct {
	Results []Result `json:"results"`
	Sent    int      `json:"sent"`
	Failed  int      `json:"failed"`
}

// Total is the number of messages attempted.
func (r Report) Total() int {
	return len(r.Results)
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithDelay sets the minimum spacing between messages. Zero disables spacing.
func WithDelay(d time.Duration) Option {
	return func(n *Dispatcher) {
		if d < 0 {
			return
		}
		n.delay = d
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(n *Dispatcher) {
		if l != nil {
			n.log = l
		}
	}
}

// WithTag overrides DefaultTag.
func WithTag(tag string) Option {
	return func(n *Dispatcher) {
		n.tag = tag
	}
}

// WithObserver registers a callback invoked after every message, in order.
func WithObserver(fn func(Result)) Option {
	return func(n *Dispatcher) {
		n.observer = fn
	}
}

// Dispatcher sends assignment emails through an email.EmailSender.
// It is not safe for concurrent use.
type Dispatcher struct {
	sender   email.EmailSender
	delay    time.Duration
	tag      string
	log      *slog.Logger
	observer func(Result)
}

// New returns a Dispatcher using sender.
func New(sender email.EmailSender, opts ...Option) *Dispatcher {
	n := &Dispatcher{
		sender: sender,
		delay:  DefaultDelay,
		tag:    DefaultTag,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.log = n.log.With(logger.Component("notify"))
	return n
}

// Message builds the email for one pairing without sending it.
func (n *Dispatcher) Message(ctx context.Context, p santa.Pairing) (email.SendEmailParams, error) {
	html, err := templates.Render(ctx, templates.Assignment(p.Giver.Name, p.Receiver.Name))
	if err != nil {
		return email.SendEmailParams{}, fmt.Errorf("render email for %s: %w", p.Giver.Name, err)
	}
	text, err := templates.PlainText(html)
	if err != nil {
		return email.SendEmailParams{}, fmt.Errorf("extract text for %s: %w", p.Giver.Name, err)
	}

	params := email.SendEmailParams{
		SendTo:   p.Giver.Email,
		Subject:  templates.Subject,
		BodyHTML: html,
		BodyText: text,
		Tag:      n.tag,
	}
	if runID := logger.RunIDFromContext(ctx); runID != "" {
		params.Metadata = map[string]string{"run_id": runID}
	}
	return params, nil
}

// Send emails a single giver.
func (n *Dispatcher) Send(ctx context.Context, p santa.Pairing) Result {
	res := Result{Santa: p.Giver.Name, Email: p.Giver.Email}

	params, err := n.Message(ctx, p)
	if err == nil {
		err = n.sender.SendEmail(ctx, params)
	}
	res.Err = err

	if err != nil {
		n.log.WarnContext(ctx, "assignment email failed",
			logger.Giver(p.Giver.Name), logger.Email(p.Giver.Email), logger.Error(err))
	} else {
		n.log.InfoContext(ctx, "assignment email sent",
			logger.Giver(p.Giver.Name), logger.Email(p.Giver.Email))
	}
	return res
}

// SendAll emails every giver in assignment order. Per-message failures are
// recorded in the Report; the returned error is non-nil only when ctx ends the
// run early, in which case the Report covers the messages attempted so far.
func (n *Dispatcher) SendAll(ctx context.Context, assignment santa.Assignment) (Report, error) {
	limit := rate.Inf
	if n.delay > 0 {
		limit = rate.Every(n.delay)
	}
	limiter := rate.NewLimiter(limit, 1)

	start := time.Now()
	report := Report{Results: make([]Result, 0, len(assignment))}
	for _, p := range assignment {
		if err := limiter.Wait(ctx); err != nil {
			return report, fmt.Errorf("email run interrupted after %d of %d: %w",
				report.Total(), len(assignment), contextError(ctx, err))
		}

		res := n.Send(ctx, p)
		report.Results = append(report.Results, res)
		if res.Success() {
			report.Sent++
		} else {
			report.Failed++
		}
		if n.observer != nil {
			n.observer(res)
		}
	}

	n.log.InfoContext(ctx, "email run finished",
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		logger.Duration(time.Since(start)),
	)
	return report, nil
}

// contextError prefers ctx.Err so callers can match context.Canceled and
// context.DeadlineExceeded; rate.Limiter reports a would-exceed-deadline
// condition with its own error before the deadline passes.
func contextError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
