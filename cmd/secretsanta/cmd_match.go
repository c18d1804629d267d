package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dundeezhang/secret-santa/pkg/config"
	"github.com/dundeezhang/secret-santa/pkg/logger"
	"github.com/dundeezhang/secret-santa/pkg/notify"
	"github.com/dundeezhang/secret-santa/pkg/roster"
	"github.com/dundeezhang/secret-santa/pkg/santa"
)

type matchFlags struct {
	roster      string
	output      string
	noEmail     bool
	seed        uint64
	maxAttempts int
}

func newMatchCmd(configOpts []config.Option) *cobra.Command {
	var f matchFlags
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Draw assignments, save them and email every giver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, configOpts)
			if err != nil {
				return err
			}
			return runMatch(cmd, a, f)
		},
	}

	cmd.Flags().StringVar(&f.roster, "roster", "", "participant file, text or YAML (default $ROSTER_PATH)")
	cmd.Flags().StringVar(&f.output, "output", "", "result object key (default $LEDGER_KEY)")
	cmd.Flags().BoolVar(&f.noEmail, "no-email", false, "skip sending emails")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for a reproducible draw (0 draws from crypto/rand)")
	cmd.Flags().IntVar(&f.maxAttempts, "max-attempts", santa.DefaultMaxAttempts, "draws to try before giving up")
	return cmd
}

func runMatch(cmd *cobra.Command, a *app, f matchFlags) error {
	runID := uuid.NewString()
	ctx := logger.WithRunID(cmd.Context(), runID)

	a.println("Secret Santa Matcher")
	a.println()

	rosterPath := f.roster
	if rosterPath == "" {
		rosterPath = a.cfg.RosterPath
	}
	participants, err := roster.Load(rosterPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", rosterPath, err)
	}

	a.printf("Found %d participants:\n", len(participants))
	for _, p := range participants {
		a.printf("   - %s (%s)\n", p.Name, p.Email)
	}
	a.println()

	opts := []santa.Option{santa.WithMaxAttempts(f.maxAttempts)}
	if f.seed != 0 {
		opts = append(opts, santa.WithRand(rand.New(rand.NewPCG(f.seed, f.seed))))
	}
	matcher := santa.NewMatcher(opts...)
	assignment, err := matcher.Generate(participants)
	if err != nil {
		a.log.ErrorContext(ctx, "matching failed",
			logger.Participants(len(participants)), logger.Attempts(matcher.Attempts()), logger.Error(err))
		return err
	}
	a.log.InfoContext(ctx, "matching generated",
		logger.Participants(len(participants)), logger.Attempts(matcher.Attempts()))

	l, err := a.ledger(ctx, f.output)
	if err != nil {
		return err
	}
	if err := l.Save(ctx, assignment.Names()); err != nil {
		return fmt.Errorf("writing %s: %w", l.Location(), err)
	}
	a.log.InfoContext(ctx, "pairings saved", logger.Location(l.Location()))

	a.printf("Secret Santa pairings written to %s\n", l.Location())
	a.printf("Generated %d pairings\n", len(assignment))
	a.println()
	a.println("Each person has been assigned a unique receiver.")

	if f.noEmail || !a.cfg.SendEmails {
		a.println()
		a.println("Email sending disabled.")
		return nil
	}

	sender, reason, err := a.sender()
	if err != nil {
		return err
	}
	if sender == nil {
		a.println()
		a.println(reason)
		return nil
	}

	a.println()
	a.println("Sending Secret Santa emails...")
	a.println()

	d := notify.New(sender,
		notify.WithDelay(a.cfg.EmailDelay),
		notify.WithTag(a.cfg.EmailTag),
		notify.WithLogger(a.log),
		notify.WithObserver(func(r notify.Result) {
			if r.Success() {
				a.printf("   %s (%s): ✅ Sent!\n", r.Santa, r.Email)
			} else {
				a.printf("   %s (%s): ❌ Failed: %v\n", r.Santa, r.Email, r.Err)
			}
		}),
	)
	report, err := d.SendAll(ctx, assignment)
	printEmailSummary(a, report)
	if err != nil {
		return fmt.Errorf("%w (pairings have been saved to %s)", err, l.Location())
	}
	if report.Failed == 0 {
		a.println()
		a.println("All Secret Santa emails have been sent!")
	}
	return nil
}

func printEmailSummary(a *app, report notify.Report) {
	rule := strings.Repeat("=", 50)
	a.println()
	a.println(rule)
	a.println("Email Summary:")
	a.printf("   ✅ Sent: %d/%d\n", report.Sent, report.Total())
	if report.Failed > 0 {
		a.printf("   ❌ Failed: %d/%d\n", report.Failed, report.Total())
	}
	a.println(rule)
}
