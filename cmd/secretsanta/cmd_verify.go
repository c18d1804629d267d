package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dundeezhang/secret-santa/pkg/config"
	"github.com/dundeezhang/secret-santa/pkg/verifier"
)

var errInvalidMatching = errors.New("invalid matching")

func newVerifyCmd(configOpts []config.Option) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that stored assignments are a valid Secret Santa matching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, configOpts)
			if err != nil {
				return err
			}

			l, err := a.ledger(cmd.Context(), input)
			if err != nil {
				return err
			}
			pairs, err := l.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("reading %s: %w", l.Location(), err)
			}

			report := verifier.Verify(pairs)
			printVerifyReport(a, report)
			if !report.Valid {
				return errInvalidMatching
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "result object key (default $LEDGER_KEY)")
	return cmd
}

func printVerifyReport(a *app, report verifier.Report) {
	a.println("Verifying Secret Santa matching...")
	a.println()
	for _, c := range report.Checks {
		if c.Passed {
			a.printf("✅ %s\n", c.Description)
		}
	}

	rule := strings.Repeat("=", 50)
	a.println()
	a.println(rule)
	if report.Valid {
		a.println("VALID MATCHING! All checks passed.")
		a.printf("   Total participants: %d\n", report.Total)
	} else {
		a.println("INVALID MATCHING! Issues found:")
		for _, c := range report.Failed() {
			a.printf("   ❌ %s\n", c.Detail)
		}
	}
	a.println(rule)
}
