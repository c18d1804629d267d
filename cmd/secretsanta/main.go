// Command secretsanta draws Secret Santa assignments, stores them, emails each
// giver their receiver, and verifies stored results.
//
// Usage:
//
//	secretsanta match   [--roster names.txt] [--output output.txt] [--no-email] [--seed N]
//	secretsanta verify  [--input output.txt]
//	secretsanta preview [--santa Dundee] [--receiver John] [--out email-preview.html]
//
// Configuration is read from the environment and a .env file; see Config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
