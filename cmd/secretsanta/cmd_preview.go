package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dundeezhang/secret-santa/pkg/config"
	"github.com/dundeezhang/secret-santa/pkg/ledger"
	"github.com/dundeezhang/secret-santa/pkg/notify"
	"github.com/dundeezhang/secret-santa/pkg/santa"
)

func newPreviewCmd(configOpts []config.Option) *cobra.Command {
	var santaName, receiverName, out string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the assignment email to a file without sending it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, configOpts)
			if err != nil {
				return err
			}

			pairing := santa.Pairing{
				Giver:    santa.Participant{Name: santaName, Email: strings.ToLower(santaName) + "@example.com"},
				Receiver: santa.Participant{Name: receiverName, Email: strings.ToLower(receiverName) + "@example.com"},
			}
			msg, err := notify.New(nil).Message(cmd.Context(), pairing)
			if err != nil {
				return err
			}

			store, err := ledger.NewLocalStore(filepath.Dir(out))
			if err != nil {
				return err
			}
			name := filepath.Base(out)
			if err := store.Put(cmd.Context(), name, []byte(msg.BodyHTML)); err != nil {
				return fmt.Errorf("writing preview: %w", err)
			}

			rule := strings.Repeat("=", 60)
			a.printf("Email preview saved to %s\n", store.Location(name))
			a.println("   Open this file in your browser to preview the email")
			a.println()
			a.println("Text version of email:")
			a.println(rule)
			a.println(msg.BodyText)
			a.println(rule)
			return nil
		},
	}

	cmd.Flags().StringVar(&santaName, "santa", "Dundee", "giver name shown in the preview")
	cmd.Flags().StringVar(&receiverName, "receiver", "John", "receiver name shown in the preview")
	cmd.Flags().StringVar(&out, "out", "email-preview.html", "file to write the HTML preview to")
	return cmd
}
