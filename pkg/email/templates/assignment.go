// Package templates holds the Secret Santa email templates.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Subject is the subject line of every assignment email.
const Subject = "Group Secret Santa Assignment"

// Assignment renders the email telling santa who they are buying for.
// Names are HTML-escaped.
func Assignment(santa, receiver string) templ.Component {
	return Layout(Subject, assignmentBody(santa, receiver))
}

func assignmentBody(santa, receiver string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<body style="margin:0;padding:0;background-color:#f6f1eb;font-family:Georgia,'Times New Roman',serif;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="padding:32px 0;">
<tr><td align="center">
<table role="presentation" width="560" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;border-top:6px solid #b3202a;">
<tr><td style="padding:32px 40px;color:#2b2b2b;font-size:16px;line-height:1.6;">
<h1 style="margin:0 0 16px;color:#b3202a;font-size:24px;">Ho ho ho, `+templ.EscapeString(santa)+`!</h1>
<p style="margin:0 0 16px;">The names have been drawn for this year&#39;s Secret Santa.</p>
<p style="margin:0 0 8px;">You are the Secret Santa for:</p>
<p style="margin:0 0 24px;font-size:28px;font-weight:bold;color:#1f6b3a;">`+templ.EscapeString(receiver)+`</p>
<p style="margin:0 0 16px;">Keep it a secret &amp; have fun picking a gift!</p>
<p style="margin:0;color:#777777;font-size:13px;">This message was sent automatically. Please do not share it with the rest of the group.</p>
</td></tr>
</table>
</td></tr>
</table>
</body>
`)
		return err
	})
}

// Layout wraps body, which renders the <body> element, in a complete HTML document.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>`+templ.EscapeString(title)+`</title>
</head>
`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</html>\n")
		return err
	})
}
