// Package email sends Secret Santa assignment emails through a transactional
// email provider.
//
// The package is built around the EmailSender interface so the provider can be
// swapped without touching the dispatcher:
//   - NewPostmarkClient delivers through Postmark
//   - NewDevSender writes HTML, text and JSON metadata files to a directory
//
// All implementations validate SendEmailParams before doing any work.
//
// # Usage
//
//	client, err := email.NewPostmarkClient(email.Config{
//	    PostmarkServerToken: "server-token",
//	    SenderEmail:         "santa@example.com",
//	})
//	if err != nil {
//	    return err
//	}
//
//	err = client.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "alice@example.com",
//	    Subject:  templates.Subject,
//	    BodyHTML: html,
//	    BodyText: text,
//	    Tag:      "secret-santa",
//	})
//
// # Error Handling
//
//   - ErrInvalidConfig: configuration validation failed
//   - ErrInvalidParams: email parameters validation failed
//   - ErrFailedToSendEmail: delivery failed, joined with the provider error
package email
