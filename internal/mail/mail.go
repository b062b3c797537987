package mail

import "context"

// Sender delivers a notification message to a single recipient with both
// plain-text and html bodies.
type Sender interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}
