package notify

import "context"

// Mailer is the outbound email port. The real implementation talks to
// Resend; tests and local development use the logging mock.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}
