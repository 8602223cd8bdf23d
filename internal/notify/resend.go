package notify

import (
	"context"

	"rategate-backend/config"

	"github.com/resend/resend-go/v2"
)

type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer() *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(config.RESEND_API_KEY),
		from:   config.EMAIL_FROM,
	}
}

func (m *ResendMailer) Send(ctx context.Context, to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	_, err := m.client.Emails.SendWithContext(ctx, params)
	return err
}
