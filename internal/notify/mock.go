package notify

import (
	"context"
	"log"
)

// MockMailer logs instead of sending. Used when RESEND_API_KEY is unset.
type MockMailer struct{}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(ctx context.Context, to, subject, html string) error {
	log.Printf("📨 [MockMailer] to=%s subject=%q", to, subject)
	return nil
}
