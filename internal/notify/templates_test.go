package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetractorAlertEmail(t *testing.T) {
	subject, body := DetractorAlertEmail("Padaria Sol", 2, "waited 40 minutes")

	assert.Contains(t, subject, "Padaria Sol")
	assert.Contains(t, subject, "2")
	assert.Contains(t, body, "waited 40 minutes")
}

func TestDetractorAlertEmail_EscapesVisitorText(t *testing.T) {
	_, body := DetractorAlertEmail("Padaria <b>Sol</b>", 1, `<script>alert("x")</script>`)

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "<b>Sol</b>")
}

func TestVerificationAndResetEmailsCarryLink(t *testing.T) {
	_, verify := VerificationEmail("https://app.example.com/verify?token=abc")
	_, reset := PasswordResetEmail("https://app.example.com/reset?token=def")

	assert.Contains(t, verify, "https://app.example.com/verify?token=abc")
	assert.Contains(t, reset, "https://app.example.com/reset?token=def")
}
