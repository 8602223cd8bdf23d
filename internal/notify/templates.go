package notify

import (
	"fmt"
	"html"
)

func VerificationEmail(link string) (subject, body string) {
	subject = "Verify Your Account"
	body = fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
			<h2 style="color: #333;">Welcome to RateGate!</h2>
			<p>Click the button below to verify your account:</p>
			<a href="%s" style="display: inline-block; background: #6366f1; color: white; padding: 12px 24px; border-radius: 8px; text-decoration: none; font-weight: 600;">
				Verify Account
			</a>
			<p style="color: #aaa; font-size: 12px;">
				If you didn't create an account, you can safely ignore this email.
			</p>
		</div>`, link)
	return subject, body
}

func PasswordResetEmail(link string) (subject, body string) {
	subject = "Reset Your Password"
	body = fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
			<h2 style="color: #333;">Password Reset</h2>
			<p>Click the button below to choose a new password:</p>
			<a href="%s" style="display: inline-block; background: #6366f1; color: white; padding: 12px 24px; border-radius: 8px; text-decoration: none; font-weight: 600;">
				Reset Password
			</a>
			<p style="color: #888; font-size: 14px; margin-top: 16px;">
				This link expires in 1 hour and can only be used once.
			</p>
		</div>`, link)
	return subject, body
}

// DetractorAlertEmail tells the owner a low rating was captured privately.
func DetractorAlertEmail(businessName string, rating int, comment string) (subject, body string) {
	subject = fmt.Sprintf("New private feedback for %s (%d★)", businessName, rating)
	body = fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
			<h2 style="color: #333;">New private feedback</h2>
			<p><strong>%s</strong> received a %d-star rating.</p>
			<blockquote style="border-left: 3px solid #ddd; margin: 16px 0; padding: 8px 16px; color: #555;">%s</blockquote>
			<p style="color: #888; font-size: 14px;">
				This feedback stays private. It was not posted publicly.
			</p>
		</div>`, html.EscapeString(businessName), rating, html.EscapeString(comment))
	return subject, body
}
