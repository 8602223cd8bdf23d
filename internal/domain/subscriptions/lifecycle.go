package subscriptions

import (
	"strings"
	"time"
)

const (
	StatusTrialing = "trialing"
	StatusActive   = "active"
	StatusPastDue  = "past_due"
	StatusCanceled = "canceled"
	StatusNone     = "none"
)

// NormalizeStatus maps Stripe's subscription statuses onto the four states
// the product reasons about. Used ONLY for the stored subscription status.
func NormalizeStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "":
		return StatusNone
	case "active":
		return StatusActive
	case "trialing":
		return StatusTrialing
	case "past_due", "unpaid":
		return StatusPastDue
	case "canceled", "incomplete_expired":
		return StatusCanceled
	default:
		return strings.TrimSpace(s)
	}
}

// DaysRemaining reports whole trial days left, rounded up, never negative.
// A subscription past its trial end reports 0, not a negative count.
func DaysRemaining(now time.Time, sub *Subscription) int {
	if sub == nil || sub.TrialEndAt == nil {
		return 0
	}
	left := sub.TrialEndAt.Sub(now)
	if left <= 0 {
		return 0
	}
	days := int(left / (24 * time.Hour))
	if left%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// Accessible decides whether the owner's public page may be used right now.
// Active always passes; trialing passes only while the trial end is strictly
// in the future. Everything else (past_due, canceled, expired trial) denies.
func Accessible(now time.Time, sub *Subscription) bool {
	if sub == nil {
		return false
	}
	switch NormalizeStatus(sub.Status) {
	case StatusActive:
		return true
	case StatusTrialing:
		return sub.TrialEndAt != nil && now.Before(*sub.TrialEndAt)
	default:
		return false
	}
}
