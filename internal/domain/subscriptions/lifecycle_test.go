package subscriptions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"active", StatusActive},
		{"trialing", StatusTrialing},
		{"past_due", StatusPastDue},
		{"unpaid", StatusPastDue},
		{"canceled", StatusCanceled},
		{"incomplete_expired", StatusCanceled},
		{"", StatusNone},
		{"  active  ", StatusActive},
		{"incomplete", "incomplete"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeStatus(tc.in), "input %q", tc.in)
	}
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	cases := []struct {
		name string
		sub  *Subscription
		want int
	}{
		{"nil subscription", nil, 0},
		{"no trial end set", &Subscription{}, 0},
		{"exactly two days left", &Subscription{TrialEndAt: at(48 * time.Hour)}, 2},
		{"partial day rounds up", &Subscription{TrialEndAt: at(36 * time.Hour)}, 2},
		{"one minute left counts as a day", &Subscription{TrialEndAt: at(time.Minute)}, 1},
		{"ends right now", &Subscription{TrialEndAt: at(0)}, 0},
		{"already expired", &Subscription{TrialEndAt: at(-24 * time.Hour)}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysRemaining(now, tc.sub))
		})
	}
}

func TestAccessible(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-24 * time.Hour)

	cases := []struct {
		name string
		sub  *Subscription
		want bool
	}{
		{"nil subscription", nil, false},
		{"active", &Subscription{Status: StatusActive}, true},
		{"active ignores stale trial end", &Subscription{Status: StatusActive, TrialEndAt: &past}, true},
		{"trialing with future end", &Subscription{Status: StatusTrialing, TrialEndAt: &future}, true},
		{"trialing expired", &Subscription{Status: StatusTrialing, TrialEndAt: &past}, false},
		{"trialing ending exactly now", &Subscription{Status: StatusTrialing, TrialEndAt: &now}, false},
		{"trialing without end date", &Subscription{Status: StatusTrialing}, false},
		{"past_due", &Subscription{Status: StatusPastDue}, false},
		{"unpaid normalizes to past_due", &Subscription{Status: "unpaid"}, false},
		{"canceled", &Subscription{Status: StatusCanceled}, false},
		{"empty status", &Subscription{Status: ""}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Accessible(now, tc.sub))
		})
	}
}
