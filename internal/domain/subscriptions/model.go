package subscriptions

import (
	"time"

	"rategate-backend/internal/domain/plans"
	"rategate-backend/internal/domain/users"
)

// Subscription is one-to-one with the owner account. Status transitions are
// driven by Stripe webhooks; local code reads, it does not infer.
type Subscription struct {
	ID     uint       `gorm:"primaryKey"`
	UserID uint       `gorm:"not null;uniqueIndex:idx_subscriptions_user_id"`
	User   users.User `gorm:"constraint:OnDelete:CASCADE"`

	Status string `gorm:"type:varchar(20);not null;default:'trialing'"`

	PlanID *uint
	Plan   *plans.Plan

	TrialStartAt     *time.Time `gorm:"column:trial_start_at"`
	TrialEndAt       *time.Time `gorm:"column:trial_end_at"`
	CurrentPeriodEnd *time.Time `gorm:"column:current_period_end"`

	StripeCustomerID     *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_subscriptions_stripe_customer_id"`
	StripeSubscriptionID *string `gorm:"column:stripe_subscription_id;uniqueIndex:idx_subscriptions_stripe_subscription_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
