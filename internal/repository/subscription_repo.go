package repository

import (
	"context"
	"errors"

	"rategate-backend/internal/domain/subscriptions"

	"gorm.io/gorm"
)

type SubscriptionRepo struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

func (r *SubscriptionRepo) Create(ctx context.Context, s *subscriptions.Subscription) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubscriptionRepo) FindByUserID(ctx context.Context, userID uint) (*subscriptions.Subscription, error) {
	var s subscriptions.Subscription
	err := r.db.WithContext(ctx).Preload("Plan").Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SubscriptionRepo) FindByStripeSubscriptionID(ctx context.Context, stripeSubID string) (*subscriptions.Subscription, error) {
	var s subscriptions.Subscription
	err := r.db.WithContext(ctx).Where("stripe_subscription_id = ?", stripeSubID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// UpdateFields applies a partial column update, used by the Stripe webhook
// handlers which receive authoritative state transitions.
func (r *SubscriptionRepo) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&subscriptions.Subscription{}).
		Where("id = ?", id).
		Updates(fields).Error
}
