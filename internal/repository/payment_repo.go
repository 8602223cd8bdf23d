package repository

import (
	"context"

	"rategate-backend/internal/domain/billing"

	"gorm.io/gorm"
)

type PaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// Create records a payment; duplicate webhook deliveries hit the unique
// stripe_session_id index and are ignored.
func (r *PaymentRepo) Create(ctx context.Context, p *billing.Payment) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if _, dup := uniqueViolation(err); dup {
		return nil
	}
	return err
}

func (r *PaymentRepo) ListByUser(ctx context.Context, userID uint) ([]billing.Payment, error) {
	var out []billing.Payment
	err := r.db.WithContext(ctx).Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PaymentRepo) ListAll(ctx context.Context) ([]billing.Payment, error) {
	var out []billing.Payment
	err := r.db.WithContext(ctx).Preload("User").Preload("Plan").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
