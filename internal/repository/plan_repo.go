package repository

import (
	"context"
	"errors"

	"rategate-backend/internal/domain/plans"

	"gorm.io/gorm"
)

type PlanRepo struct {
	db *gorm.DB
}

func NewPlanRepo(db *gorm.DB) *PlanRepo {
	return &PlanRepo{db: db}
}

func (r *PlanRepo) FindByStripePriceID(ctx context.Context, priceID string) (*plans.Plan, error) {
	var p plans.Plan
	err := r.db.WithContext(ctx).Where("stripe_price_id = ?", priceID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PlanRepo) List(ctx context.Context) ([]plans.Plan, error) {
	var out []plans.Plan
	if err := r.db.WithContext(ctx).Order("price_eur ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PlanRepo) Create(ctx context.Context, p *plans.Plan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PlanRepo) Save(ctx context.Context, p *plans.Plan) error {
	return r.db.WithContext(ctx).Save(p).Error
}
