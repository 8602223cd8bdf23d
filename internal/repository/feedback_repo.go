package repository

import (
	"context"
	"errors"

	"rategate-backend/internal/domain/feedback"

	"gorm.io/gorm"
)

type FeedbackRepo struct {
	db *gorm.DB
}

func NewFeedbackRepo(db *gorm.DB) *FeedbackRepo {
	return &FeedbackRepo{db: db}
}

func (r *FeedbackRepo) Create(ctx context.Context, f *feedback.Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FeedbackRepo) ListByTenant(ctx context.Context, tenantID uint) ([]feedback.Feedback, error) {
	var out []feedback.Feedback
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FeedbackRepo) CountUnread(ctx context.Context, tenantID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&feedback.Feedback{}).
		Where("tenant_id = ? AND read = ?", tenantID, false).
		Count(&n).Error
	return n, err
}

// SetRead flips the one mutable flag a feedback row has.
func (r *FeedbackRepo) SetRead(ctx context.Context, tenantID, id uint, read bool) error {
	res := r.db.WithContext(ctx).Model(&feedback.Feedback{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("read", read)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FeedbackRepo) Delete(ctx context.Context, tenantID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&feedback.Feedback{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// NotFound reports whether err is the repository's missing-row error.
func NotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
