package repository

import (
	"context"
	"errors"

	"rategate-backend/internal/domain/tenants"

	"gorm.io/gorm"
)

type TenantRepo struct {
	db *gorm.DB
}

func NewTenantRepo(db *gorm.DB) *TenantRepo {
	return &TenantRepo{db: db}
}

// Create inserts the tenant. The unique indexes on slug, google_place_id
// and google_review_url are the authoritative conflict check; violations
// come back as tenants.ErrSlugTaken / *tenants.BindingConflict.
func (r *TenantRepo) Create(ctx context.Context, t *tenants.Tenant) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return translateTenantConflict(err)
	}
	return nil
}

func (r *TenantRepo) FindBySlug(ctx context.Context, slug string) (*tenants.Tenant, error) {
	var t tenants.Tenant
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TenantRepo) FindByPlaceID(ctx context.Context, placeID string) (*tenants.Tenant, error) {
	var t tenants.Tenant
	err := r.db.WithContext(ctx).Where("google_place_id = ?", placeID).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TenantRepo) FindByOwner(ctx context.Context, ownerID uint) (*tenants.Tenant, error) {
	var t tenants.Tenant
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TenantRepo) FindByID(ctx context.Context, id uint) (*tenants.Tenant, error) {
	var t tenants.Tenant
	err := r.db.WithContext(ctx).First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// UpdateProfile touches only the mutable presentation columns.
func (r *TenantRepo) UpdateProfile(ctx context.Context, id uint, displayName string, logoURL *string) error {
	return r.db.WithContext(ctx).Model(&tenants.Tenant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"display_name": displayName,
			"logo_url":     logoURL,
		}).Error
}

// RelinkPlace rewrites the Google Place binding. This is the explicit
// administrative re-link action; the binding is otherwise write-once.
// Conflicts come back typed, same as Create.
func (r *TenantRepo) RelinkPlace(ctx context.Context, id uint, placeID, reviewURL *string) error {
	err := r.db.WithContext(ctx).Model(&tenants.Tenant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"google_place_id":   placeID,
			"google_review_url": reviewURL,
		}).Error
	if err != nil {
		return translateTenantConflict(err)
	}
	return nil
}

func (r *TenantRepo) List(ctx context.Context) ([]tenants.Tenant, error) {
	var out []tenants.Tenant
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
