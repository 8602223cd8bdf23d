package tenants

import (
	"time"

	"rategate-backend/internal/domain/users"
)

// Tenant is one registered business. Slug and the Google Place binding are
// write-once in normal operation; only the admin re-link action touches the
// binding afterwards. A nil OwnerID marks a demo tenant: no subscription is
// linked and the public page is always accessible.
type Tenant struct {
	ID      uint        `gorm:"primaryKey"`
	OwnerID *uint       `gorm:"uniqueIndex:idx_tenants_owner_id"`
	Owner   *users.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`

	DisplayName string `gorm:"not null"`
	Slug        string `gorm:"not null;uniqueIndex:idx_tenants_slug"`

	GooglePlaceID   *string `gorm:"column:google_place_id;uniqueIndex:idx_tenants_google_place_id"`
	GoogleReviewURL *string `gorm:"column:google_review_url;uniqueIndex:idx_tenants_google_review_url"`

	LogoURL *string `gorm:"column:logo_url"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Demo reports whether this tenant has no owner account, and therefore no
// subscription to consult.
func (t *Tenant) Demo() bool {
	return t.OwnerID == nil
}
