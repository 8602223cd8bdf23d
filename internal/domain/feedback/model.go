package feedback

import (
	"time"

	"rategate-backend/internal/domain/tenants"
)

// Feedback is one visitor submission. Immutable after creation except for
// the Read flag (dashboard) and tenant-initiated deletion.
type Feedback struct {
	ID       uint           `gorm:"primaryKey"`
	TenantID uint           `gorm:"not null;index:idx_feedback_tenant_id"`
	Tenant   tenants.Tenant `gorm:"constraint:OnDelete:CASCADE"`

	Rating  int     `gorm:"not null"`
	Comment *string `gorm:"type:text"`

	VisitorName    *string
	VisitorContact *string

	Read bool `gorm:"not null;default:false"`

	CreatedAt time.Time
}
