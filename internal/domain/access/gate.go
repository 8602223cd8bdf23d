package access

import (
	"context"
	"time"

	"rategate-backend/internal/domain/subscriptions"
	"rategate-backend/internal/domain/tenants"
)

// TenantBySlug resolves a tenant from its public slug; (nil, nil) if none.
type TenantBySlug interface {
	FindBySlug(ctx context.Context, slug string) (*tenants.Tenant, error)
}

// SubscriptionByOwner resolves the owner's subscription; (nil, nil) if none.
type SubscriptionByOwner interface {
	FindByUserID(ctx context.Context, userID uint) (*subscriptions.Subscription, error)
}

// Gate answers one question: may this tenant's public page be used right
// now. It is a pure read, evaluated fresh on every request and never
// cached, since webhooks can flip subscription state at any moment.
type Gate struct {
	Tenants       TenantBySlug
	Subscriptions SubscriptionByOwner
	Now           func() time.Time
}

func NewGate(t TenantBySlug, s SubscriptionByOwner) *Gate {
	return &Gate{Tenants: t, Subscriptions: s, Now: time.Now}
}

// IsAccessible returns false both for an unknown slug and for a denied
// subscription; the public handler renders the same neutral message for
// both so billing state never leaks to anonymous visitors.
func (g *Gate) IsAccessible(ctx context.Context, slug string) (bool, error) {
	_, ok, err := g.Resolve(ctx, slug)
	return ok, err
}

// Resolve is IsAccessible plus the tenant itself, for handlers that need
// the record when access is granted.
func (g *Gate) Resolve(ctx context.Context, slug string) (*tenants.Tenant, bool, error) {
	tenant, err := g.Tenants.FindBySlug(ctx, slug)
	if err != nil {
		return nil, false, err
	}
	if tenant == nil {
		return nil, false, nil
	}

	// Demo tenants have no owner subscription linkage at all.
	if tenant.Demo() {
		return tenant, true, nil
	}

	sub, err := g.Subscriptions.FindByUserID(ctx, *tenant.OwnerID)
	if err != nil {
		return nil, false, err
	}
	if !subscriptions.Accessible(g.Now(), sub) {
		return nil, false, nil
	}
	return tenant, true, nil
}
