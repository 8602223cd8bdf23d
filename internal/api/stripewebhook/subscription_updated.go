package stripewebhooks

import (
	"fmt"
	"strconv"
	"time"

	"rategate-backend/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

func (h *Handler) handleSubscriptionUpdated(c *gin.Context, stripeSub *stripe.Subscription) error {
	if stripeSub.ID == "" || stripeSub.Items == nil || len(stripeSub.Items.Data) == 0 || stripeSub.Items.Data[0].Price == nil {
		return fmt.Errorf("subscription missing id/items/price")
	}

	ctx := c.Request.Context()

	activePriceID := stripeSub.Items.Data[0].Price.ID
	periodEnd := time.Unix(stripeSub.CurrentPeriodEnd, 0)
	status := subscriptions.NormalizeStatus(string(stripeSub.Status))

	sub, err := h.resolveSubscription(c, stripeSub)
	if err != nil || sub == nil {
		// acknowledge to avoid Stripe retries if the account is gone
		return nil
	}

	updates := map[string]interface{}{
		"status":                 status,
		"stripe_subscription_id": stripeSub.ID,
		"current_period_end":     periodEnd,
	}

	if plan, err := h.plans.FindByStripePriceID(ctx, activePriceID); err == nil && plan != nil {
		updates["plan_id"] = plan.ID
	}

	return h.subs.UpdateFields(ctx, sub.ID, updates)
}

func (h *Handler) resolveSubscription(c *gin.Context, stripeSub *stripe.Subscription) (*subscriptions.Subscription, error) {
	ctx := c.Request.Context()

	if userID := userIDFromMetadata(stripeSub.Metadata); userID != 0 {
		if sub, err := h.subs.FindByUserID(ctx, userID); err == nil && sub != nil {
			return sub, nil
		}
	}
	return h.subs.FindByStripeSubscriptionID(ctx, stripeSub.ID)
}

func userIDFromMetadata(md map[string]string) uint {
	if md == nil {
		return 0
	}
	s := md["user_id"]
	if s == "" {
		return 0
	}
	uid, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(uid)
}
