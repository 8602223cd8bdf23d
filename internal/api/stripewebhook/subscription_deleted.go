package stripewebhooks

import (
	"time"

	"rategate-backend/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

func (h *Handler) handleSubscriptionDeleted(c *gin.Context, stripeSub *stripe.Subscription) error {
	if stripeSub.ID == "" {
		return nil
	}

	sub, err := h.resolveSubscription(c, stripeSub)
	if err != nil || sub == nil {
		return nil
	}

	periodEnd := time.Unix(stripeSub.CurrentPeriodEnd, 0)

	return h.subs.UpdateFields(c.Request.Context(), sub.ID, map[string]interface{}{
		"status":             subscriptions.NormalizeStatus(string(stripeSub.Status)),
		"current_period_end": periodEnd,
	})
}
