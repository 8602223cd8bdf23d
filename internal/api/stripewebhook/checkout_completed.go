package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"rategate-backend/internal/domain/billing"
	"rategate-backend/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/subscription"
)

func (h *Handler) handleCheckoutSessionCompleted(c *gin.Context, session *stripe.CheckoutSession) error {
	ctx := c.Request.Context()

	// Fetch full session with expansions
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("subscription"),
				stripe.String("customer"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	if fullSession.Subscription == nil || fullSession.Subscription.ID == "" {
		return errors.New("checkout session missing subscription")
	}
	stripeSubID := fullSession.Subscription.ID

	subData, err := subscription.Get(stripeSubID, nil)
	if err != nil || subData == nil || subData.Items == nil || len(subData.Items.Data) == 0 || subData.Items.Data[0].Price == nil {
		return fmt.Errorf("failed to fetch subscription items: %w", err)
	}

	// Identify user: metadata.user_id preferred, else ClientReferenceID
	userID, err := userIDFromSubscriptionOrRef(subData, fullSession.ClientReferenceID)
	if err != nil {
		return err
	}

	sub, err := h.subs.FindByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub == nil {
		// acknowledge to avoid Stripe retries if the account is gone
		return nil
	}

	// Map Stripe price -> Plan
	priceID := subData.Items.Data[0].Price.ID
	plan, err := h.plans.FindByStripePriceID(ctx, priceID)
	if err != nil || plan == nil {
		return fmt.Errorf("plan not found for stripe price_id=%s: %w", priceID, err)
	}

	periodEnd := time.Unix(subData.CurrentPeriodEnd, 0)

	updates := map[string]interface{}{
		"plan_id":                plan.ID,
		"status":                 subscriptions.NormalizeStatus(string(subData.Status)),
		"stripe_subscription_id": stripeSubID,
		"current_period_end":     periodEnd,
		"trial_start_at":         nil,
		"trial_end_at":           nil,
	}

	if fullSession.Customer != nil && fullSession.Customer.ID != "" {
		updates["stripe_customer_id"] = fullSession.Customer.ID
	}

	// Cancel a stale subscription if the account somehow has two
	if sub.StripeSubscriptionID != nil && *sub.StripeSubscriptionID != "" && *sub.StripeSubscriptionID != stripeSubID {
		_, _ = subscription.Cancel(*sub.StripeSubscriptionID, nil)
	}

	if err := h.subs.UpdateFields(ctx, sub.ID, updates); err != nil {
		return fmt.Errorf("failed to update subscription after checkout: %w", err)
	}

	h.recordPayment(c, fullSession, plan.ID, userID, stripeSubID)

	return nil
}

func (h *Handler) recordPayment(c *gin.Context, session *stripe.CheckoutSession, planID, userID uint, stripeSubID string) {
	amount := float64(session.AmountTotal) / 100.0
	payment := &billing.Payment{
		UserID:               userID,
		PlanID:               &planID,
		StripeSessionID:      session.ID,
		StripeSubscriptionID: &stripeSubID,
		AmountEUR:            amount,
		Status:               "paid",
	}
	// best effort; the webhook must still be acknowledged if this fails
	_ = h.payments.Create(c.Request.Context(), payment)
}

func userIDFromSubscriptionOrRef(sub *stripe.Subscription, clientRef string) (uint, error) {
	userIDStr := ""
	if sub.Metadata != nil {
		userIDStr = sub.Metadata["user_id"]
	}
	if userIDStr == "" {
		userIDStr = clientRef
	}
	if userIDStr == "" {
		return 0, errors.New("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id %q: %w", userIDStr, err)
	}
	return uint(uid64), nil
}
