package dashboard

import (
	"time"

	"rategate-backend/internal/domain/subscriptions"
)

func buildBillingDTO(now time.Time, sub *subscriptions.Subscription) BillingDTO {
	if sub == nil {
		return BillingDTO{Status: subscriptions.StatusNone}
	}

	dto := BillingDTO{
		Status: subscriptions.NormalizeStatus(sub.Status),
		Plan:   buildPlanDTO(sub),
	}

	if sub.TrialEndAt != nil {
		dto.Trial = &TrialDTO{
			StartsAt: sub.TrialStartAt,
			EndsAt:   sub.TrialEndAt,
			DaysLeft: subscriptions.DaysRemaining(now, sub),
		}
	}

	if sub.StripeSubscriptionID != nil && *sub.StripeSubscriptionID != "" {
		dto.Subscription = &SubscriptionDTO{
			Status:               subscriptions.NormalizeStatus(sub.Status),
			CurrentPeriodEnd:     sub.CurrentPeriodEnd,
			StripeSubscriptionID: sub.StripeSubscriptionID,
		}
	}

	return dto
}

func buildPlanDTO(sub *subscriptions.Subscription) *PlanDTO {
	if sub.Plan == nil {
		return nil
	}
	return &PlanDTO{
		ID:            sub.Plan.ID,
		Key:           sub.Plan.Name,
		Interval:      sub.Plan.Interval,
		PriceEUR:      sub.Plan.PriceEUR,
		StripePriceID: sub.Plan.StripePriceID,
	}
}
