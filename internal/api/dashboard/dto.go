package dashboard

import "time"

type MeResponse struct {
	User     UserDTO     `json:"user"`
	Billing  BillingDTO  `json:"billing"`
	Business *TenantDTO  `json:"business"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Status       string           `json:"status"`
	Plan         *PlanDTO         `json:"plan"`
	Trial        *TrialDTO        `json:"trial"`
	Subscription *SubscriptionDTO `json:"subscription"`
}

type PlanDTO struct {
	ID            uint    `json:"id"`
	Key           string  `json:"key"`
	Interval      string  `json:"interval"`
	PriceEUR      float64 `json:"price_eur"`
	StripePriceID string  `json:"stripe_price_id"`
}

type TrialDTO struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	DaysLeft int        `json:"days_left"`
}

type SubscriptionDTO struct {
	Status               string     `json:"status"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id"`
}

/* ---------- BUSINESS ---------- */

type TenantDTO struct {
	ID              uint    `json:"id"`
	DisplayName     string  `json:"display_name"`
	Slug            string  `json:"slug"`
	PublicURL       string  `json:"public_url"`
	GooglePlaceID   *string `json:"google_place_id"`
	GoogleReviewURL *string `json:"google_review_url"`
	LogoURL         *string `json:"logo_url"`
	UnreadFeedback  int64   `json:"unread_feedback"`
}

/* ---------- FEEDBACK ---------- */

type FeedbackDTO struct {
	ID             uint      `json:"id"`
	Rating         int       `json:"rating"`
	Comment        *string   `json:"comment"`
	VisitorName    *string   `json:"visitor_name"`
	VisitorContact *string   `json:"visitor_contact"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}
