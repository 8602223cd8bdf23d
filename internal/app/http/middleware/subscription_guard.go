package middleware

import (
	"context"
	"net/http"
	"time"

	"rategate-backend/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

// SubscriptionSource is satisfied by repository.SubscriptionRepo.
type SubscriptionSource interface {
	FindByUserID(ctx context.Context, userID uint) (*subscriptions.Subscription, error)
}

// RequireActiveSubscription protects endpoints reserved for paying (or
// trialing) owners. Uses the same predicate as the public access gate so
// trial-expiry arithmetic lives in one place.
func RequireActiveSubscription(subs SubscriptionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
			return
		}

		sub, err := subs.FindByUserID(c.Request.Context(), userID)
		if err != nil || sub == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Subscription not found"})
			return
		}

		if !subscriptions.Accessible(time.Now(), sub) {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{"error": "Your subscription is not active"})
			return
		}

		c.Next()
	}
}
