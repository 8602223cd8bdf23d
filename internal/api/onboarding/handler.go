package onboarding

import (
	"context"
	"net/http"
	"strings"

	"rategate-backend/internal/domain/tenants"

	"github.com/gin-gonic/gin"
)

// TenantStore is the slice of the tenant repository onboarding needs.
type TenantStore interface {
	tenants.Creator
	tenants.PlaceFinder
	FindByOwner(ctx context.Context, ownerID uint) (*tenants.Tenant, error)
}

type Handler struct {
	tenants TenantStore
	owners  tenants.OwnerContacts
}

func NewHandler(store TenantStore, owners tenants.OwnerContacts) *Handler {
	return &Handler{tenants: store, owners: owners}
}

// POST /onboarding/place-check
//
// Advisory pre-check before the registrant invests in the rest of the
// wizard. A hit is terminal: the business is already claimed and support
// has to untangle it. The masked contact gives the registrant a hint
// without leaking the full address.
func (h *Handler) PlaceCheck(c *gin.Context) {
	var body struct {
		PlaceID string `json:"place_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.PlaceID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid place_id"})
		return
	}

	check, err := tenants.CheckDuplicate(c.Request.Context(), h.tenants, h.owners, strings.TrimSpace(body.PlaceID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check registration"})
		return
	}

	c.JSON(http.StatusOK, check)
}

type completeRequest struct {
	BusinessName    string `json:"business_name"`
	GooglePlaceID   string `json:"google_place_id"`
	GoogleReviewURL string `json:"google_review_url"`
	LogoURL         string `json:"logo_url"`
}

// POST /onboarding/complete
//
// Creates the tenant. The slug is allocated inside the insert loop and the
// Google binding conflicts surface as a 409 naming the colliding field,
// since the pre-check alone cannot rule out a concurrent registration.
func (h *Handler) Complete(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.BusinessName = strings.TrimSpace(req.BusinessName)
	if req.BusinessName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "business_name is required"})
		return
	}

	existing, err := h.tenants.FindByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load account"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Onboarding already completed", "slug": existing.Slug})
		return
	}

	tenant := &tenants.Tenant{
		OwnerID:         &userID,
		DisplayName:     req.BusinessName,
		GooglePlaceID:   optional(req.GooglePlaceID),
		GoogleReviewURL: optional(req.GoogleReviewURL),
		LogoURL:         optional(req.LogoURL),
	}

	err = tenants.AllocateAndCreate(c.Request.Context(), h.tenants, tenant, req.BusinessName)
	if err != nil {
		if conflict, ok := tenants.AsBindingConflict(err); ok {
			c.JSON(http.StatusConflict, gin.H{
				"error": "This business is already registered",
				"field": conflict.Field,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create business"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"slug":          tenant.Slug,
		"business_name": tenant.DisplayName,
	})
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
