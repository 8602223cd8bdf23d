package dashboard

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"rategate-backend/config"
	"rategate-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	users    *repository.UserRepo
	tenants  *repository.TenantRepo
	subs     *repository.SubscriptionRepo
	feedback *repository.FeedbackRepo
}

func NewHandler(users *repository.UserRepo, tenants *repository.TenantRepo, subs *repository.SubscriptionRepo, fb *repository.FeedbackRepo) *Handler {
	return &Handler{users: users, tenants: tenants, subs: subs, feedback: fb}
}

// GET /me
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ctx := c.Request.Context()

	user, err := h.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	sub, err := h.subs.FindByUserID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}

	tenant, err := h.tenants.FindByOwner(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load business"})
		return
	}

	now := time.Now()

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			Lastname:   user.Lastname,
			Role:       user.Role,
			IsVerified: user.IsVerified,
		},
		Billing: buildBillingDTO(now, sub),
	}

	if tenant != nil {
		unread, _ := h.feedback.CountUnread(ctx, tenant.ID)
		resp.Business = &TenantDTO{
			ID:              tenant.ID,
			DisplayName:     tenant.DisplayName,
			Slug:            tenant.Slug,
			PublicURL:       publicURL(tenant.Slug),
			GooglePlaceID:   tenant.GooglePlaceID,
			GoogleReviewURL: tenant.GoogleReviewURL,
			LogoURL:         tenant.LogoURL,
			UnreadFeedback:  unread,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GET /feedback
func (h *Handler) ListFeedback(c *gin.Context) {
	tenant, ok := h.ownTenant(c)
	if !ok {
		return
	}

	rows, err := h.feedback.ListByTenant(c.Request.Context(), tenant.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feedback"})
		return
	}

	out := make([]FeedbackDTO, 0, len(rows))
	for _, f := range rows {
		out = append(out, FeedbackDTO{
			ID:             f.ID,
			Rating:         f.Rating,
			Comment:        f.Comment,
			VisitorName:    f.VisitorName,
			VisitorContact: f.VisitorContact,
			Read:           f.Read,
			CreatedAt:      f.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"feedback": out})
}

// PATCH /feedback/:id/read
func (h *Handler) SetFeedbackRead(c *gin.Context) {
	tenant, ok := h.ownTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback id"})
		return
	}

	var body struct {
		Read bool `json:"read"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.feedback.SetRead(c.Request.Context(), tenant.ID, uint(id), body.Read); err != nil {
		if repository.NotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback updated"})
}

// DELETE /feedback/:id
func (h *Handler) DeleteFeedback(c *gin.Context) {
	tenant, ok := h.ownTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback id"})
		return
	}

	if err := h.feedback.Delete(c.Request.Context(), tenant.ID, uint(id)); err != nil {
		if repository.NotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted"})
}

// PUT /business
func (h *Handler) UpdateBusiness(c *gin.Context) {
	tenant, ok := h.ownTenant(c)
	if !ok {
		return
	}

	var body struct {
		DisplayName string  `json:"display_name"`
		LogoURL     *string `json:"logo_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	body.DisplayName = strings.TrimSpace(body.DisplayName)
	if body.DisplayName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "display_name is required"})
		return
	}

	if err := h.tenants.UpdateProfile(c.Request.Context(), tenant.ID, body.DisplayName, body.LogoURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update business"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Business updated"})
}

func (h *Handler) ownTenant(c *gin.Context) (tenant *TenantRef, ok bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return nil, false
	}
	t, err := h.tenants.FindByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load business"})
		return nil, false
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complete onboarding first"})
		return nil, false
	}
	return &TenantRef{ID: t.ID}, true
}

type TenantRef struct {
	ID uint
}

func publicURL(slug string) string {
	return config.APP_URL + "/p/" + slug
}
