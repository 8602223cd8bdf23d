package admin

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"rategate-backend/database"
	"rategate-backend/internal/domain/billing"
	"rategate-backend/internal/domain/feedback"
	"rategate-backend/internal/domain/tenants"
	"rategate-backend/internal/domain/users"
	"rategate-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	users    *repository.UserRepo
	tenants  *repository.TenantRepo
	payments *repository.PaymentRepo
}

func NewHandler(users *repository.UserRepo, tenantRepo *repository.TenantRepo, payments *repository.PaymentRepo) *Handler {
	return &Handler{users: users, tenants: tenantRepo, payments: payments}
}

type AdminUser struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

type AdminTenant struct {
	ID            uint    `json:"id"`
	DisplayName   string  `json:"display_name"`
	Slug          string  `json:"slug"`
	OwnerID       *uint   `json:"owner_id"`
	Demo          bool    `json:"demo"`
	GooglePlaceID *string `json:"google_place_id"`
	CreatedAt     string  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers     int     `json:"total_users"`
	TotalTenants   int     `json:"total_tenants"`
	TotalFeedback  int     `json:"total_feedback"`
	TotalRevenue   float64 `json:"total_revenue"`
	RecentRevenue  float64 `json:"recent_revenue"`
	RecentFeedback int     `json:"recent_feedback"`
}

// GET /admin/dashboard
func (h *Handler) AdminDashboard(c *gin.Context) {
	var stats AdminStats

	var totalUsers, totalTenants, totalFeedback, recentFeedback int64
	var totalRevenue, recentRevenue float64

	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&tenants.Tenant{}).Count(&totalTenants)
	database.DB.Model(&feedback.Feedback{}).Count(&totalFeedback)
	database.DB.Model(&billing.Payment{}).Where("status = ?", "paid").
		Select("COALESCE(SUM(amount_eur), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.Payment{}).
		Where("status = ? AND created_at >= ?", "paid", thirtyDaysAgo).
		Select("COALESCE(SUM(amount_eur), 0)").Scan(&recentRevenue)
	database.DB.Model(&feedback.Feedback{}).
		Where("created_at >= ?", thirtyDaysAgo).Count(&recentFeedback)

	stats.TotalUsers = int(totalUsers)
	stats.TotalTenants = int(totalTenants)
	stats.TotalFeedback = int(totalFeedback)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue
	stats.RecentFeedback = int(recentFeedback)

	c.JSON(http.StatusOK, stats)
}

// GET /admin/users
func (h *Handler) ListAllUsers(c *gin.Context) {
	all, err := h.users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range all {
		adminUsers = append(adminUsers, AdminUser{
			ID:         u.ID,
			Name:       u.Name,
			Lastname:   u.Lastname,
			Email:      u.Email,
			Role:       u.Role,
			IsVerified: u.IsVerified,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

// GET /admin/tenants
func (h *Handler) ListAllTenants(c *gin.Context) {
	all, err := h.tenants.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load businesses"})
		return
	}

	var out []AdminTenant
	for _, t := range all {
		out = append(out, AdminTenant{
			ID:            t.ID,
			DisplayName:   t.DisplayName,
			Slug:          t.Slug,
			OwnerID:       t.OwnerID,
			Demo:          t.Demo(),
			GooglePlaceID: t.GooglePlaceID,
			CreatedAt:     t.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, out)
}

// GET /admin/payments
func (h *Handler) ListAllPayments(c *gin.Context) {
	payments, err := h.payments.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GET /admin/tenants/:id
func (h *Handler) GetTenant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant id"})
		return
	}

	t, err := h.tenants.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load business"})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                t.ID,
		"display_name":      t.DisplayName,
		"slug":              t.Slug,
		"owner_id":          t.OwnerID,
		"demo":              t.Demo(),
		"google_place_id":   t.GooglePlaceID,
		"google_review_url": t.GoogleReviewURL,
		"logo_url":          t.LogoURL,
		"created_at":        t.CreatedAt,
	})
}

// PUT /admin/tenants/:id/place
//
// The explicit re-link action: the only path that rewrites a tenant's
// Google Place binding after onboarding. Subject to the same uniqueness
// constraints as registration.
func (h *Handler) RelinkPlace(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant id"})
		return
	}

	var body struct {
		GooglePlaceID   string `json:"google_place_id"`
		GoogleReviewURL string `json:"google_review_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()

	tenant, err := h.tenants.FindByID(ctx, uint(id))
	if err != nil || tenant == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	err = h.tenants.RelinkPlace(ctx, tenant.ID, optional(body.GooglePlaceID), optional(body.GoogleReviewURL))
	if err != nil {
		if conflict, ok := tenants.AsBindingConflict(err); ok {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Another business already holds this binding",
				"field": conflict.Field,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to re-link place"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Place binding updated"})
}

// POST /admin/tenants/demo
//
// Demo tenants have no owner and therefore no subscription; their public
// page is always accessible.
func (h *Handler) CreateDemoTenant(c *gin.Context) {
	var body struct {
		BusinessName    string `json:"business_name"`
		GoogleReviewURL string `json:"google_review_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.BusinessName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "business_name is required"})
		return
	}

	tenant := &tenants.Tenant{
		DisplayName:     strings.TrimSpace(body.BusinessName),
		GoogleReviewURL: optional(body.GoogleReviewURL),
	}

	if err := tenants.AllocateAndCreate(c.Request.Context(), h.tenants, tenant, body.BusinessName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create demo business"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"slug": tenant.Slug})
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
