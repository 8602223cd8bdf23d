package public

import (
	"context"
	"log"
	"net/http"

	"rategate-backend/internal/app/detach"
	"rategate-backend/internal/domain/feedback"
	"rategate-backend/internal/domain/tenants"
	"rategate-backend/internal/notify"

	"github.com/gin-gonic/gin"
)

// Gate decides whether a tenant's public page is usable. Evaluated fresh
// on every request; the handler never memoizes the answer.
type Gate interface {
	Resolve(ctx context.Context, slug string) (*tenants.Tenant, bool, error)
}

type FeedbackWriter interface {
	Create(ctx context.Context, f *feedback.Feedback) error
}

type OwnerContacts interface {
	ContactEmail(ctx context.Context, ownerID uint) (string, error)
}

type Handler struct {
	gate     Gate
	feedback FeedbackWriter
	owners   OwnerContacts
	mailer   notify.Mailer
}

func NewHandler(gate Gate, fw FeedbackWriter, owners OwnerContacts, mailer notify.Mailer) *Handler {
	return &Handler{gate: gate, feedback: fw, owners: owners, mailer: mailer}
}

// unavailable is the one body anonymous visitors ever see for a page they
// cannot use. Unknown slug and expired subscription look identical so
// billing state never leaks.
func unavailable(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "This page is temporarily unavailable"})
}

// GET /p/:slug
func (h *Handler) GetPage(c *gin.Context) {
	tenant, ok, err := h.gate.Resolve(c.Request.Context(), c.Param("slug"))
	if err != nil {
		log.Printf("access check failed for slug %q: %v", c.Param("slug"), err)
		unavailable(c)
		return
	}
	if !ok {
		unavailable(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slug":          tenant.Slug,
		"business_name": tenant.DisplayName,
		"logo_url":      tenant.LogoURL,
	})
}

type submitRatingRequest struct {
	Rating         int    `json:"rating"`
	Comment        string `json:"comment"`
	VisitorName    string `json:"visitor_name"`
	VisitorContact string `json:"visitor_contact"`
}

// POST /p/:slug/ratings
//
// r >= 4 is the promoter path: the feedback write is detached so a slow or
// failing call can never hold the visitor back from the Google review; the
// response carries the review URL (direct client navigation, not awaited)
// and the comment for the client-side clipboard copy. r <= 3 is the
// detractor path: the write is awaited and the flow only reaches Submitted
// once it succeeds.
func (h *Handler) SubmitRating(c *gin.Context) {
	tenant, ok, err := h.gate.Resolve(c.Request.Context(), c.Param("slug"))
	if err != nil {
		log.Printf("access check failed for slug %q: %v", c.Param("slug"), err)
		unavailable(c)
		return
	}
	if !ok {
		unavailable(c)
		return
	}

	var req submitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	state, err := feedback.Route(req.Rating)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "state": string(feedback.StateAwaitingRating)})
		return
	}

	// the one hard validation gate, applied before any persistence
	if err := feedback.ValidateSubmission(state, req.Comment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "state": string(state)})
		return
	}

	row := &feedback.Feedback{
		TenantID:       tenant.ID,
		Rating:         req.Rating,
		Comment:        optional(req.Comment),
		VisitorName:    optional(req.VisitorName),
		VisitorContact: optional(req.VisitorContact),
	}

	if state == feedback.StatePromoterFlow {
		h.submitPromoter(tenant, row, req.Comment, c)
		return
	}
	h.submitDetractor(tenant, row, req, c)
}

func (h *Handler) submitPromoter(tenant *tenants.Tenant, row *feedback.Feedback, comment string, c *gin.Context) {
	writer := h.feedback
	detach.Go("promoter feedback persist", func(ctx context.Context) error {
		return writer.Create(ctx, row)
	})

	resp := gin.H{
		"state": string(feedback.StateSubmitted),
		"next":  "thank_you",
	}
	if tenant.GoogleReviewURL != nil && *tenant.GoogleReviewURL != "" {
		resp["next"] = "redirect"
		resp["review_url"] = *tenant.GoogleReviewURL
	}
	if comment != "" {
		// copied to the visitor's clipboard client-side, best effort
		resp["clipboard"] = comment
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) submitDetractor(tenant *tenants.Tenant, row *feedback.Feedback, req submitRatingRequest, c *gin.Context) {
	if err := h.feedback.Create(c.Request.Context(), row); err != nil {
		log.Printf("detractor feedback persist failed for tenant %d: %v", tenant.ID, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Could not save your feedback. Please try again.",
			"state":     string(feedback.StateDetractorFlow),
			"retryable": true,
		})
		return
	}

	h.notifyOwner(tenant, req.Rating, req.Comment)

	c.JSON(http.StatusCreated, gin.H{
		"state": string(feedback.StateSubmitted),
		"next":  "thank_you",
	})
}

// notifyOwner emails the owner about a new private detractor capture.
// Detached: notification delivery must never gate the visitor's flow.
func (h *Handler) notifyOwner(tenant *tenants.Tenant, rating int, comment string) {
	if tenant.OwnerID == nil {
		return
	}
	ownerID := *tenant.OwnerID
	name := tenant.DisplayName
	owners, mailer := h.owners, h.mailer

	detach.Go("detractor owner alert", func(ctx context.Context) error {
		email, err := owners.ContactEmail(ctx, ownerID)
		if err != nil || email == "" {
			return err
		}
		subject, body := notify.DetractorAlertEmail(name, rating, comment)
		return mailer.Send(ctx, email, subject, body)
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
