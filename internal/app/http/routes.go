package routes

import (
	"rategate-backend/config"
	"rategate-backend/database"
	adminapi "rategate-backend/internal/api/admin"
	authapi "rategate-backend/internal/api/auth"
	"rategate-backend/internal/api/billing"
	"rategate-backend/internal/api/dashboard"
	"rategate-backend/internal/api/onboarding"
	"rategate-backend/internal/api/plans"
	publicapi "rategate-backend/internal/api/public"
	stripewebhooks "rategate-backend/internal/api/stripewebhook"
	"rategate-backend/internal/app/http/middleware"
	"rategate-backend/internal/domain/access"
	"rategate-backend/internal/notify"
	"rategate-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	db := database.DB

	userRepo := repository.NewUserRepo(db)
	tenantRepo := repository.NewTenantRepo(db)
	subRepo := repository.NewSubscriptionRepo(db)
	feedbackRepo := repository.NewFeedbackRepo(db)
	planRepo := repository.NewPlanRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)

	var mailer notify.Mailer
	if config.RESEND_API_KEY != "" {
		mailer = notify.NewResendMailer()
	} else {
		mailer = notify.NewMockMailer()
	}

	gate := access.NewGate(tenantRepo, subRepo)

	authHandler := authapi.NewHandler(userRepo, subRepo, mailer)
	publicHandler := publicapi.NewHandler(gate, feedbackRepo, userRepo, mailer)
	onboardingHandler := onboarding.NewHandler(tenantRepo, userRepo)
	dashboardHandler := dashboard.NewHandler(userRepo, tenantRepo, subRepo, feedbackRepo)
	billingHandler := billing.NewHandler(userRepo, subRepo, planRepo, paymentRepo)
	plansHandler := plans.NewHandler(planRepo)
	webhookHandler := stripewebhooks.NewHandler(userRepo, subRepo, planRepo, paymentRepo)
	adminHandler := adminapi.NewHandler(userRepo, tenantRepo, paymentRepo)

	r.POST("/webhook", webhookHandler.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Anonymous visitor surface. Gate is re-evaluated on every request.
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.GET("/p/:slug", publicHandler.GetPage)
	public.POST("/p/:slug/ratings", publicHandler.SubmitRating)

	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)
	public.GET("/plans", plansHandler.ListPlans)
	public.GET("/verify", authHandler.VerifyEmail)
	public.POST("/resend-verification", authHandler.ResendVerification)
	public.POST("/request-password-reset", authHandler.RequestPasswordReset)
	public.POST("/reset-password", authHandler.ResetPassword)

	public.GET("/auth/google", authHandler.GoogleStart)
	public.GET("/auth/google/callback", authHandler.GoogleCallback)

	// Authenticated owners
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", dashboardHandler.Me)
	auth.POST("/change-password", authHandler.ChangePassword)

	auth.POST("/onboarding/place-check", onboardingHandler.PlaceCheck)
	auth.POST("/onboarding/complete", onboardingHandler.Complete)

	auth.GET("/feedback", dashboardHandler.ListFeedback)
	auth.PATCH("/feedback/:id/read", dashboardHandler.SetFeedbackRead)
	auth.DELETE("/feedback/:id", dashboardHandler.DeleteFeedback)

	auth.GET("/payments", billingHandler.GetPaymentHistory)
	auth.POST("/create-checkout-session", billingHandler.CreateCheckoutSession)
	auth.POST("/billing-portal", billingHandler.CreateBillingPortal)

	// Owners with a live subscription or trial
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireActiveSubscription(subRepo))
	subscribed.PUT("/business", dashboardHandler.UpdateBusiness)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminHandler.AdminDashboard)
	admin.GET("/users", adminHandler.ListAllUsers)
	admin.GET("/tenants", adminHandler.ListAllTenants)
	admin.GET("/tenants/:id", adminHandler.GetTenant)
	admin.GET("/payments", adminHandler.ListAllPayments)
	admin.PUT("/tenants/:id/place", adminHandler.RelinkPlace)
	admin.POST("/tenants/demo", adminHandler.CreateDemoTenant)
	admin.POST("/sync-plans", plansHandler.SyncPlansFromStripe)
}
