package public

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rategate-backend/internal/domain/feedback"
	"rategate-backend/internal/domain/tenants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeGate struct {
	tenant *tenants.Tenant
	ok     bool
	err    error
}

func (f *fakeGate) Resolve(ctx context.Context, slug string) (*tenants.Tenant, bool, error) {
	return f.tenant, f.ok, f.err
}

type fakeWriter struct {
	created chan *feedback.Feedback
	err     error
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{created: make(chan *feedback.Feedback, 4)}
}

func (f *fakeWriter) Create(ctx context.Context, row *feedback.Feedback) error {
	if f.err != nil {
		return f.err
	}
	f.created <- row
	return nil
}

type fakeOwnerContacts struct {
	email string
}

func (f *fakeOwnerContacts) ContactEmail(ctx context.Context, ownerID uint) (string, error) {
	return f.email, nil
}

type fakeMailer struct {
	sent chan string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan string, 4)}
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html string) error {
	f.sent <- to
	return nil
}

func strPtr(s string) *string { return &s }

func accessibleTenant() *tenants.Tenant {
	ownerID := uint(7)
	return &tenants.Tenant{
		ID:              42,
		OwnerID:         &ownerID,
		DisplayName:     "Padaria Sol",
		Slug:            "padaria-sol",
		GoogleReviewURL: strPtr("https://search.google.com/local/writereview?placeid=abc"),
	}
}

func newRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.GET("/p/:slug", h.GetPage)
	r.POST("/p/:slug/ratings", h.SubmitRating)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func awaitFeedback(t *testing.T, w *fakeWriter) *feedback.Feedback {
	t.Helper()
	select {
	case row := <-w.created:
		return row
	case <-time.After(2 * time.Second):
		t.Fatal("feedback was never persisted")
		return nil
	}
}

func TestGetPage_Accessible(t *testing.T) {
	h := NewHandler(&fakeGate{tenant: accessibleTenant(), ok: true}, newFakeWriter(), &fakeOwnerContacts{}, newFakeMailer())

	w, body := doJSON(t, newRouter(h), http.MethodGet, "/p/padaria-sol", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Padaria Sol", body["business_name"])
	assert.Equal(t, "padaria-sol", body["slug"])
}

func TestGetPage_UnknownAndDeniedAreIndistinguishable(t *testing.T) {
	unknown := NewHandler(&fakeGate{ok: false}, newFakeWriter(), &fakeOwnerContacts{}, newFakeMailer())
	denied := NewHandler(&fakeGate{ok: false}, newFakeWriter(), &fakeOwnerContacts{}, newFakeMailer())

	w1, b1 := doJSON(t, newRouter(unknown), http.MethodGet, "/p/nope", nil)
	w2, b2 := doJSON(t, newRouter(denied), http.MethodGet, "/p/expired-shop", nil)

	assert.Equal(t, http.StatusNotFound, w1.Code)
	assert.Equal(t, w1.Code, w2.Code)
	assert.Equal(t, b1, b2, "unknown slug and denied subscription must share one body")
}

func TestSubmitRating_PromoterRedirectsAndPersistsInBackground(t *testing.T) {
	writer := newFakeWriter()
	h := NewHandler(&fakeGate{tenant: accessibleTenant(), ok: true}, writer, &fakeOwnerContacts{}, newFakeMailer())

	w, body := doJSON(t, newRouter(h), http.MethodPost, "/p/padaria-sol/ratings", gin.H{
		"rating":  5,
		"comment": "best croissants in town",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(feedback.StateSubmitted), body["state"])
	assert.Equal(t, "redirect", body["next"])
	assert.Equal(t, "https://search.google.com/local/writereview?placeid=abc", body["review_url"])
	assert.Equal(t, "best croissants in town", body["clipboard"])

	row := awaitFeedback(t, writer)
	assert.Equal(t, uint(42), row.TenantID)
	assert.Equal(t, 5, row.Rating)
}

func TestSubmitRating_PromoterWithoutReviewURLThanksInstead(t *testing.T) {
	tenant := accessibleTenant()
	tenant.GoogleReviewURL = nil
	writer := newFakeWriter()
	h := NewHandler(&fakeGate{tenant: tenant, ok: true}, writer, &fakeOwnerContacts{}, newFakeMailer())

	w, body := doJSON(t, newRouter(h), http.MethodPost, "/p/padaria-sol/ratings", gin.H{"rating": 4})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "thank_you", body["next"])
	assert.NotContains(t, body, "review_url")
	assert.NotContains(t, body, "clipboard")
	awaitFeedback(t, writer)
}

func TestSubmitRating_PromoterPersistFailureDoesNotBlockVisitor(t *testing.T) {
	writer := newFakeWriter()
	writer.err = errors.New("storage down")
	h := NewHandler(&fakeGate{tenant: accessibleTenant(), ok: true}, writer, &fakeOwnerContacts{}, newFakeMailer())

	w, body := doJSON(t, newRouter(h), http.MethodPost, "/p/padaria-sol/ratings", gin.H{"rating": 5})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "redirect", body["next"])
}

func TestSubmitRating_DetractorPersistsSynchronouslyAndAlertsOwner(t *testing.T) {
	writer := newFakeWriter()
	mailer := newFakeMailer()
	h := NewHandler(&fakeGate{tenant: accessibleTenant(), ok: true}, writer, &fakeOwnerContacts{email: "owner@example.com"}, mailer)

	w, body := doJSON(t, newRouter(h), http.MethodPost, "/p/padaria-sol/ratings", gin.H{
		"rating":          2,
		"comment":         "waited 40 minutes",
		"visitor_name":    "Rui",
		"visitor_contact": "rui@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, string(feedback.StateSubmitted), body["state"])
	assert.Equal(t, "thank_you", body["next"])
	assert.NotContains(t, body, "review_url", "detractors are never routed to the public review")

	row := awaitFeedback(t, writer)
	require.NotNil(t, row.Comment)
	assert.Equal(t, "waited 40 minutes", *row.Comment)

	select {
	case to := <-mailer.sent:
		assert.Equal(t, "owner@example.com", to)
	case <-time.After(2 * time.Second):
		t.Fatal("owner alert was never sent")
	}
}

func TestSubmitRating_DetractorWithoutCommentRejected(t *testing.T) {
	writer := newFakeWriter()
	h := NewHandler(&fakeGate{tenant: accessibleTenant(), ok: true}, writer, &fakeOwnerContacts{}, newFakeMailer())

	w, body := doJSON(t, newRouter(h), http.MethodPost, "/p/padaria-sol/ratings", gin.H{"rating": 2})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(feedback.StateDetractorFlow), body["state"])
	assert.Empty(t, writer.created, "nothing may be persisted on validation failure")
}

func TestSubmitRating_DetractorPersistFailureIsRetryable(t *testing.T) {
	writer := newFakeWriter()
	writer.err = errors.New("storage down")
	h := NewHandler(&fakeGate{tenant: accessibleTenant(), ok: true}, writer, &fakeOwnerContacts{}, newFakeMailer())

	w, body := doJSON(t, newRouter(h), http.MethodPost, "/p/padaria-sol/ratings", gin.H{
		"rating":  1,
		"comment": "cold food",
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, true, body["retryable"])
	assert.Equal(t, string(feedback.StateDetractorFlow), body["state"])
}

func TestSubmitRating_RatingOutOfRange(t *testing.T) {
	h := NewHandler(&fakeGate{tenant: accessibleTenant(), ok: true}, newFakeWriter(), &fakeOwnerContacts{}, newFakeMailer())
	r := newRouter(h)

	for _, rating := range []int{0, 6, -1} {
		w, body := doJSON(t, r, http.MethodPost, "/p/padaria-sol/ratings", gin.H{"rating": rating, "comment": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
		assert.Equal(t, string(feedback.StateAwaitingRating), body["state"])
	}
}

func TestSubmitRating_DeniedPageRejectsRatings(t *testing.T) {
	writer := newFakeWriter()
	h := NewHandler(&fakeGate{ok: false}, writer, &fakeOwnerContacts{}, newFakeMailer())

	w, _ := doJSON(t, newRouter(h), http.MethodPost, "/p/expired-shop/ratings", gin.H{"rating": 5})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, writer.created)
}
