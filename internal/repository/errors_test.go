package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rategate-backend/internal/domain/tenants"
)

func pgUnique(constraint string) error {
	return &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraint}
}

func TestUniqueViolation(t *testing.T) {
	t.Run("pg error with matching code", func(t *testing.T) {
		constraint, ok := uniqueViolation(pgUnique("idx_tenants_slug"))
		assert.True(t, ok)
		assert.Equal(t, "idx_tenants_slug", constraint)
	})

	t.Run("wrapped pg error", func(t *testing.T) {
		wrapped := fmt.Errorf("create tenant: %w", pgUnique("idx_tenants_slug"))
		_, ok := uniqueViolation(wrapped)
		assert.True(t, ok)
	})

	t.Run("other pg error code", func(t *testing.T) {
		_, ok := uniqueViolation(&pgconn.PgError{Code: "23503"})
		assert.False(t, ok)
	})

	t.Run("message fallback", func(t *testing.T) {
		err := errors.New(`ERROR: duplicate key value violates unique constraint "idx_tenants_slug"`)
		constraint, ok := uniqueViolation(err)
		assert.True(t, ok)
		assert.Contains(t, constraint, "idx_tenants_slug")
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := uniqueViolation(errors.New("connection refused"))
		assert.False(t, ok)
	})

	t.Run("nil", func(t *testing.T) {
		_, ok := uniqueViolation(nil)
		assert.False(t, ok)
	})
}

func TestTranslateTenantConflict(t *testing.T) {
	t.Run("slug collision is transient", func(t *testing.T) {
		err := translateTenantConflict(pgUnique("idx_tenants_slug"))
		assert.ErrorIs(t, err, tenants.ErrSlugTaken)
	})

	t.Run("place id collision is a terminal binding conflict", func(t *testing.T) {
		err := translateTenantConflict(pgUnique("idx_tenants_google_place_id"))
		conflict, ok := tenants.AsBindingConflict(err)
		require.True(t, ok)
		assert.Equal(t, tenants.FieldPlaceID, conflict.Field)
	})

	t.Run("review url collision is a terminal binding conflict", func(t *testing.T) {
		err := translateTenantConflict(pgUnique("idx_tenants_google_review_url"))
		conflict, ok := tenants.AsBindingConflict(err)
		require.True(t, ok)
		assert.Equal(t, tenants.FieldReviewURL, conflict.Field)
	})

	t.Run("unknown constraint passes through", func(t *testing.T) {
		in := pgUnique("idx_users_email")
		assert.Equal(t, in, translateTenantConflict(in))
	})

	t.Run("non unique-violation passes through", func(t *testing.T) {
		in := errors.New("connection refused")
		assert.Equal(t, in, translateTenantConflict(in))
	})

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, translateTenantConflict(nil))
	})
}
