package repository

import (
	"errors"
	"strings"

	"rategate-backend/internal/domain/tenants"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres unique_violation
const pgUniqueViolation = "23505"

// uniqueViolation reports whether err is a Postgres unique-constraint hit
// and, if so, which constraint fired. Falls back to message matching when
// the driver error is not a *pgconn.PgError (older drivers wrap it).
func uniqueViolation(err error) (constraint string, ok bool) {
	if err == nil {
		return "", false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return pgErr.ConstraintName, true
		}
		return "", false
	}
	msg := err.Error()
	if strings.Contains(msg, "duplicate key value violates unique constraint") {
		return msg, true
	}
	return "", false
}

// translateTenantConflict maps a tenant insert/update error onto the typed
// taxonomy: slug collisions are transient (the allocator retries them),
// Google binding collisions are terminal conflicts identifying the field.
func translateTenantConflict(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return err
	}
	switch {
	case strings.Contains(constraint, "idx_tenants_slug"):
		return tenants.ErrSlugTaken
	case strings.Contains(constraint, "idx_tenants_google_place_id"):
		return &tenants.BindingConflict{Field: tenants.FieldPlaceID}
	case strings.Contains(constraint, "idx_tenants_google_review_url"):
		return &tenants.BindingConflict{Field: tenants.FieldReviewURL}
	default:
		return err
	}
}
