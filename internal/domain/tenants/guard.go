package tenants

import (
	"context"
	"strings"
)

// PlaceFinder looks up a tenant by its Google Place id. A missing tenant is
// (nil, nil), not an error.
type PlaceFinder interface {
	FindByPlaceID(ctx context.Context, placeID string) (*Tenant, error)
}

// OwnerContacts resolves an owner account to its contact email.
type OwnerContacts interface {
	ContactEmail(ctx context.Context, ownerID uint) (string, error)
}

type DuplicateCheck struct {
	Exists        bool   `json:"exists"`
	MaskedContact string `json:"masked_contact,omitempty"`
}

// CheckDuplicate reports whether a tenant is already bound to the given
// Google Place. When one exists, the existing owner's contact is returned
// masked: enough for the registrant to recognize "already claimed", never
// the full address. This pre-check is advisory only; the unique constraint
// on google_place_id remains the source of truth under concurrency.
func CheckDuplicate(ctx context.Context, finder PlaceFinder, contacts OwnerContacts, placeID string) (DuplicateCheck, error) {
	existing, err := finder.FindByPlaceID(ctx, placeID)
	if err != nil {
		return DuplicateCheck{}, err
	}
	if existing == nil {
		return DuplicateCheck{}, nil
	}

	check := DuplicateCheck{Exists: true}
	if existing.OwnerID != nil {
		email, err := contacts.ContactEmail(ctx, *existing.OwnerID)
		if err == nil && email != "" {
			check.MaskedContact = MaskEmail(email)
		}
	}
	return check, nil
}

// MaskEmail keeps the first rune of the local part and the full domain:
// "joana@example.com" -> "j***@example.com".
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		runes := []rune(email)
		if len(runes) == 0 {
			return ""
		}
		return string(runes[0]) + "***"
	}
	local := []rune(email[:at])
	return string(local[0]) + "***" + email[at:]
}
