package tenants

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"joana@example.com", "j***@example.com"},
		{"a@b.co", "a***@b.co"},
		{"ólafur@island.is", "ó***@island.is"},
		{"no-at-sign", "n***"},
		{"@weird.com", "@***"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MaskEmail(tc.in), "input %q", tc.in)
	}
}

func strPtr(s string) *string { return &s }

type fakePlaceFinder struct {
	tenant *Tenant
	err    error
}

func (f *fakePlaceFinder) FindByPlaceID(ctx context.Context, placeID string) (*Tenant, error) {
	return f.tenant, f.err
}

type fakeContacts struct {
	email string
	err   error
}

func (f *fakeContacts) ContactEmail(ctx context.Context, ownerID uint) (string, error) {
	return f.email, f.err
}

func TestCheckDuplicate_NoExistingTenant(t *testing.T) {
	check, err := CheckDuplicate(context.Background(), &fakePlaceFinder{}, &fakeContacts{}, "place-123")

	require.NoError(t, err)
	assert.False(t, check.Exists)
	assert.Empty(t, check.MaskedContact)
}

func TestCheckDuplicate_ExistingTenantMasksOwnerContact(t *testing.T) {
	ownerID := uint(7)
	finder := &fakePlaceFinder{tenant: &Tenant{OwnerID: &ownerID, GooglePlaceID: strPtr("place-123")}}
	contacts := &fakeContacts{email: "joana@example.com"}

	check, err := CheckDuplicate(context.Background(), finder, contacts, "place-123")

	require.NoError(t, err)
	assert.True(t, check.Exists)
	assert.Equal(t, "j***@example.com", check.MaskedContact)
	assert.NotContains(t, check.MaskedContact, "joana", "full local part must never leak")
}

func TestCheckDuplicate_DemoTenantHasNoContact(t *testing.T) {
	finder := &fakePlaceFinder{tenant: &Tenant{GooglePlaceID: strPtr("place-123")}}

	check, err := CheckDuplicate(context.Background(), finder, &fakeContacts{email: "admin@example.com"}, "place-123")

	require.NoError(t, err)
	assert.True(t, check.Exists)
	assert.Empty(t, check.MaskedContact)
}

func TestCheckDuplicate_ContactLookupFailureStillReportsExists(t *testing.T) {
	ownerID := uint(7)
	finder := &fakePlaceFinder{tenant: &Tenant{OwnerID: &ownerID}}
	contacts := &fakeContacts{err: errors.New("db down")}

	check, err := CheckDuplicate(context.Background(), finder, contacts, "place-123")

	require.NoError(t, err)
	assert.True(t, check.Exists)
	assert.Empty(t, check.MaskedContact)
}

func TestCheckDuplicate_FinderErrorSurfaces(t *testing.T) {
	finder := &fakePlaceFinder{err: errors.New("db down")}

	_, err := CheckDuplicate(context.Background(), finder, &fakeContacts{}, "place-123")

	assert.Error(t, err)
}
