package tenants

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Padaria Sol", "padaria-sol"},
		{"diacritics and symbols", "Café Açaí & Co.", "cafe-acai-co"},
		{"runs of separators", "A  --  B", "a-b"},
		{"leading and trailing junk", "  ?Pizza! ", "pizza"},
		{"already clean", "my-shop-42", "my-shop-42"},
		{"no alphanumerics", "!!! & ???", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeSlug(tc.in))
		})
	}
}

// fakeCreator simulates the storage-level unique constraint on slug.
type fakeCreator struct {
	existing map[string]bool
	calls    int
	failWith error
}

func newFakeCreator(slugs ...string) *fakeCreator {
	m := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		m[s] = true
	}
	return &fakeCreator{existing: m}
}

func (f *fakeCreator) Create(ctx context.Context, tn *Tenant) error {
	f.calls++
	if f.failWith != nil {
		return f.failWith
	}
	if f.existing[tn.Slug] {
		return ErrSlugTaken
	}
	f.existing[tn.Slug] = true
	return nil
}

func TestAllocateAndCreate_FirstAttemptWins(t *testing.T) {
	repo := newFakeCreator()
	tn := &Tenant{DisplayName: "Café Açaí & Co."}

	err := AllocateAndCreate(context.Background(), repo, tn, "Café Açaí & Co.")

	require.NoError(t, err)
	assert.Equal(t, "cafe-acai-co", tn.Slug)
	assert.Equal(t, 1, repo.calls)
}

func TestAllocateAndCreate_SecondAllocationGetsSuffix(t *testing.T) {
	repo := newFakeCreator()

	first := &Tenant{DisplayName: "Café Açaí & Co."}
	require.NoError(t, AllocateAndCreate(context.Background(), repo, first, "Café Açaí & Co."))

	second := &Tenant{DisplayName: "Café Açaí & Co."}
	require.NoError(t, AllocateAndCreate(context.Background(), repo, second, "Café Açaí & Co."))

	assert.Equal(t, "cafe-acai-co", first.Slug)
	assert.Equal(t, "cafe-acai-co-1", second.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
}

func TestAllocateAndCreate_RetriesAbsorbConflicts(t *testing.T) {
	repo := newFakeCreator("padaria-sol", "padaria-sol-1", "padaria-sol-2")
	tn := &Tenant{DisplayName: "Padaria Sol"}

	err := AllocateAndCreate(context.Background(), repo, tn, "Padaria Sol")

	require.NoError(t, err)
	assert.Equal(t, "padaria-sol-3", tn.Slug)
	assert.Equal(t, 4, repo.calls)
}

func TestAllocateAndCreate_EmptyBaseFallsBackToSyntheticToken(t *testing.T) {
	repo := newFakeCreator()
	tn := &Tenant{DisplayName: "!!!"}

	err := AllocateAndCreate(context.Background(), repo, tn, "!!!")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tn.Slug, "business-"), "got slug %q", tn.Slug)
	assert.Greater(t, len(tn.Slug), len("business-"))
}

func TestAllocateAndCreate_BindingConflictIsNotRetried(t *testing.T) {
	repo := newFakeCreator()
	repo.failWith = &BindingConflict{Field: FieldPlaceID}
	tn := &Tenant{DisplayName: "Padaria Sol"}

	err := AllocateAndCreate(context.Background(), repo, tn, "Padaria Sol")

	conflict, ok := AsBindingConflict(err)
	require.True(t, ok)
	assert.Equal(t, FieldPlaceID, conflict.Field)
	assert.Equal(t, 1, repo.calls)
}

func TestAllocateAndCreate_OtherErrorsSurface(t *testing.T) {
	repo := newFakeCreator()
	repo.failWith = errors.New("connection refused")
	tn := &Tenant{DisplayName: "Padaria Sol"}

	err := AllocateAndCreate(context.Background(), repo, tn, "Padaria Sol")

	assert.EqualError(t, err, "connection refused")
	assert.Equal(t, 1, repo.calls)
}
