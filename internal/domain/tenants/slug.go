package tenants

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

/*
	Slug allocation
	---------------
	- Responsible ONLY for:
	  • normalizing business names into URL-safe slugs
	  • inserting the tenant with a collision-free slug
	- No access logic, no billing logic here
*/

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// stripDiacritics decomposes and drops combining marks: "Açaí" -> "Acai".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSlug generates a URL-safe base slug from a business name.
// Example: "Café Açaí & Co." -> "cafe-acai-co"
func NormalizeSlug(name string) string {
	base, _, err := transform.String(stripDiacritics, strings.TrimSpace(name))
	if err != nil {
		base = strings.TrimSpace(name)
	}
	base = strings.ToLower(base)
	base = nonSlug.ReplaceAllString(base, "-")
	return strings.Trim(base, "-")
}

// Creator inserts a tenant. It must report a slug unique-constraint hit as
// ErrSlugTaken and a Google binding hit as BindingConflict.
type Creator interface {
	Create(ctx context.Context, t *Tenant) error
}

// how many numbered suffixes to try before switching to a random token
const maxNumberedAttempts = 50

// AllocateAndCreate fills t.Slug with a collision-free slug derived from
// desiredName and inserts the tenant. The insert itself is the conflict
// check: a prior existence lookup alone is not safe under concurrent
// onboarding, so the loop retries with "-1", "-2", … whenever the slug
// constraint fires. Binding conflicts and other errors are returned as-is.
func AllocateAndCreate(ctx context.Context, repo Creator, t *Tenant, desiredName string) error {
	base := NormalizeSlug(desiredName)
	if base == "" {
		// name had no alphanumeric content at all
		base = syntheticBase()
	}

	for i := 0; ; i++ {
		switch {
		case i == 0:
			t.Slug = base
		case i <= maxNumberedAttempts:
			t.Slug = fmt.Sprintf("%s-%d", base, i)
		default:
			t.Slug = fmt.Sprintf("%s-%s", base, shortToken())
		}

		err := repo.Create(ctx, t)
		if errors.Is(err, ErrSlugTaken) {
			continue
		}
		return err
	}
}

func syntheticBase() string {
	return "business-" + shortToken()
}

func shortToken() string {
	return strings.Split(uuid.New().String(), "-")[0]
}
