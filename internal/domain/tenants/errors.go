package tenants

import (
	"errors"
	"fmt"
)

// ErrSlugTaken signals a unique-constraint hit on the slug column. It is
// absorbed by the allocator's retry loop and never reaches API callers.
var ErrSlugTaken = errors.New("tenant slug already taken")

// Binding conflict fields, matching the two unique columns of the Google
// Place binding.
const (
	FieldPlaceID   = "place_id"
	FieldReviewURL = "review_url"
)

// BindingConflict is the terminal "this business is already registered"
// error. Field says which column collided so the UI can word the message.
type BindingConflict struct {
	Field string
}

func (e *BindingConflict) Error() string {
	return fmt.Sprintf("business already registered (%s)", e.Field)
}

// AsBindingConflict unwraps err into a BindingConflict, if it is one.
func AsBindingConflict(err error) (*BindingConflict, bool) {
	var bc *BindingConflict
	if errors.As(err, &bc) {
		return bc, true
	}
	return nil, false
}
