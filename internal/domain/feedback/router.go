package feedback

import (
	"errors"
	"strings"
)

/*
	Rating router
	-------------
	The visitor flow as an explicit state machine, free of any HTTP or
	rendering concerns so it can be tested on its own:

	    AwaitingRating -> PromoterFlow  -> Submitted
	                   -> DetractorFlow -> Submitted

	Ratings of 4 and 5 are promoters and get handed off to the public
	Google review; 1-3 are detractors and are captured privately. The
	threshold is fixed business policy, identical for every tenant.
*/

type FlowState string

const (
	StateAwaitingRating FlowState = "awaiting_rating"
	StatePromoterFlow   FlowState = "promoter_flow"
	StateDetractorFlow  FlowState = "detractor_flow"
	StateSubmitted      FlowState = "submitted"
)

const PromoterThreshold = 4

var (
	ErrRatingOutOfRange = errors.New("rating must be an integer between 1 and 5")
	ErrCommentRequired  = errors.New("a comment is required for ratings of 3 or below")
	ErrInvalidFlowState = errors.New("submission not valid in this flow state")
)

// Route consumes a rating in AwaitingRating and returns the branch taken.
func Route(rating int) (FlowState, error) {
	if rating < 1 || rating > 5 {
		return StateAwaitingRating, ErrRatingOutOfRange
	}
	if rating >= PromoterThreshold {
		return StatePromoterFlow, nil
	}
	return StateDetractorFlow, nil
}

// ValidateSubmission is the single hard validation gate before persistence:
// a detractor submission carries no value without text, so it is rejected
// before any write is attempted. Promoter comments are optional.
func ValidateSubmission(state FlowState, comment string) error {
	switch state {
	case StatePromoterFlow:
		return nil
	case StateDetractorFlow:
		if strings.TrimSpace(comment) == "" {
			return ErrCommentRequired
		}
		return nil
	default:
		return ErrInvalidFlowState
	}
}
