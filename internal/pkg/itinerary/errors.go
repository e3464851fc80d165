package itinerary

import "fmt"

// MalformedOfferError reports an offer that cannot be flattened, naming the
// offending offer so the rest of the batch can be accounted for.
type MalformedOfferError struct {
	OfferID string
	Reason  string
}

func (e MalformedOfferError) Error() string {
	return fmt.Sprintf("malformed offer %q: %s", e.OfferID, e.Reason)
}
