package dto

// CompleteJobRequest carries the optional rating/review given on completion.
// An absent or out-of-range rating does not block completion.
type CompleteJobRequest struct {
	Rating *int   `json:"rating,omitempty"`
	Review string `json:"review,omitempty"`
}
