package screenings

import "errors"

var (
	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooManyCandidates indicates a CV batch larger than the configured cap.
	ErrTooManyCandidates = errors.New("too many candidates")
)
