package santa

import "errors"

var (
	// ErrTooFewParticipants is returned when the roster is too small to form a matching.
	ErrTooFewParticipants = errors.New("santa: need at least 3 participants")

	// ErrExhaustedAttempts is returned when rejection sampling gives up.
	ErrExhaustedAttempts = errors.New("santa: failed to generate valid matching after maximum attempts")
)
