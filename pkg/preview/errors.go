package preview

import "errors"

var (
	// ErrSubmissionBlocked is returned when at least one field fails its rule.
	ErrSubmissionBlocked = errors.New("preview: submission blocked")
	// ErrAlreadySubmitted is returned by every Submit after a successful one.
	ErrAlreadySubmitted = errors.New("preview: form already submitted")
)
