package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned by Score when the answer sheet and
	// question set lengths diverge. Scoring fails outright rather than
	// truncating.
	ErrLengthMismatch = errors.New("answer sheet length does not match question set length")

	// ErrIncompleteAnswer is returned by Session.Advance when the
	// current question has not been answered. The session stays
	// in progress; the condition is user-correctable.
	ErrIncompleteAnswer = errors.New("current question has not been answered")

	// ErrSessionNotActive is returned for operations that require an
	// in-progress session.
	ErrSessionNotActive = errors.New("quiz session is not in progress")

	// ErrSessionUsed is returned when starting a session that already
	// ran. Sessions are single-use.
	ErrSessionUsed = errors.New("quiz session has already been started")
)

// GenerationError reports a malformed or unparseable question-set
// response from the completion service. No session may be created from
// a set that failed generation.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("question generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("question generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
