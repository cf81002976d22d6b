package quiz

import "time"

// SessionState is the lifecycle tag of a quiz session.
type SessionState string

const (
	StateNotStarted SessionState = "not_started"
	StateInProgress SessionState = "in_progress"
	StateCompleted  SessionState = "completed"
)

// Session is the state machine tracking progress through one fixed,
// ordered question set. Sessions are single-use: there is no transition
// out of Completed other than creating a brand-new session. All fields
// are exported so a session can be serialized and restored between
// requests.
type Session struct {
	State     SessionState `json:"state"`
	Category  Category     `json:"category"`
	Questions QuestionSet  `json:"questions"`
	Answers   AnswerSheet  `json:"answers"`
	Current   int          `json:"current"`
	StartedAt time.Time    `json:"startedAt"`

	// Result and Tip are populated at completion and retained until the
	// assessment save succeeds, so a failed save can be retried without
	// retaking the quiz.
	Result *ScoreResult `json:"result,omitempty"`
	Tip    string       `json:"tip,omitempty"`
}

func NewSession() *Session {
	return &Session{State: StateNotStarted}
}

// Start moves NotStarted -> InProgress with a fresh all-unanswered
// sheet and the cursor at the first question.
func (s *Session) Start(set QuestionSet, category Category) error {
	if s.State != StateNotStarted {
		return ErrSessionUsed
	}
	s.State = StateInProgress
	s.Category = category
	s.Questions = set
	s.Answers = NewAnswerSheet(len(set))
	s.Current = 0
	s.StartedAt = time.Now()
	return nil
}

// Answer records a selection for the question at index. Any index
// within the sheet is accepted (back-navigation is allowed), and the
// selection itself is not validated against the options: an option that
// matches nothing is simply scored incorrect later.
func (s *Session) Answer(index int, selected string) error {
	if s.State != StateInProgress {
		return ErrSessionNotActive
	}
	if index < 0 || index >= len(s.Answers) {
		return ErrLengthMismatch
	}
	s.Answers[index] = Answer{Selected: selected, Answered: true}
	return nil
}

// Advance moves the cursor forward. At the last index it transitions to
// Completed and returns done=true. Advancing before the current slot is
// answered fails with ErrIncompleteAnswer and leaves the session
// untouched.
func (s *Session) Advance() (done bool, err error) {
	if s.State != StateInProgress {
		return false, ErrSessionNotActive
	}
	if !s.Answers[s.Current].Answered {
		return false, ErrIncompleteAnswer
	}
	if s.Current < len(s.Questions)-1 {
		s.Current++
		return false, nil
	}
	s.State = StateCompleted
	return true, nil
}

// CurrentQuestion returns the question under the cursor, or nil when
// the session is not in progress.
func (s *Session) CurrentQuestion() *Question {
	if s.State != StateInProgress {
		return nil
	}
	return &s.Questions[s.Current]
}
