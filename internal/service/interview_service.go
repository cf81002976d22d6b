package service

import (
	"career_coach_backend/internal/model"
	"career_coach_backend/internal/quiz"
	"career_coach_backend/internal/util"
	"career_coach_backend/pkg/logger"
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrQuizInFlight rejects a second generate/advise call while one
	// is still running for the same user. Long-running completion calls
	// are never interleaved per session.
	ErrQuizInFlight = errors.New("another quiz request is already in progress")

	// ErrInvalidCategory rejects unknown quiz categories.
	ErrInvalidCategory = errors.New("unknown quiz category")

	// ErrSaveFailed marks a persistence failure of an otherwise
	// complete quiz. The computed score is retained; the save can be
	// retried without retaking the quiz.
	ErrSaveFailed = errors.New("failed to save assessment")
)

// UserFinder is the identity/profile lookup needed by the quiz flow.
type UserFinder interface {
	FindByID(id uint) (*model.User, error)
}

// AssessmentRecords is the durable assessment storage boundary.
type AssessmentRecords interface {
	quiz.AssessmentStore
	ListByUser(userID uint) ([]model.Assessment, error)
}

// SessionStore persists quiz sessions between requests.
type SessionStore interface {
	Load(ctx context.Context, userID uint) (*quiz.Session, error)
	Save(ctx context.Context, userID uint, sess *quiz.Session) error
	Delete(ctx context.Context, userID uint) error
}

// InterviewService orchestrates the quiz lifecycle: generation,
// answering, scoring, remediation advice and recording.
type InterviewService struct {
	Users       UserFinder
	Assessments AssessmentRecords
	Sessions    SessionStore
	Generator   *quiz.Generator
	Advisor     *quiz.Advisor
	Recorder    *quiz.Recorder

	inflight sync.Map // userID -> struct{}
}

func NewInterviewService(users UserFinder, assessments AssessmentRecords, sessions SessionStore, generator *quiz.Generator, advisor *quiz.Advisor) *InterviewService {
	return &InterviewService{
		Users:       users,
		Assessments: assessments,
		Sessions:    sessions,
		Generator:   generator,
		Advisor:     advisor,
		Recorder:    quiz.NewRecorder(assessments),
	}
}

// QuizOutcome is the result of an Advance call.
type QuizOutcome struct {
	Completed    bool               `json:"completed"`
	CurrentIndex int                `json:"currentIndex"`
	Result       *quiz.ScoreResult  `json:"result,omitempty"`
	Tip          string             `json:"improvementTip,omitempty"`
	Assessment   *model.Assessment  `json:"assessment,omitempty"`
}

func (s *InterviewService) acquire(userID uint) bool {
	_, loaded := s.inflight.LoadOrStore(userID, struct{}{})
	return !loaded
}

func (s *InterviewService) release(userID uint) {
	s.inflight.Delete(userID)
}

func (s *InterviewService) profile(userID uint) (*model.User, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if user.Industry == "" {
		return nil, util.ErrProfileNotFound
	}
	return user, nil
}

// StartQuiz generates a fresh question set and opens a new session,
// replacing any previous one for this user. A malformed generation
// response aborts without creating a session.
func (s *InterviewService) StartQuiz(ctx context.Context, userID uint, category quiz.Category) (*quiz.Session, error) {
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	user, err := s.profile(userID)
	if err != nil {
		return nil, err
	}

	if !s.acquire(userID) {
		return nil, ErrQuizInFlight
	}
	defer s.release(userID)

	set, err := s.Generator.Generate(ctx, quiz.Profile{
		Industry: user.Industry,
		Skills:   user.SkillList(),
	}, category)
	if err != nil {
		return nil, err
	}

	sess := quiz.NewSession()
	if err := sess.Start(set, category); err != nil {
		return nil, err
	}

	if err := s.Sessions.Save(ctx, userID, sess); err != nil {
		return nil, fmt.Errorf("persist quiz session: %w", err)
	}

	return sess, nil
}

func (s *InterviewService) activeSession(ctx context.Context, userID uint) (*quiz.Session, error) {
	sess, err := s.Sessions.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, quiz.ErrSessionNotActive
	}
	return sess, nil
}

// SubmitAnswer records the selection for the given question index.
func (s *InterviewService) SubmitAnswer(ctx context.Context, userID uint, index int, selected string) (*quiz.Session, error) {
	sess, err := s.activeSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := sess.Answer(index, selected); err != nil {
		return nil, err
	}

	if err := s.Sessions.Save(ctx, userID, sess); err != nil {
		return nil, fmt.Errorf("persist quiz session: %w", err)
	}
	return sess, nil
}

// Advance moves the session forward; at the last question it scores the
// quiz, fetches best-effort remediation advice, and records the
// assessment.
func (s *InterviewService) Advance(ctx context.Context, userID uint) (*QuizOutcome, error) {
	sess, err := s.activeSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	done, err := sess.Advance()
	if err != nil {
		return nil, err
	}

	if !done {
		if err := s.Sessions.Save(ctx, userID, sess); err != nil {
			return nil, fmt.Errorf("persist quiz session: %w", err)
		}
		return &QuizOutcome{CurrentIndex: sess.Current}, nil
	}

	return s.finalize(ctx, userID, sess)
}

func (s *InterviewService) finalize(ctx context.Context, userID uint, sess *quiz.Session) (*QuizOutcome, error) {
	if !s.acquire(userID) {
		return nil, ErrQuizInFlight
	}
	defer s.release(userID)

	user, err := s.profile(userID)
	if err != nil {
		return nil, err
	}

	result, err := quiz.Score(sess.Questions, sess.Answers)
	if err != nil {
		return nil, err
	}

	// Advice is a best-effort enhancement: a failing completion call
	// degrades to an empty tip and never aborts the save.
	tip := ""
	if incorrect := result.Incorrect(); len(incorrect) > 0 {
		tip, err = s.Advisor.Advise(ctx, user.Industry, incorrect)
		if err != nil {
			logger.Log.Warn("remediation advice failed", zap.Uint("userID", userID), zap.Error(err))
			tip = ""
		}
	}

	sess.Result = result
	sess.Tip = tip

	return s.save(ctx, userID, sess)
}

func (s *InterviewService) save(ctx context.Context, userID uint, sess *quiz.Session) (*QuizOutcome, error) {
	record, err := s.Recorder.Record(userID, sess.Result, sess.Tip)
	if err != nil {
		// Keep the completed session, score included, so the save can
		// be retried without retaking the quiz.
		if serr := s.Sessions.Save(ctx, userID, sess); serr != nil {
			logger.Log.Error("failed to retain completed quiz session", zap.Uint("userID", userID), zap.Error(serr))
		}
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if err := s.Sessions.Delete(ctx, userID); err != nil {
		logger.Log.Warn("failed to clear quiz session", zap.Uint("userID", userID), zap.Error(err))
	}

	return &QuizOutcome{
		Completed:    true,
		CurrentIndex: sess.Current,
		Result:       sess.Result,
		Tip:          sess.Tip,
		Assessment:   record,
	}, nil
}

// RetrySave re-attempts persisting a completed quiz whose save failed.
func (s *InterviewService) RetrySave(ctx context.Context, userID uint) (*QuizOutcome, error) {
	sess, err := s.activeSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess.State != quiz.StateCompleted || sess.Result == nil {
		return nil, quiz.ErrSessionNotActive
	}
	return s.save(ctx, userID, sess)
}

// History lists the user's assessments ordered by creation time.
func (s *InterviewService) History(userID uint) ([]model.Assessment, error) {
	return s.Assessments.ListByUser(userID)
}
