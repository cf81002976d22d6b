package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"career_coach_backend/internal/llm"
	"career_coach_backend/internal/model"
	"career_coach_backend/internal/quiz"
	"career_coach_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users map[uint]*model.User
}

func (f *fakeUsers) FindByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

type fakeAssessments struct {
	mu      sync.Mutex
	created []*model.Assessment
	err     error
}

func (f *fakeAssessments) Create(a *model.Assessment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAssessments) ListByUser(userID uint) ([]model.Assessment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Assessment
	for _, a := range f.created {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

// memorySessions mimics the redis-backed store: sessions round-trip
// through JSON so state must survive serialization.
type memorySessions struct {
	mu      sync.Mutex
	data    map[uint][]byte
	saveErr error
	loadErr error
}

func newMemorySessions() *memorySessions {
	return &memorySessions{data: map[uint][]byte{}}
}

func (m *memorySessions) Load(_ context.Context, userID uint) (*quiz.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	raw, ok := m.data[userID]
	if !ok {
		return nil, nil
	}
	var sess quiz.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (m *memorySessions) Save(_ context.Context, userID uint, sess *quiz.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	m.data[userID] = raw
	return nil
}

func (m *memorySessions) Delete(_ context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, userID)
	return nil
}

func quizResponse(t *testing.T, n int) string {
	t.Helper()
	questions := make([]quiz.Question, n)
	for i := range questions {
		questions[i] = quiz.Question{
			Text:          fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "B",
			Explanation:   "B is the right call here.",
			Category:      quiz.CategoryTechnical,
		}
	}
	data, err := json.Marshal(map[string][]quiz.Question{"questions": questions})
	require.NoError(t, err)
	return "```json\n" + string(data) + "\n```"
}

func newTestService(users *fakeUsers, assessments *fakeAssessments, sessions *memorySessions, completer llm.Completer) *InterviewService {
	return NewInterviewService(users, assessments, sessions, quiz.NewGenerator(completer), quiz.NewAdvisor(completer))
}

func testUser(id uint) *model.User {
	return &model.User{
		BaseModel: model.BaseModel{ID: id},
		Industry:  "software engineering",
		Skills:    json.RawMessage(`["Go","SQL"]`),
	}
}

const userID = uint(1)

func runQuiz(t *testing.T, svc *InterviewService, answers []string) *QuizOutcome {
	t.Helper()
	ctx := context.Background()

	sess, err := svc.StartQuiz(ctx, userID, quiz.CategoryTechnical)
	require.NoError(t, err)
	require.Len(t, sess.Questions, len(answers))

	var outcome *QuizOutcome
	for i, selected := range answers {
		_, err := svc.SubmitAnswer(ctx, userID, i, selected)
		require.NoError(t, err)
		outcome, err = svc.Advance(ctx, userID)
		require.NoError(t, err)
	}
	return outcome
}

func TestQuizFlowAllCorrect(t *testing.T) {
	users := &fakeUsers{users: map[uint]*model.User{userID: testUser(userID)}}
	assessments := &fakeAssessments{}
	sessions := newMemorySessions()
	mock := llm.NewMock(quizResponse(t, 3))
	svc := newTestService(users, assessments, sessions, mock)

	outcome := runQuiz(t, svc, []string{"B", "B", "B"})

	require.True(t, outcome.Completed)
	require.NotNil(t, outcome.Result)
	assert.Equal(t, 100.0, outcome.Result.Percentage)
	assert.Equal(t, "Technical", outcome.Result.CategoryLabel)

	// Nothing wrong, so no advice call was made beyond generation.
	assert.Equal(t, 1, mock.CallCount())
	assert.Empty(t, outcome.Tip)

	require.NotNil(t, outcome.Assessment)
	assert.Equal(t, 100.0, outcome.Assessment.QuizScore)
	require.Len(t, assessments.created, 1)

	// Session is cleared on successful save.
	sess, err := sessions.Load(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestQuizFlowWithMistakesGetsAdvice(t *testing.T) {
	users := &fakeUsers{users: map[uint]*model.User{userID: testUser(userID)}}
	assessments := &fakeAssessments{}
	sessions := newMemorySessions()
	mock := llm.NewMock(
		quizResponse(t, 3),
		"1. Revisit the fundamentals with a hands-on exercise. Try an online sandbox.",
	)
	svc := newTestService(users, assessments, sessions, mock)

	outcome := runQuiz(t, svc, []string{"B", "A", "B"})

	require.True(t, outcome.Completed)
	require.InDelta(t, 67.0, outcome.Result.Percentage, 0.001)
	assert.Equal(t, 2, outcome.Result.CorrectCount)

	// One generation call plus one advice call.
	require.Equal(t, 2, mock.CallCount())
	assert.Contains(t, mock.Calls[1], "Question 2?")
	assert.NotEmpty(t, outcome.Tip)
	assert.Equal(t, outcome.Tip, outcome.Assessment.ImprovementTip)
}

func TestQuizAdviceFailureDegradesToEmptyTip(t *testing.T) {
	users := &fakeUsers{users: map[uint]*model.User{userID: testUser(userID)}}
	assessments := &fakeAssessments{}
	sessions := newMemorySessions()
	mock := llm.NewMock(quizResponse(t, 2)) // no second response: advice call fails
	svc := newTestService(users, assessments, sessions, mock)

	outcome := runQuiz(t, svc, []string{"B", "A"})

	require.True(t, outcome.Completed)
	assert.Empty(t, outcome.Tip)
	require.Len(t, assessments.created, 1)
	assert.Empty(t, assessments.created[0].ImprovementTip)
}

func TestStartQuizValidation(t *testing.T) {
	users := &fakeUsers{users: map[uint]*model.User{
		userID: testUser(userID),
		2:      {BaseModel: model.BaseModel{ID: 2}}, // no industry set
	}}
	svc := newTestService(users, &fakeAssessments{}, newMemorySessions(), llm.NewMock())
	ctx := context.Background()

	_, err := svc.StartQuiz(ctx, userID, "trivia")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.StartQuiz(ctx, 2, quiz.CategoryTechnical)
	assert.ErrorIs(t, err, util.ErrProfileNotFound)

	_, err = svc.StartQuiz(ctx, 99, quiz.CategoryTechnical)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestStartQuizMalformedGenerationLeavesNoSession(t *testing.T) {
	users := &fakeUsers{users: map[uint]*model.User{userID: testUser(userID)}}
	sessions := newMemorySessions()
	svc := newTestService(users, &fakeAssessments{}, sessions, llm.NewMock("not json at all"))

	_, err := svc.StartQuiz(context.Background(), userID, quiz.CategoryTechnical)
	var genErr *quiz.GenerationError
	require.ErrorAs(t, err, &genErr)

	sess, err := sessions.Load(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestQuizInFlightGuard(t *testing.T) {
	users := &fakeUsers{users: map[uint]*model.User{userID: testUser(userID)}}
	sessions := newMemorySessions()

	release := make(chan struct{})
	started := make(chan struct{})
	blocking := &blockingCompleter{release: release, started: started}
	svc := newTestService(users, &fakeAssessments{}, sessions, blocking)

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.StartQuiz(context.Background(), userID, quiz.CategoryTechnical)
		errCh <- err
	}()

	<-started
	_, err := svc.StartQuiz(context.Background(), userID, quiz.CategoryTechnical)
	assert.ErrorIs(t, err, ErrQuizInFlight)

	close(release)
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("first StartQuiz did not finish")
	}
}

type blockingCompleter struct {
	release <-chan struct{}
	started chan<- struct{}
	once    sync.Once
}

func (b *blockingCompleter) Complete(_ context.Context, _ string) (string, error) {
	b.once.Do(func() { close(b.started) })
	<-b.release
	questions := make([]quiz.Question, 1)
	questions[0] = quiz.Question{
		Text:          "Question 1?",
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: "B",
		Explanation:   "B is the right call here.",
		Category:      quiz.CategoryTechnical,
	}
	data, _ := json.Marshal(map[string][]quiz.Question{"questions": questions})
	return string(data), nil
}

func TestAdvanceWithoutAnswer(t *testing.T) {
	users := &fakeUsers{users: map[uint]*model.User{userID: testUser(userID)}}
	sessions := newMemorySessions()
	svc := newTestService(users, &fakeAssessments{}, sessions, llm.NewMock(quizResponse(t, 2)))
	ctx := context.Background()

	_, err := svc.StartQuiz(ctx, userID, quiz.CategoryTechnical)
	require.NoError(t, err)

	_, err = svc.Advance(ctx, userID)
	assert.ErrorIs(t, err, quiz.ErrIncompleteAnswer)

	// The stored session is untouched and still at the first question.
	sess, err := sessions.Load(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, 0, sess.Current)
	assert.Equal(t, quiz.StateInProgress, sess.State)
}

func TestNoActiveSession(t *testing.T) {
	users := &fakeUsers{users: map[uint]*model.User{userID: testUser(userID)}}
	svc := newTestService(users, &fakeAssessments{}, newMemorySessions(), llm.NewMock())
	ctx := context.Background()

	_, err := svc.SubmitAnswer(ctx, userID, 0, "B")
	assert.ErrorIs(t, err, quiz.ErrSessionNotActive)
	_, err = svc.Advance(ctx, userID)
	assert.ErrorIs(t, err, quiz.ErrSessionNotActive)
	_, err = svc.RetrySave(ctx, userID)
	assert.ErrorIs(t, err, quiz.ErrSessionNotActive)
}

func TestSaveFailureRetainsSessionForRetry(t *testing.T) {
	users := &fakeUsers{users: map[uint]*model.User{userID: testUser(userID)}}
	assessments := &fakeAssessments{err: errors.New("db down")}
	sessions := newMemorySessions()
	mock := llm.NewMock(quizResponse(t, 2))
	svc := newTestService(users, assessments, sessions, mock)
	ctx := context.Background()

	_, err := svc.StartQuiz(ctx, userID, quiz.CategoryTechnical)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, userID, 0, "B")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, userID)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, userID, 1, "B")
	require.NoError(t, err)

	_, err = svc.Advance(ctx, userID)
	assert.ErrorIs(t, err, ErrSaveFailed)

	// The completed session, score included, survives the failed save.
	sess, err := sessions.Load(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, quiz.StateCompleted, sess.State)
	require.NotNil(t, sess.Result)
	assert.Equal(t, 100.0, sess.Result.Percentage)

	// A retry after the store recovers succeeds without retaking the
	// quiz, and the score is unchanged.
	assessments.err = nil
	outcome, err := svc.RetrySave(ctx, userID)
	require.NoError(t, err)
	require.True(t, outcome.Completed)
	assert.Equal(t, 100.0, outcome.Result.Percentage)
	require.Len(t, assessments.created, 1)

	// No advice re-computation happened on retry.
	assert.Equal(t, 1, mock.CallCount())

	sess, err = sessions.Load(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestRetrySaveRequiresCompletedSession(t *testing.T) {
	users := &fakeUsers{users: map[uint]*model.User{userID: testUser(userID)}}
	sessions := newMemorySessions()
	svc := newTestService(users, &fakeAssessments{}, sessions, llm.NewMock(quizResponse(t, 2)))
	ctx := context.Background()

	_, err := svc.StartQuiz(ctx, userID, quiz.CategoryTechnical)
	require.NoError(t, err)

	_, err = svc.RetrySave(ctx, userID)
	assert.ErrorIs(t, err, quiz.ErrSessionNotActive)
}

func TestStartQuizReplacesPreviousSession(t *testing.T) {
	users := &fakeUsers{users: map[uint]*model.User{userID: testUser(userID)}}
	sessions := newMemorySessions()
	svc := newTestService(users, &fakeAssessments{}, sessions, llm.NewMock(quizResponse(t, 2), quizResponse(t, 3)))
	ctx := context.Background()

	_, err := svc.StartQuiz(ctx, userID, quiz.CategoryTechnical)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, userID, 0, "A")
	require.NoError(t, err)

	sess, err := svc.StartQuiz(ctx, userID, quiz.CategoryTechnical)
	require.NoError(t, err)
	assert.Len(t, sess.Questions, 3)
	assert.Equal(t, 0, sess.Current)
	assert.False(t, sess.Answers[0].Answered)
}

func TestHistory(t *testing.T) {
	users := &fakeUsers{users: map[uint]*model.User{userID: testUser(userID)}}
	assessments := &fakeAssessments{}
	svc := newTestService(users, assessments, newMemorySessions(), llm.NewMock(quizResponse(t, 1)))

	runQuiz(t, svc, []string{"B"})

	history, err := svc.History(userID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 100.0, history[0].QuizScore)

	other, err := svc.History(42)
	require.NoError(t, err)
	assert.Empty(t, other)
}
