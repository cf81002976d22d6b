package quiz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedSession(t *testing.T, n int) *Session {
	t.Helper()
	sess := NewSession()
	require.NoError(t, sess.Start(makeSet(n, CategoryTechnical), CategoryTechnical))
	return sess
}

func TestSessionLifecycle(t *testing.T) {
	sess := startedSession(t, 3)
	assert.Equal(t, StateInProgress, sess.State)
	assert.Equal(t, 0, sess.Current)
	require.NotNil(t, sess.CurrentQuestion())
	assert.Equal(t, "Question 1?", sess.CurrentQuestion().Text)

	require.NoError(t, sess.Answer(0, "B"))
	done, err := sess.Advance()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 1, sess.Current)

	require.NoError(t, sess.Answer(1, "A"))
	done, err = sess.Advance()
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, sess.Answer(2, "B"))
	done, err = sess.Advance()
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, StateCompleted, sess.State)
	assert.Nil(t, sess.CurrentQuestion())
}

func TestSessionAdvanceRequiresAnswer(t *testing.T) {
	sess := startedSession(t, 2)

	done, err := sess.Advance()
	assert.ErrorIs(t, err, ErrIncompleteAnswer)
	assert.False(t, done)
	assert.Equal(t, 0, sess.Current)
	assert.Equal(t, StateInProgress, sess.State)
}

func TestSessionAllowsRevisingAnswers(t *testing.T) {
	sess := startedSession(t, 3)
	require.NoError(t, sess.Answer(0, "A"))
	done, err := sess.Advance()
	require.NoError(t, err)
	require.False(t, done)

	// Back-fill an earlier slot while positioned later.
	require.NoError(t, sess.Answer(0, "B"))
	assert.Equal(t, Answer{Selected: "B", Answered: true}, sess.Answers[0])
	assert.Equal(t, 1, sess.Current)
}

func TestSessionAnswerOutOfRange(t *testing.T) {
	sess := startedSession(t, 2)
	assert.ErrorIs(t, sess.Answer(-1, "B"), ErrLengthMismatch)
	assert.ErrorIs(t, sess.Answer(2, "B"), ErrLengthMismatch)
}

func TestSessionSingleUse(t *testing.T) {
	sess := startedSession(t, 1)
	assert.ErrorIs(t, sess.Start(makeSet(1, CategoryTechnical), CategoryTechnical), ErrSessionUsed)

	require.NoError(t, sess.Answer(0, "B"))
	done, err := sess.Advance()
	require.NoError(t, err)
	require.True(t, done)

	// Completed sessions accept no further transitions.
	assert.ErrorIs(t, sess.Answer(0, "A"), ErrSessionNotActive)
	_, err = sess.Advance()
	assert.ErrorIs(t, err, ErrSessionNotActive)
	assert.ErrorIs(t, sess.Start(makeSet(1, CategoryTechnical), CategoryTechnical), ErrSessionUsed)
}

func TestSessionNotStartedRejectsProgress(t *testing.T) {
	sess := NewSession()
	assert.ErrorIs(t, sess.Answer(0, "B"), ErrSessionNotActive)
	_, err := sess.Advance()
	assert.ErrorIs(t, err, ErrSessionNotActive)
	assert.Nil(t, sess.CurrentQuestion())
}

func TestSessionSurvivesSerialization(t *testing.T) {
	sess := startedSession(t, 3)
	require.NoError(t, sess.Answer(0, "B"))
	done, err := sess.Advance()
	require.NoError(t, err)
	require.False(t, done)
	require.NoError(t, sess.Answer(1, "C"))

	data, err := json.Marshal(sess)
	require.NoError(t, err)

	var restored Session
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, StateInProgress, restored.State)
	assert.Equal(t, 1, restored.Current)
	assert.Equal(t, sess.Answers, restored.Answers)
	assert.Equal(t, sess.Questions, restored.Questions)

	// The restored session continues exactly where it left off.
	done, err = restored.Advance()
	require.NoError(t, err)
	assert.False(t, done)
	require.NoError(t, restored.Answer(2, "B"))
	done, err = restored.Advance()
	require.NoError(t, err)
	assert.True(t, done)
}
