package quiz

import (
	"context"
	"errors"
	"testing"

	"career_coach_backend/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdviseEmptyInputSkipsCompletion(t *testing.T) {
	mock := llm.NewMock()
	advisor := NewAdvisor(mock)

	tip, err := advisor.Advise(context.Background(), "tech", nil)
	require.NoError(t, err)
	assert.Empty(t, tip)
	assert.Equal(t, 0, mock.CallCount())
}

func TestAdvisePromptIncludesMistakes(t *testing.T) {
	mock := llm.NewMock("1. Review indexing strategies with a sample query plan. Try use-the-index-luke.com.")
	advisor := NewAdvisor(mock)

	incorrect := []QuestionResult{{
		Question:      "Which index speeds up this query?",
		CorrectAnswer: "A composite index",
		Explanation:   "Composite indexes cover multi-column predicates.",
	}}

	tip, err := advisor.Advise(context.Background(), "data engineering", incorrect)
	require.NoError(t, err)
	assert.NotEmpty(t, tip)
	require.Equal(t, 1, mock.CallCount())

	prompt := mock.Calls[0]
	assert.Contains(t, prompt, "data engineering")
	assert.Contains(t, prompt, "Which index speeds up this query?")
	assert.Contains(t, prompt, "A composite index")
	assert.Contains(t, prompt, "3-4 numbered")
}

func TestAdviseStripsEmphasisMarkers(t *testing.T) {
	mock := llm.NewMock("  1. **Practice** __daily__ with *real* datasets.\n")
	advisor := NewAdvisor(mock)

	tip, err := advisor.Advise(context.Background(), "tech", []QuestionResult{{Question: "q"}})
	require.NoError(t, err)
	assert.Equal(t, "1. Practice daily with real datasets.", tip)
}

func TestAdvisePropagatesCompletionError(t *testing.T) {
	mock := llm.NewMock()
	mock.Err = errors.New("quota exceeded")
	advisor := NewAdvisor(mock)

	_, err := advisor.Advise(context.Background(), "tech", []QuestionResult{{Question: "q"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
