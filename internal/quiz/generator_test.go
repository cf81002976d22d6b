package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"career_coach_backend/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionsJSON(t *testing.T, set QuestionSet) string {
	t.Helper()
	data, err := json.Marshal(map[string]QuestionSet{"questions": set})
	require.NoError(t, err)
	return string(data)
}

func TestGenerateValidSet(t *testing.T) {
	set := makeSet(10, CategoryTechnical)
	mock := llm.NewMock("```json\n" + questionsJSON(t, set) + "\n```")
	gen := NewGenerator(mock)

	got, err := gen.Generate(context.Background(), Profile{Industry: "software engineering", Skills: []string{"Go", "SQL"}}, CategoryTechnical)
	require.NoError(t, err)

	assert.Len(t, got, 10)
	assert.Equal(t, set, got)
	assert.Equal(t, 1, mock.CallCount())

	prompt := mock.Calls[0]
	assert.Contains(t, prompt, "software engineering")
	assert.Contains(t, prompt, "Go, SQL")
	assert.Contains(t, prompt, fmt.Sprintf("Generate %d technical interview questions", QuestionCount))
}

func TestGenerateFillsMissingCategory(t *testing.T) {
	set := makeSet(2, "")
	gen := NewGenerator(llm.NewMock(questionsJSON(t, set)))

	got, err := gen.Generate(context.Background(), Profile{Industry: "finance"}, CategoryBehavioral)
	require.NoError(t, err)
	for _, q := range got {
		assert.Equal(t, CategoryBehavioral, q.Category)
	}
}

func TestGenerateMalformedResponses(t *testing.T) {
	valid := makeSet(2, CategoryTechnical)

	badOptions := makeSet(2, CategoryTechnical)
	badOptions[1].Options = []string{"A", "B", "C"}

	strayAnswer := makeSet(2, CategoryTechnical)
	strayAnswer[0].CorrectAnswer = "Z"

	noText := makeSet(1, CategoryTechnical)
	noText[0].Text = "   "

	noExplanation := makeSet(1, CategoryTechnical)
	noExplanation[0].Explanation = ""

	tests := []struct {
		name   string
		raw    string
		reason string
	}{
		{"not json", "Here are your questions!", "not valid JSON"},
		{"truncated json", questionsJSON(t, valid)[:20], "not valid JSON"},
		{"empty set", `{"questions": []}`, "no questions"},
		{"wrong option count", questionsJSON(t, badOptions), "options"},
		{"answer not an option", questionsJSON(t, strayAnswer), "not one of its options"},
		{"blank question text", questionsJSON(t, noText), "empty text"},
		{"blank explanation", questionsJSON(t, noExplanation), "empty explanation"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := NewGenerator(llm.NewMock(tc.raw))
			_, err := gen.Generate(context.Background(), Profile{Industry: "tech"}, CategoryTechnical)

			var genErr *GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Contains(t, genErr.Reason, tc.reason)
		})
	}
}

func TestGenerateTransportError(t *testing.T) {
	mock := llm.NewMock()
	mock.Err = errors.New("upstream unavailable")
	gen := NewGenerator(mock)

	_, err := gen.Generate(context.Background(), Profile{Industry: "tech"}, CategoryTechnical)
	require.Error(t, err)

	// Transport failures are not structural generation errors.
	var genErr *GenerationError
	assert.False(t, errors.As(err, &genErr))
	assert.True(t, strings.Contains(err.Error(), "upstream unavailable"))
}

func TestGenerateUnfencedResponse(t *testing.T) {
	gen := NewGenerator(llm.NewMock(questionsJSON(t, makeSet(1, CategoryTechnical))))
	got, err := gen.Generate(context.Background(), Profile{Industry: "tech"}, CategoryTechnical)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
