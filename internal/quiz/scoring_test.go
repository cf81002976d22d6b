package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSet(n int, category Category) QuestionSet {
	set := make(QuestionSet, n)
	for i := range set {
		set[i] = Question{
			Text:          fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "B",
			Explanation:   "B is the right call here.",
			Category:      category,
		}
	}
	return set
}

func answerAll(n int, selected string) AnswerSheet {
	sheet := NewAnswerSheet(n)
	for i := range sheet {
		sheet[i] = Answer{Selected: selected, Answered: true}
	}
	return sheet
}

func TestScoreAllCorrect(t *testing.T) {
	set := makeSet(10, CategoryTechnical)
	result, err := Score(set, answerAll(10, "B"))
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.Percentage)
	assert.Equal(t, 10, result.CorrectCount)
	assert.Equal(t, "Technical", result.CategoryLabel)
	assert.Len(t, result.PerQuestion, 10)
	assert.Empty(t, result.Incorrect())
}

func TestScoreOneWrong(t *testing.T) {
	set := makeSet(10, CategoryBehavioral)
	sheet := answerAll(10, "B")
	sheet[3] = Answer{Selected: "A", Answered: true}

	result, err := Score(set, sheet)
	require.NoError(t, err)

	assert.Equal(t, 90.0, result.Percentage)
	assert.Equal(t, 9, result.CorrectCount)

	incorrect := result.Incorrect()
	require.Len(t, incorrect, 1)
	assert.Equal(t, "Question 4?", incorrect[0].Question)
	assert.Equal(t, "A", incorrect[0].UserAnswer)
	assert.Equal(t, "B", incorrect[0].CorrectAnswer)
	assert.False(t, incorrect[0].IsCorrect)
}

func TestScoreRoundsHalfAwayFromZero(t *testing.T) {
	// 1 of 8 correct is 12.5%, which rounds to 13.
	set := makeSet(8, CategoryTechnical)
	sheet := answerAll(8, "A")
	sheet[0] = Answer{Selected: "B", Answered: true}

	result, err := Score(set, sheet)
	require.NoError(t, err)
	assert.Equal(t, 13.0, result.Percentage)
}

func TestScoreUnansweredIsIncorrect(t *testing.T) {
	set := makeSet(2, CategoryTechnical)
	sheet := NewAnswerSheet(2)
	sheet[0] = Answer{Selected: "B", Answered: true}

	result, err := Score(set, sheet)
	require.NoError(t, err)

	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 50.0, result.Percentage)
	assert.False(t, result.PerQuestion[1].IsCorrect)
	assert.Empty(t, result.PerQuestion[1].UserAnswer)
}

func TestScoreIsCaseSensitive(t *testing.T) {
	set := makeSet(1, CategoryTechnical)
	result, err := Score(set, answerAll(1, "b"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.CorrectCount)
}

func TestScoreEmptySelectionDistinctFromUnanswered(t *testing.T) {
	set := makeSet(1, CategoryTechnical)
	set[0].CorrectAnswer = ""
	set[0].Options = []string{"", "B", "C", "D"}

	// Answered with the empty string and the empty string is correct.
	sheet := AnswerSheet{{Selected: "", Answered: true}}
	result, err := Score(set, sheet)
	require.NoError(t, err)
	assert.Equal(t, 1, result.CorrectCount)

	// Unanswered is still incorrect even against an empty correct answer.
	result, err = Score(set, NewAnswerSheet(1))
	require.NoError(t, err)
	assert.Equal(t, 0, result.CorrectCount)
}

func TestScoreLengthMismatch(t *testing.T) {
	set := makeSet(10, CategoryTechnical)
	_, err := Score(set, NewAnswerSheet(9))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCategoryLabelMixedCategories(t *testing.T) {
	set := makeSet(4, CategoryTechnical)
	set[1].Category = CategoryBehavioral
	set[3].Category = CategoryBehavioral

	result, err := Score(set, answerAll(4, "B"))
	require.NoError(t, err)
	assert.Equal(t, "Technical & Behavioral", result.CategoryLabel)
}

func TestCategoryLabelFirstEncounterOrder(t *testing.T) {
	set := makeSet(3, CategoryLeadership)
	set[1].Category = CategoryTechnical

	result, err := Score(set, answerAll(3, "B"))
	require.NoError(t, err)
	assert.Equal(t, "Leadership & Technical", result.CategoryLabel)
}
