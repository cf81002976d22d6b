package quiz

import (
	"math"
	"strings"
)

// Score computes the percentage correct and per-question detail for a
// finished sheet. Correctness is exact string equality with the option
// text as generated: case-sensitive, no trimming. Unanswered slots are
// incorrect.
func Score(set QuestionSet, sheet AnswerSheet) (*ScoreResult, error) {
	if len(sheet) != len(set) {
		return nil, ErrLengthMismatch
	}

	result := &ScoreResult{
		PerQuestion: make([]QuestionResult, len(set)),
	}

	for i, q := range set {
		a := sheet[i]
		correct := a.Answered && a.Selected == q.CorrectAnswer
		if correct {
			result.CorrectCount++
		}
		result.PerQuestion[i] = QuestionResult{
			Question:      q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    a.Selected,
			IsCorrect:     correct,
			Explanation:   q.Explanation,
			Category:      q.Category,
		}
	}

	// math.Round is half-away-from-zero. The rounded value is what gets
	// persisted and displayed, so the policy must stay deterministic.
	result.Percentage = math.Round(100 * float64(result.CorrectCount) / float64(len(set)))
	result.CategoryLabel = categoryLabel(set)

	return result, nil
}

// categoryLabel derives the display label from the distinct categories
// present, capitalized and joined with " & " in first-encountered order.
func categoryLabel(set QuestionSet) string {
	seen := make(map[Category]bool)
	var labels []string
	for _, q := range set {
		if seen[q.Category] {
			continue
		}
		seen[q.Category] = true
		labels = append(labels, capitalize(string(q.Category)))
	}
	return strings.Join(labels, " & ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
