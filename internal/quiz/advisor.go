package quiz

import (
	"career_coach_backend/internal/llm"
	"context"
	"fmt"
	"strings"
)

// Advisor turns incorrect answers into a remediation tip through the
// completion service. Advice is best-effort: callers degrade to an
// empty tip on failure rather than aborting the assessment.
type Advisor struct {
	completer llm.Completer
}

func NewAdvisor(completer llm.Completer) *Advisor {
	return &Advisor{completer: completer}
}

// Advise returns normalized improvement advice for the given incorrect
// answers. An empty input returns an empty string without touching the
// completion service.
func (a *Advisor) Advise(ctx context.Context, industry string, incorrect []QuestionResult) (string, error) {
	if len(incorrect) == 0 {
		return "", nil
	}

	ctx = llm.WithPurpose(ctx, "improve-tip")

	raw, err := a.completer.Complete(ctx, buildAdvicePrompt(industry, incorrect))
	if err != nil {
		return "", fmt.Errorf("remediation advice: %w", err)
	}

	return normalizeAdvice(raw), nil
}

func buildAdvicePrompt(industry string, incorrect []QuestionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The user got the following %s interview questions wrong:\n\n", industry)
	for _, q := range incorrect {
		fmt.Fprintf(&b, "Question: %q\nCorrect Answer: %q\nExplanation: %q\n\n",
			q.Question, q.CorrectAnswer, q.Explanation)
	}

	b.WriteString(`Based on these mistakes, provide 3-4 numbered, actionable improvement tips.
Each tip must start with a lead action phrase, include one concrete example or method, and suggest one resource.
Keep the response under 150 words and do not use any markdown emphasis markers (no asterisks or underscores).
Do not explicitly mention the mistakes; focus on what to learn and practice.`)

	return b.String()
}

// normalizeAdvice strips emphasis markup and trims whitespace. The
// numbered-list structure itself is not re-validated; the text is
// treated as opaque advisory content.
func normalizeAdvice(s string) string {
	s = strings.NewReplacer("**", "", "__", "", "*", "").Replace(s)
	return strings.TrimSpace(s)
}
