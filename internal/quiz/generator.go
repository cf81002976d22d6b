package quiz

import (
	"career_coach_backend/internal/llm"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Generator produces question sets through the text-completion service.
// It has no persistent side effects.
type Generator struct {
	completer llm.Completer
}

func NewGenerator(completer llm.Completer) *Generator {
	return &Generator{completer: completer}
}

var categoryFocus = map[Category]string{
	CategoryTechnical:  "Focus on practical, problem-solving questions that test applied knowledge.",
	CategoryBehavioral: "Focus on past-experience questions in the STAR style (situation, task, action, result).",
	CategoryLeadership: "Focus on team management and decision-making scenarios.",
}

func buildQuizPrompt(profile Profile, category Category) string {
	skills := ""
	if len(profile.Skills) > 0 {
		skills = fmt.Sprintf(" with expertise in %s", strings.Join(profile.Skills, ", "))
	}

	return fmt.Sprintf(`Generate %d %s interview questions for a %s professional%s.

%s

Each question should be multiple choice with %d options.

Return the response in this JSON format only, no additional text:
{
  "questions": [
    {
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correctAnswer": "string",
      "explanation": "string",
      "category": "%s"
    }
  ]
}`,
		QuestionCount, category, profile.Industry, skills,
		categoryFocus[category], OptionCount, category)
}

// Generate builds the prompt, invokes the completion service and
// validates the result into a QuestionSet. Any structural violation is
// a *GenerationError; the caller must not start a session from a
// malformed set.
func (g *Generator) Generate(ctx context.Context, profile Profile, category Category) (QuestionSet, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	raw, err := g.completer.Complete(ctx, buildQuizPrompt(profile, category))
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	return parseQuestionSet(raw, category)
}

func parseQuestionSet(raw string, category Category) (QuestionSet, error) {
	cleaned := llm.StripCodeFence(raw)

	var payload struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &GenerationError{Reason: "response is not valid JSON", Err: err}
	}

	if len(payload.Questions) == 0 {
		return nil, &GenerationError{Reason: "response contains no questions"}
	}

	for i, q := range payload.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return nil, &GenerationError{Reason: fmt.Sprintf("question %d has empty text", i+1)}
		}
		if len(q.Options) != OptionCount {
			return nil, &GenerationError{Reason: fmt.Sprintf("question %d has %d options, want %d", i+1, len(q.Options), OptionCount)}
		}
		if !containsOption(q.Options, q.CorrectAnswer) {
			return nil, &GenerationError{Reason: fmt.Sprintf("question %d correctAnswer is not one of its options", i+1)}
		}
		if strings.TrimSpace(q.Explanation) == "" {
			return nil, &GenerationError{Reason: fmt.Sprintf("question %d has empty explanation", i+1)}
		}
		if payload.Questions[i].Category == "" {
			payload.Questions[i].Category = category
		}
	}

	return QuestionSet(payload.Questions), nil
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
