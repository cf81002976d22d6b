package quiz

// Category tags a question's intent.
type Category string

const (
	CategoryTechnical  Category = "technical"
	CategoryBehavioral Category = "behavioral"
	CategoryLeadership Category = "leadership"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnical, CategoryBehavioral, CategoryLeadership:
		return true
	}
	return false
}

// QuestionCount is the fixed size of a generated question set.
const QuestionCount = 10

// OptionCount is the number of choices per question.
const OptionCount = 4

// Question is immutable once generated.
type Question struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Category      Category `json:"category"`
}

// QuestionSet is the ordered batch of questions for one quiz attempt.
// It is generated atomically: either fully present or generation failed.
type QuestionSet []Question

// Answer is one slot of an answer sheet. Answered distinguishes a real
// selection from the unanswered sentinel, so an empty selection can
// never be confused with "not yet answered".
type Answer struct {
	Selected string `json:"selected"`
	Answered bool   `json:"answered"`
}

// AnswerSheet aligns by index with a QuestionSet. All slots start
// unanswered.
type AnswerSheet []Answer

// NewAnswerSheet returns a sheet of n unanswered slots.
func NewAnswerSheet(n int) AnswerSheet {
	return make(AnswerSheet, n)
}

// Profile is the caller-supplied career context for prompt building.
type Profile struct {
	Industry string
	Skills   []string
}

// QuestionResult is the denormalized per-question scoring detail.
type QuestionResult struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"answer"`
	UserAnswer    string   `json:"userAnswer"`
	IsCorrect     bool     `json:"isCorrect"`
	Explanation   string   `json:"explanation"`
	Category      Category `json:"category"`
}

// ScoreResult is derived from a QuestionSet plus AnswerSheet. It is
// recomputed, never cached independently of its inputs.
type ScoreResult struct {
	Percentage    float64          `json:"percentage"`
	CorrectCount  int              `json:"correctCount"`
	CategoryLabel string           `json:"categoryLabel"`
	PerQuestion   []QuestionResult `json:"perQuestion"`
}

// Incorrect returns the subset of results answered wrongly, in order.
func (r *ScoreResult) Incorrect() []QuestionResult {
	var out []QuestionResult
	for _, q := range r.PerQuestion {
		if !q.IsCorrect {
			out = append(out, q)
		}
	}
	return out
}
