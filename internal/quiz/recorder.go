package quiz

import (
	"career_coach_backend/internal/model"
	"encoding/json"
	"fmt"
)

// AssessmentStore is the durable storage boundary for assessment
// records. The quiz engine only ever creates; history accumulates.
type AssessmentStore interface {
	Create(a *model.Assessment) error
}

// Recorder assembles and persists the final assessment record.
type Recorder struct {
	store AssessmentStore
}

func NewRecorder(store AssessmentStore) *Recorder {
	return &Recorder{store: store}
}

// Record writes one new immutable assessment from a completed score.
// This is a pure create: every completed quiz produces exactly one new
// record, fully populated or not at all.
func (r *Recorder) Record(userID uint, result *ScoreResult, improvementTip string) (*model.Assessment, error) {
	detail, err := json.Marshal(result.PerQuestion)
	if err != nil {
		return nil, fmt.Errorf("encode assessment detail: %w", err)
	}

	a := &model.Assessment{
		UserID:         userID,
		QuizScore:      result.Percentage,
		Questions:      detail,
		Category:       result.CategoryLabel,
		ImprovementTip: improvementTip,
	}

	if err := r.store.Create(a); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}
	return a, nil
}
