package model

import "encoding/json"

// Assessment is the persisted, immutable record of one completed
// interview quiz attempt. Questions holds the denormalized per-question
// detail frozen at save time; the record is never updated afterwards.
// swagger:model Assessment
type Assessment struct {
	BaseModel
	UserID         uint            `gorm:"index;not null" json:"userId"`
	QuizScore      float64         `gorm:"not null" json:"quizScore"`
	Questions      json.RawMessage `gorm:"type:json" json:"questions"`
	Category       string          `gorm:"size:100;not null" json:"category"`
	ImprovementTip string          `gorm:"type:text" json:"improvementTip"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Assessment) TableName() string {
	return "assessments"
}
