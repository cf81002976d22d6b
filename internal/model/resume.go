package model

// Resume holds a user's single resume as markdown. One row per user,
// upserted on save.
// swagger:model Resume
type Resume struct {
	BaseModel
	UserID   uint     `gorm:"uniqueIndex;not null" json:"userId"`
	Content  string   `gorm:"type:text;not null" json:"content"`
	AtsScore *float64 `json:"atsScore,omitempty"`
	Feedback string   `gorm:"type:text" json:"feedback"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Resume) TableName() string {
	return "resumes"
}
