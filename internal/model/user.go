package model

import (
	"encoding/json"
	"time"
)

type UserRole string

const (
	Member UserRole = "member"
	Admin  UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('member','admin');default:'member'" json:"role"`

	// Career profile, filled during onboarding. An empty Industry means
	// the user has not completed onboarding yet.
	Industry        string          `gorm:"size:100;index" json:"industry"`
	SubIndustry     string          `gorm:"size:100" json:"subIndustry"`
	ExperienceYears int             `gorm:"default:0" json:"experienceYears"`
	Skills          json.RawMessage `gorm:"type:json" json:"skills"`
	Bio             string          `gorm:"type:text" json:"bio"`

	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

// SkillList decodes the Skills JSON column. A missing or malformed
// column decodes to an empty list rather than an error.
func (u *User) SkillList() []string {
	if len(u.Skills) == 0 {
		return nil
	}
	var skills []string
	if err := json.Unmarshal(u.Skills, &skills); err != nil {
		return nil
	}
	return skills
}
