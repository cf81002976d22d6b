package model

// swagger:model CoverLetter
type CoverLetter struct {
	UUIDBase
	UserID         uint   `gorm:"index;not null" json:"userId"`
	Content        string `gorm:"type:text;not null" json:"content"`
	JobTitle       string `gorm:"size:255;not null" json:"jobTitle"`
	CompanyName    string `gorm:"size:255;not null" json:"companyName"`
	JobDescription string `gorm:"type:text" json:"jobDescription"`
	Status         string `gorm:"size:20;default:'completed'" json:"status"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (CoverLetter) TableName() string {
	return "cover_letters"
}
