package model

import (
	"encoding/json"
	"time"
)

// IndustryInsight is the cached AI-generated analysis of one industry.
// One row per industry, shared by every user in that industry. Created
// on first onboarding into the industry, refreshed by the background
// scheduler once NextUpdate has passed.
// swagger:model IndustryInsight
type IndustryInsight struct {
	BaseModel
	Industry          string          `gorm:"size:100;uniqueIndex;not null" json:"industry"`
	SalaryRanges      json.RawMessage `gorm:"type:json" json:"salaryRanges"`
	GrowthRate        float64         `json:"growthRate"`
	DemandLevel       string          `gorm:"size:20" json:"demandLevel"`
	TopSkills         json.RawMessage `gorm:"type:json" json:"topSkills"`
	MarketOutlook     string          `gorm:"size:20" json:"marketOutlook"`
	KeyTrends         json.RawMessage `gorm:"type:json" json:"keyTrends"`
	RecommendedSkills json.RawMessage `gorm:"type:json" json:"recommendedSkills"`
	LastUpdated       time.Time       `json:"lastUpdated"`
	NextUpdate        time.Time       `gorm:"index" json:"nextUpdate"`
}

func (IndustryInsight) TableName() string {
	return "industry_insights"
}
