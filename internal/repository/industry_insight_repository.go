package repository

import (
	"career_coach_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type IndustryInsightRepository struct {
	DB *gorm.DB
}

func NewIndustryInsightRepository(db *gorm.DB) *IndustryInsightRepository {
	return &IndustryInsightRepository{DB: db}
}

func (r *IndustryInsightRepository) FindByIndustry(industry string) (*model.IndustryInsight, error) {
	var insight model.IndustryInsight
	err := r.DB.Where("industry = ?", industry).First(&insight).Error
	if err != nil {
		return nil, err
	}
	return &insight, nil
}

func (r *IndustryInsightRepository) Create(insight *model.IndustryInsight) error {
	return r.DB.Create(insight).Error
}

func (r *IndustryInsightRepository) Update(insight *model.IndustryInsight) error {
	return r.DB.Save(insight).Error
}

// ListDue returns every insight whose scheduled refresh time has
// passed.
func (r *IndustryInsightRepository) ListDue(now time.Time) ([]model.IndustryInsight, error) {
	var insights []model.IndustryInsight
	err := r.DB.Where("next_update <= ?", now).Find(&insights).Error
	return insights, err
}
