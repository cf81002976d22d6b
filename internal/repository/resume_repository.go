package repository

import (
	"career_coach_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResumeRepository struct {
	DB *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{DB: db}
}

func (r *ResumeRepository) FindByUser(userID uint) (*model.Resume, error) {
	var resume model.Resume
	err := r.DB.Where("user_id = ?", userID).First(&resume).Error
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// Upsert creates the user's resume or replaces its content; one row per
// user.
func (r *ResumeRepository) Upsert(resume *model.Resume) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "ats_score", "feedback", "updated_at"}),
	}).Create(resume).Error
}
