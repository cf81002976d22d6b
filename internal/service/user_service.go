package service

import (
	"career_coach_backend/internal/model"
	"career_coach_backend/internal/repository"
	"career_coach_backend/internal/util"
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Insights *InsightService
	DB       *gorm.DB
}

func NewUserService(userRepo *repository.UserRepository, insights *InsightService, db *gorm.DB) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Insights: insights,
		DB:       db,
	}
}

type ProfileRequest struct {
	Industry        string   `json:"industry" binding:"required"`
	SubIndustry     string   `json:"subIndustry"`
	ExperienceYears int      `json:"experienceYears"`
	Skills          []string `json:"skills"`
	Bio             string   `json:"bio"`
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile saves the career profile and ensures an industry
// insight exists for the chosen industry, inside one transaction with a
// timeout: the insight is generated only when missing, never
// regenerated here.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req ProfileRequest) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var user model.User
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrUserNotFound
			}
			return err
		}

		var insight model.IndustryInsight
		err := tx.Where("industry = ?", req.Industry).First(&insight).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			generated, gerr := s.Insights.Generate(ctx, req.Industry)
			if gerr != nil {
				return gerr
			}
			if cerr := tx.Create(generated).Error; cerr != nil {
				return cerr
			}
		} else if err != nil {
			return err
		}

		skills, err := json.Marshal(req.Skills)
		if err != nil {
			return err
		}

		user.Industry = req.Industry
		user.SubIndustry = req.SubIndustry
		user.ExperienceYears = req.ExperienceYears
		user.Skills = skills
		user.Bio = req.Bio

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}
