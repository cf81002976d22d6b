package service

import (
	"career_coach_backend/internal/llm"
	"career_coach_backend/internal/model"
	"career_coach_backend/internal/repository"
	"career_coach_backend/internal/util"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type CoverLetterService struct {
	Repo      *repository.CoverLetterRepository
	UserRepo  *repository.UserRepository
	Completer llm.Completer
}

func NewCoverLetterService(repo *repository.CoverLetterRepository, userRepo *repository.UserRepository, completer llm.Completer) *CoverLetterService {
	return &CoverLetterService{
		Repo:      repo,
		UserRepo:  userRepo,
		Completer: completer,
	}
}

type CoverLetterRequest struct {
	JobTitle       string `json:"jobTitle" binding:"required"`
	CompanyName    string `json:"companyName" binding:"required"`
	JobDescription string `json:"jobDescription"`
}

func buildCoverLetterPrompt(user *model.User, req CoverLetterRequest) string {
	return fmt.Sprintf(`Write a professional cover letter for a %s position at %s.

About the candidate:
- Industry: %s
- Years of Experience: %d
- Skills: %s
- Professional Background: %s

Job Description:
%s

Requirements:
1. Use a professional, enthusiastic tone
2. Highlight relevant skills and experience
3. Show understanding of the company's needs
4. Keep it concise (max 400 words)
5. Use proper business letter formatting in markdown
6. Include specific examples of achievements
7. Relate candidate's background to job requirements

Format the letter in markdown.`,
		req.JobTitle, req.CompanyName,
		user.Industry, user.ExperienceYears,
		strings.Join(user.SkillList(), ", "), user.Bio,
		req.JobDescription)
}

func (s *CoverLetterService) Create(ctx context.Context, userID uint, req CoverLetterRequest) (*model.CoverLetter, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if user.Industry == "" {
		return nil, util.ErrProfileNotFound
	}

	ctx = llm.WithPurpose(ctx, "cover-letter")

	content, err := s.Completer.Complete(ctx, buildCoverLetterPrompt(user, req))
	if err != nil {
		return nil, fmt.Errorf("generate cover letter: %w", err)
	}

	cl := &model.CoverLetter{
		UserID:         userID,
		Content:        strings.TrimSpace(content),
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		JobDescription: req.JobDescription,
		Status:         "completed",
	}
	if err := s.Repo.Create(cl); err != nil {
		return nil, err
	}
	return cl, nil
}

func (s *CoverLetterService) List(userID uint) ([]model.CoverLetter, error) {
	return s.Repo.ListByUser(userID)
}

func (s *CoverLetterService) Get(id string, userID uint) (*model.CoverLetter, error) {
	cl, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCoverLetterNotFound
		}
		return nil, err
	}
	if cl.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return cl, nil
}

func (s *CoverLetterService) Delete(id string, userID uint) error {
	if _, err := s.Get(id, userID); err != nil {
		return err
	}
	return s.Repo.Delete(id, userID)
}
