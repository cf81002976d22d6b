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

type ResumeService struct {
	Repo      *repository.ResumeRepository
	UserRepo  *repository.UserRepository
	Completer llm.Completer
	Storage   *StorageService
}

func NewResumeService(repo *repository.ResumeRepository, userRepo *repository.UserRepository, completer llm.Completer, storage *StorageService) *ResumeService {
	return &ResumeService{
		Repo:      repo,
		UserRepo:  userRepo,
		Completer: completer,
		Storage:   storage,
	}
}

func (s *ResumeService) Get(userID uint) (*model.Resume, error) {
	resume, err := s.Repo.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResumeNotFound
		}
		return nil, err
	}
	return resume, nil
}

// Save upserts the user's single resume with the given markdown.
func (s *ResumeService) Save(userID uint, content string) (*model.Resume, error) {
	resume := &model.Resume{
		UserID:  userID,
		Content: content,
	}
	if err := s.Repo.Upsert(resume); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// BuildRequest is the structured resume form; the service assembles it
// into markdown before saving.
type BuildRequest struct {
	Contact    util.ContactInfo   `json:"contactInfo"`
	Summary    string             `json:"summary"`
	Skills     string             `json:"skills"`
	Experience []util.ResumeEntry `json:"experience"`
	Education  []util.ResumeEntry `json:"education"`
	Projects   []util.ResumeEntry `json:"projects"`
}

func (s *ResumeService) Build(userID uint, req BuildRequest) (*model.Resume, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	content := util.BuildResumeMarkdown(user.Name, req.Contact, req.Summary, req.Skills,
		req.Experience, req.Education, req.Projects)
	return s.Save(userID, content)
}

type ImproveRequest struct {
	// Type is the kind of entry being improved: "experience",
	// "education" or "project".
	Type    string `json:"type" binding:"required"`
	Current string `json:"current" binding:"required"`
}

func buildImprovePrompt(industry string, skills []string, req ImproveRequest) string {
	skillNote := ""
	if len(skills) > 0 {
		skillNote = fmt.Sprintf(" skilled in %s", strings.Join(skills, ", "))
	}

	return fmt.Sprintf(`As an expert resume writer, improve the following %s description for a %s professional%s.
Make it more impactful, quantifiable, and aligned with industry standards.
Current content: "%s"

Requirements:
1. Use action verbs
2. Include metrics and results where possible
3. Highlight relevant technical skills
4. Keep it concise but detailed
5. Focus on achievements over responsibilities
6. Use industry-specific keywords

Format the response as a single paragraph without any additional text or explanations.`,
		req.Type, industry, skillNote, req.Current)
}

// Improve rewrites a single entry description through the completion
// service. The response is treated as opaque prose.
func (s *ResumeService) Improve(ctx context.Context, userID uint, req ImproveRequest) (string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return "", util.ErrUserNotFound
	}
	if user.Industry == "" {
		return "", util.ErrProfileNotFound
	}

	ctx = llm.WithPurpose(ctx, "resume-improve")

	improved, err := s.Completer.Complete(ctx, buildImprovePrompt(user.Industry, user.SkillList(), req))
	if err != nil {
		return "", fmt.Errorf("improve resume entry: %w", err)
	}

	return strings.TrimSpace(improved), nil
}

// Export uploads the current resume markdown to document storage and
// returns its location.
func (s *ResumeService) Export(ctx context.Context, userID uint) (string, error) {
	resume, err := s.Get(userID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("resumes/%d/resume.md", userID)
	return s.Storage.Upload(ctx, key, []byte(resume.Content), "text/markdown")
}
