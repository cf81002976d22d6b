package service

import (
	"career_coach_backend/internal/config"
	"career_coach_backend/internal/llm"
	"career_coach_backend/internal/model"
	"career_coach_backend/internal/repository"
	"career_coach_backend/internal/util"
	"career_coach_backend/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// refreshInterval is how far out the next scheduled regeneration of an
// insight is placed.
const refreshInterval = 7 * 24 * time.Hour

type InsightService struct {
	Repo      *repository.IndustryInsightRepository
	UserRepo  *repository.UserRepository
	Completer llm.Completer
	RDB       *redis.Client
	cacheTTL  time.Duration
}

func NewInsightService(repo *repository.IndustryInsightRepository, userRepo *repository.UserRepository, completer llm.Completer, rdb *redis.Client, cfg config.InsightsConfig) *InsightService {
	return &InsightService{
		Repo:      repo,
		UserRepo:  userRepo,
		Completer: completer,
		RDB:       rdb,
		cacheTTL:  time.Duration(cfg.CacheTTLMinutes) * time.Minute,
	}
}

func buildInsightPrompt(industry string) string {
	return fmt.Sprintf(`Analyze the current state of the %s industry and provide insights in ONLY the following JSON format without any additional notes or explanations:
{
  "salaryRanges": [{ "role": "string", "min": number, "max": number, "median": number, "location": "string" }],
  "growthRate": number,
  "demandLevel": "High" | "Medium" | "Low",
  "topSkills": ["skill1", "skill2"],
  "marketOutlook": "Positive" | "Neutral" | "Negative",
  "keyTrends": ["trend1", "trend2"],
  "recommendedSkills": ["skill1", "skill2"]
}

IMPORTANT: Return ONLY the JSON. No additional text, notes, or markdown formatting.
Include at least 5 common roles for salary ranges.
Growth rate should be a percentage.
Include at least 5 skills and trends.`, industry)
}

type insightPayload struct {
	SalaryRanges      json.RawMessage `json:"salaryRanges"`
	GrowthRate        float64         `json:"growthRate"`
	DemandLevel       string          `json:"demandLevel"`
	TopSkills         json.RawMessage `json:"topSkills"`
	MarketOutlook     string          `json:"marketOutlook"`
	KeyTrends         json.RawMessage `json:"keyTrends"`
	RecommendedSkills json.RawMessage `json:"recommendedSkills"`
}

func parseInsightPayload(raw string) (*insightPayload, error) {
	cleaned := llm.StripCodeFence(raw)

	var p insightPayload
	if err := json.Unmarshal([]byte(cleaned), &p); err != nil {
		return nil, fmt.Errorf("industry insight response is not valid JSON: %w", err)
	}

	var ranges []json.RawMessage
	if err := json.Unmarshal(p.SalaryRanges, &ranges); err != nil || len(ranges) == 0 {
		return nil, errors.New("industry insight response is missing salary ranges")
	}
	if p.DemandLevel == "" || p.MarketOutlook == "" {
		return nil, errors.New("industry insight response is missing demand level or market outlook")
	}

	return &p, nil
}

// Generate builds a fresh insight for the industry. The result is not
// persisted here; callers decide the transaction boundary.
func (s *InsightService) Generate(ctx context.Context, industry string) (*model.IndustryInsight, error) {
	ctx = llm.WithPurpose(ctx, "industry-insight")

	raw, err := s.Completer.Complete(ctx, buildInsightPrompt(industry))
	if err != nil {
		return nil, fmt.Errorf("generate industry insight: %w", err)
	}

	p, err := parseInsightPayload(raw)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &model.IndustryInsight{
		Industry:          industry,
		SalaryRanges:      p.SalaryRanges,
		GrowthRate:        p.GrowthRate,
		DemandLevel:       p.DemandLevel,
		TopSkills:         p.TopSkills,
		MarketOutlook:     p.MarketOutlook,
		KeyTrends:         p.KeyTrends,
		RecommendedSkills: p.RecommendedSkills,
		LastUpdated:       now,
		NextUpdate:        now.Add(refreshInterval),
	}, nil
}

func insightCacheKey(industry string) string {
	return "insight:" + industry
}

// GetForUser returns the insight for the user's industry, serving from
// the Redis cache when warm.
func (s *InsightService) GetForUser(ctx context.Context, userID uint) (*model.IndustryInsight, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if user.Industry == "" {
		return nil, util.ErrProfileNotFound
	}

	if data, err := s.RDB.Get(ctx, insightCacheKey(user.Industry)).Bytes(); err == nil {
		var insight model.IndustryInsight
		if json.Unmarshal(data, &insight) == nil {
			return &insight, nil
		}
	}

	insight, err := s.Repo.FindByIndustry(user.Industry)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInsightNotFound
		}
		return nil, err
	}

	if data, err := json.Marshal(insight); err == nil {
		s.RDB.Set(ctx, insightCacheKey(user.Industry), data, s.cacheTTL)
	}

	return insight, nil
}

// RefreshDue regenerates every insight past its scheduled update time.
// Called periodically by the background refresher. Individual failures
// are logged and skipped so one bad industry does not starve the rest.
func (s *InsightService) RefreshDue(ctx context.Context) error {
	due, err := s.Repo.ListDue(time.Now())
	if err != nil {
		return err
	}

	for i := range due {
		stale := &due[i]
		fresh, err := s.Generate(ctx, stale.Industry)
		if err != nil {
			logger.Log.Error("insight refresh failed",
				zap.String("industry", stale.Industry), zap.Error(err))
			continue
		}

		stale.SalaryRanges = fresh.SalaryRanges
		stale.GrowthRate = fresh.GrowthRate
		stale.DemandLevel = fresh.DemandLevel
		stale.TopSkills = fresh.TopSkills
		stale.MarketOutlook = fresh.MarketOutlook
		stale.KeyTrends = fresh.KeyTrends
		stale.RecommendedSkills = fresh.RecommendedSkills
		stale.LastUpdated = fresh.LastUpdated
		stale.NextUpdate = fresh.NextUpdate

		if err := s.Repo.Update(stale); err != nil {
			logger.Log.Error("insight refresh save failed",
				zap.String("industry", stale.Industry), zap.Error(err))
			continue
		}

		s.RDB.Del(ctx, insightCacheKey(stale.Industry))
	}

	return nil
}
