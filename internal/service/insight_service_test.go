package service

import (
	"context"
	"testing"
	"time"

	"career_coach_backend/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insightJSON = `{
  "salaryRanges": [{"role": "Backend Engineer", "min": 90000, "max": 180000, "median": 130000, "location": "Remote"}],
  "growthRate": 12.5,
  "demandLevel": "High",
  "topSkills": ["Go", "Kubernetes"],
  "marketOutlook": "Positive",
  "keyTrends": ["AI tooling"],
  "recommendedSkills": ["System design"]
}`

func TestParseInsightPayload(t *testing.T) {
	p, err := parseInsightPayload("```json\n" + insightJSON + "\n```")
	require.NoError(t, err)

	assert.Equal(t, 12.5, p.GrowthRate)
	assert.Equal(t, "High", p.DemandLevel)
	assert.Equal(t, "Positive", p.MarketOutlook)
	assert.NotEmpty(t, p.SalaryRanges)
}

func TestParseInsightPayloadRejectsBadResponses(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "The market looks great!"},
		{"missing salary ranges", `{"salaryRanges": [], "demandLevel": "High", "marketOutlook": "Positive"}`},
		{"missing demand level", `{"salaryRanges": [{"role": "x"}], "marketOutlook": "Positive"}`},
		{"missing market outlook", `{"salaryRanges": [{"role": "x"}], "demandLevel": "High"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseInsightPayload(tc.raw)
			assert.Error(t, err)
		})
	}
}

func TestInsightGenerate(t *testing.T) {
	mock := llm.NewMock(insightJSON)
	svc := &InsightService{Completer: mock}

	insight, err := svc.Generate(context.Background(), "software engineering")
	require.NoError(t, err)

	assert.Equal(t, "software engineering", insight.Industry)
	assert.Equal(t, 12.5, insight.GrowthRate)
	assert.Equal(t, "High", insight.DemandLevel)
	assert.WithinDuration(t, time.Now().Add(refreshInterval), insight.NextUpdate, time.Minute)

	require.Equal(t, 1, mock.CallCount())
	assert.Contains(t, mock.Calls[0], "software engineering industry")
}
