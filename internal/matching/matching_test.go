package matching

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-matcher/internal/ai"
	"github.com/spigell/resume-matcher/internal/extraction"
	"github.com/spigell/resume-matcher/internal/filtering"
	"github.com/spigell/resume-matcher/internal/insights"
	"github.com/spigell/resume-matcher/internal/keywords"
	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/schemas"
	"github.com/spigell/resume-matcher/internal/suggestions"
)

const (
	scenarioJD     = "Looking for Python developer with React and SQL experience. Must have leadership and communication skills."
	scenarioResume = "Python developer with JavaScript experience. Strong communication skills."
)

func TestMatchScenario(t *testing.T) {
	res, err := New(nil, nil, nil, nil).Match(context.Background(), Request{
		ResumeText:         scenarioResume,
		JobDescriptionText: scenarioJD,
	})
	require.NoError(t, err)

	_, err = uuid.Parse(res.ID)
	assert.NoError(t, err)

	assert.Equal(t, []string{"python"}, res.MatchedKeywords[keywords.Technical])
	assert.Equal(t, []string{"react", "sql"}, res.MissingKeywords[keywords.Technical])
	assert.Equal(t, []string{"javascript"}, res.ExtraKeywords[keywords.Technical])
	assert.Equal(t, []string{"communication"}, res.MatchedKeywords[keywords.SoftSkills])
	assert.Equal(t, []string{"leadership"}, res.MissingKeywords[keywords.SoftSkills])

	assert.Equal(t, CategoryScores{Technical: 25, SoftSkills: 50, Other: 100}, res.CategoryScores)
	assert.InDelta(t, 52.5, res.OverallScore, 0.001)
	assert.Greater(t, res.OverallScore, 0.0)
	assert.Less(t, res.OverallScore, 100.0)

	var technical, soft bool
	for _, s := range res.Suggestions {
		switch s.Category {
		case suggestions.CategoryTechnical:
			technical = technical || contains(s.Keywords, "react") || contains(s.Keywords, "sql")
		case suggestions.CategorySoftSkills:
			soft = soft || contains(s.Keywords, "leadership")
		}
	}
	assert.True(t, technical, "expected a technical suggestion about react or sql")
	assert.True(t, soft, "expected a soft skill suggestion about leadership")
	assert.Equal(t, "Add Quantifiable Metrics", res.Suggestions[len(res.Suggestions)-1].Title)

	require.Len(t, res.KeywordGaps[keywords.Technical], 2)
	assert.Equal(t, suggestions.Critical, res.KeywordGaps[keywords.Technical][0].Priority)
	require.Len(t, res.KeywordStrengths[keywords.Technical], 1)
	assert.Equal(t, "javascript", res.KeywordStrengths[keywords.Technical][0].Keyword)

	assert.Equal(t, 8, res.Context.ResumeWords)
	assert.Equal(t, 15, res.Context.JobDescriptionWords)
	assert.InDelta(t, 40.0, res.Context.KeywordCoverage, 0.001)
	assert.Equal(t, insights.Density{Density: 25, KeywordCount: 2, TotalWords: 8}, res.Context.KeywordDensity)
	assert.InDelta(t, 80.0, res.Context.ATSCompatibility, 0.001)
	assert.Equal(t, insights.LevelEntry, res.Context.ResumeExperience.Level)
	assert.Empty(t, res.Context.RequiredEducation)
}

func TestMatchContextSignals(t *testing.T) {
	res, err := New(nil, nil, nil, nil).Match(context.Background(), Request{
		ResumeText:         "Go engineer, 6 years of experience. MS in Computer Science, AWS certified.",
		JobDescriptionText: "Senior Go engineer with 10+ years of experience. Bachelor degree required.",
	})
	require.NoError(t, err)

	assert.Equal(t, insights.Experience{YearsMentioned: []int{6}, MaxYears: 6, Level: insights.LevelMid}, res.Context.ResumeExperience)
	assert.Equal(t, insights.Experience{YearsMentioned: []int{10}, MaxYears: 10, Level: insights.LevelSenior}, res.Context.RequiredExperience)
	assert.Equal(t, map[string]int{insights.EducationMaster: 1, insights.EducationCertification: 1}, res.Context.ResumeEducation)
	assert.Equal(t, map[string]int{insights.EducationBachelor: 1}, res.Context.RequiredEducation)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NoError(t, schemas.ValidateResult(data))
}

func TestMatchResultConformsToSchema(t *testing.T) {
	res, err := New(nil, nil, nil, nil).Match(context.Background(), Request{
		ResumeText:         scenarioResume,
		JobDescriptionText: scenarioJD,
	})
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NoError(t, schemas.ValidateResult(data))

	var decoded struct {
		ResumeKeywords keywords.Set `json:"resume_keywords"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.ResumeKeywords.Equal(res.ResumeKeywords))
}

func TestMatchInvalidInput(t *testing.T) {
	_, err := New(nil, nil, nil, nil).Match(context.Background(), Request{ResumeText: " \n", JobDescriptionText: "\t"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestMatchOneSideEmpty(t *testing.T) {
	engine := New(nil, nil, nil, nil)

	tests := []struct {
		name string
		req  Request
	}{
		{name: "empty resume", req: Request{JobDescriptionText: scenarioJD}},
		{name: "empty job description", req: Request{ResumeText: scenarioResume}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := engine.Match(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Empty(t, res.Suggestions)
			assert.NotNil(t, res.Suggestions)
			assert.Equal(t, 0.0, res.CategoryScores.Technical)
			assert.Equal(t, 0.0, res.CategoryScores.SoftSkills)
			// neither side has industry terms
			assert.Equal(t, 100.0, res.CategoryScores.Other)
			assert.Equal(t, 30.0, res.OverallScore)

			data, err := json.Marshal(res)
			require.NoError(t, err)
			assert.NoError(t, schemas.ValidateResult(data))
		})
	}
}

func TestMatchAppliesFilters(t *testing.T) {
	steps := filtering.Steps(filtering.Config{MinPriority: "high", Top: 3})
	res, err := New(nil, nil, steps, nil).Match(context.Background(), Request{
		ResumeText:         scenarioResume,
		JobDescriptionText: scenarioJD,
	})
	require.NoError(t, err)

	require.Len(t, res.Suggestions, 3)
	assert.Equal(t, []string{"react"}, res.Suggestions[0].Keywords)
	assert.Equal(t, []string{"sql"}, res.Suggestions[1].Keywords)
	assert.Equal(t, []string{"leadership"}, res.Suggestions[2].Keywords)
}

func TestMatchFilterError(t *testing.T) {
	steps := filtering.Steps(filtering.Config{ExcludeCategories: []string{"bogus"}})
	_, err := New(nil, nil, steps, nil).Match(context.Background(), Request{
		ResumeText:         scenarioResume,
		JobDescriptionText: scenarioJD,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filter suggestions")
}

func TestMatchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil, nil, nil, nil).Match(ctx, Request{ResumeText: "go", JobDescriptionText: "go"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatchLogsWithMatchFields(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	engine := New(nil, nil, nil, zap.New(core))
	engine.newID = func() string { return "fixed-id" }

	res, err := engine.Match(context.Background(), Request{
		Source:             "backend.txt",
		ResumeText:         scenarioResume,
		JobDescriptionText: scenarioJD,
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", res.ID)

	entries := observed.FilterMessage("match finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "fixed-id", fields[logger.FieldMatchID])
	assert.Equal(t, "backend.txt", fields[logger.FieldSource])
}

func TestMatchUsesEnricher(t *testing.T) {
	enricher := ai.EnricherFunc(func(_ context.Context, text string) (keywords.Set, error) {
		return keywords.Of([]string{"terraform"}, nil, nil), nil
	})
	engine := New(extraction.New(nil, enricher, nil), nil, nil, nil)

	res, err := engine.Match(context.Background(), Request{ResumeText: "Go", JobDescriptionText: "Go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "terraform"}, res.MatchedKeywords[keywords.Technical])
}

func contains(list []string, kw string) bool {
	for _, item := range list {
		if item == kw {
			return true
		}
	}
	return false
}
