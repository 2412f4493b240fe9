// Package matching runs the whole pipeline for one résumé and job
// description: extraction of both texts, reconciliation, scoring and
// suggestions.
package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/resume-matcher/internal/extraction"
	"github.com/spigell/resume-matcher/internal/filtering"
	"github.com/spigell/resume-matcher/internal/insights"
	"github.com/spigell/resume-matcher/internal/keywords"
	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/reconcile"
	"github.com/spigell/resume-matcher/internal/scoring"
	"github.com/spigell/resume-matcher/internal/suggestions"
	"github.com/spigell/resume-matcher/internal/utils"
)

// ErrInvalidInput is returned when there is nothing to compare.
var ErrInvalidInput = errors.New("invalid input")

// Request is one comparison. Source is a free-form label used in logs.
type Request struct {
	Source             string `json:"source,omitempty"`
	ResumeText         string `json:"resume_text" validate:"required_without=JobDescriptionText"`
	JobDescriptionText string `json:"job_description_text" validate:"required_without=ResumeText"`
}

// CategoryScores are the per-category similarities in [0,100].
type CategoryScores struct {
	Technical  float64 `json:"technical"`
	SoftSkills float64 `json:"soft_skills"`
	Other      float64 `json:"other"`
}

// Context carries deterministic metrics about the compared texts.
type Context struct {
	ResumeWords         int                 `json:"resume_words"`
	JobDescriptionWords int                 `json:"job_description_words"`
	KeywordCoverage     float64             `json:"keyword_coverage"`
	KeywordDensity      insights.Density    `json:"keyword_density"`
	ATSCompatibility    float64             `json:"ats_compatibility"`
	ResumeExperience    insights.Experience `json:"resume_experience"`
	RequiredExperience  insights.Experience `json:"required_experience"`
	ResumeEducation     map[string]int      `json:"resume_education"`
	RequiredEducation   map[string]int      `json:"required_education"`
}

func textContext(resumeText, jdText string, jd keywords.Set) Context {
	return Context{
		ResumeWords:         utils.WordCount(resumeText),
		JobDescriptionWords: utils.WordCount(jdText),
		KeywordCoverage:     insights.Coverage(resumeText, jd),
		KeywordDensity:      insights.KeywordDensity(resumeText, jd),
		ATSCompatibility:    insights.ATSCompatibility(resumeText, jd),
		ResumeExperience:    insights.AnalyzeExperience(resumeText),
		RequiredExperience:  insights.AnalyzeExperience(jdText),
		ResumeEducation:     insights.AnalyzeEducation(resumeText),
		RequiredEducation:   insights.AnalyzeEducation(jdText),
	}
}

// Result is the outcome of a match.
type Result struct {
	ID               string                                       `json:"id"`
	Source           string                                       `json:"source,omitempty"`
	OverallScore     float64                                      `json:"overall_score"`
	CategoryScores   CategoryScores                               `json:"category_scores"`
	MatchedKeywords  map[keywords.Category][]string               `json:"matched_keywords"`
	MissingKeywords  map[keywords.Category][]string               `json:"missing_keywords"`
	ExtraKeywords    map[keywords.Category][]string               `json:"extra_keywords"`
	Suggestions      []suggestions.Suggestion                     `json:"suggestions"`
	KeywordGaps      map[keywords.Category][]suggestions.Gap      `json:"keyword_gaps"`
	KeywordStrengths map[keywords.Category][]suggestions.Strength `json:"keyword_strengths"`
	Context          Context                                      `json:"context"`

	ResumeKeywords         keywords.Set     `json:"resume_keywords"`
	JobDescriptionKeywords keywords.Set     `json:"job_description_keywords"`
	Reconciliation         reconcile.Result `json:"-"`
}

// Engine is safe for concurrent use once built.
type Engine struct {
	extractor *extraction.Extractor
	generator *suggestions.Generator
	filters   []filtering.Filter
	validate  *validator.Validate
	logger    *zap.Logger
	newID     func() string
}

// New wires an engine. Nil collaborators fall back to lexicon-only defaults.
func New(extractor *extraction.Extractor, generator *suggestions.Generator, filters []filtering.Filter, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if extractor == nil {
		extractor = extraction.New(nil, nil, log)
	}
	if generator == nil {
		generator = suggestions.NewGenerator(extractor.Lexicon(), suggestions.Options{})
	}

	return &Engine{
		extractor: extractor,
		generator: generator,
		filters:   filters,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    log,
		newID:     uuid.NewString,
	}
}

// Match compares req.ResumeText against req.JobDescriptionText. When both
// texts are blank ErrInvalidInput is returned. When only one is blank the
// result is well formed with an empty suggestion list.
func (e *Engine) Match(ctx context.Context, req Request) (*Result, error) {
	req.ResumeText = strings.TrimSpace(req.ResumeText)
	req.JobDescriptionText = strings.TrimSpace(req.JobDescriptionText)

	if err := e.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: résumé and job description are both empty", ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := e.newID()
	log := logger.WithMatchFields(e.logger, id, req.Source)

	jd := e.extractor.ExtractContext(ctx, req.JobDescriptionText)
	resume := e.extractor.ExtractContext(ctx, req.ResumeText)
	rec := reconcile.Reconcile(jd, resume)
	score := scoring.Score(rec)

	log.Debug("keywords reconciled",
		zap.Int("job_description_keywords", jd.Total()),
		zap.Int("resume_keywords", resume.Total()),
		zap.Int("missing", rec.TotalMissing()),
	)

	result := &Result{
		ID:           id,
		Source:       req.Source,
		OverallScore: score.Overall,
		CategoryScores: CategoryScores{
			Technical:  score.Technical,
			SoftSkills: score.SoftSkills,
			Other:      score.Other,
		},
		MatchedKeywords:        rec.Matched(),
		MissingKeywords:        rec.Missing(),
		ExtraKeywords:          rec.Extra(),
		Suggestions:            []suggestions.Suggestion{},
		KeywordGaps:            emptyByCategory[suggestions.Gap](),
		KeywordStrengths:       emptyByCategory[suggestions.Strength](),
		ResumeKeywords:         resume,
		JobDescriptionKeywords: jd,
		Reconciliation:         rec,
		Context:                textContext(req.ResumeText, req.JobDescriptionText, jd),
	}

	if req.ResumeText == "" || req.JobDescriptionText == "" {
		log.Info("one side of the match is empty, skipping suggestions")
		return result, nil
	}

	result.KeywordGaps = e.generator.Gaps(rec, req.JobDescriptionText)
	result.KeywordStrengths = e.generator.Strengths(rec, req.ResumeText)

	generated := e.generator.Generate(rec, score, req.JobDescriptionText, req.ResumeText)
	filtered, err := filtering.Run(ctx, log, e.filters, generated)
	if err != nil {
		return nil, fmt.Errorf("filter suggestions: %w", err)
	}
	result.Suggestions = filtered

	log.Debug("match finished",
		zap.Float64("overall_score", result.OverallScore),
		zap.Int("suggestions", len(filtered)),
		zap.Int("suggestions_filtered", len(generated)-len(filtered)),
	)

	return result, nil
}

func emptyByCategory[T any]() map[keywords.Category][]T {
	out := make(map[keywords.Category][]T, len(keywords.Categories))
	for _, c := range keywords.Categories {
		out[c] = []T{}
	}
	return out
}
