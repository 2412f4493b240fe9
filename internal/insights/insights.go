// Package insights derives deterministic text metrics that complement the
// keyword match: keyword coverage and density, an ATS compatibility estimate,
// and the experience and education signals of a document.
package insights

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spigell/resume-matcher/internal/keywords"
	"github.com/spigell/resume-matcher/internal/utils"
)

// Experience levels by the largest number of years mentioned.
const (
	LevelEntry  = "entry-level"
	LevelJunior = "junior"
	LevelMid    = "mid-level"
	LevelSenior = "senior"
)

// Experience lists the years of experience a text mentions.
type Experience struct {
	YearsMentioned []int  `json:"years_mentioned"`
	MaxYears       int    `json:"max_years"`
	Level          string `json:"experience_level"`
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*in`),
	regexp.MustCompile(`(?i)experience\s*(?:of\s*)?(\d+)\+?\s*years?`),
}

// AnalyzeExperience collects year counts in pattern order. A phrase matched
// by two patterns is reported twice.
func AnalyzeExperience(text string) Experience {
	exp := Experience{YearsMentioned: []int{}}

	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			years, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			exp.YearsMentioned = append(exp.YearsMentioned, years)
			exp.MaxYears = max(exp.MaxYears, years)
		}
	}

	exp.Level = ClassifyExperience(exp.MaxYears)
	return exp
}

// ClassifyExperience maps years onto a level.
func ClassifyExperience(years int) string {
	switch {
	case years >= 10:
		return LevelSenior
	case years >= 5:
		return LevelMid
	case years >= 2:
		return LevelJunior
	default:
		return LevelEntry
	}
}

// Education levels.
const (
	EducationBachelor      = "bachelor"
	EducationMaster        = "master"
	EducationPhD           = "phd"
	EducationCertification = "certification"
)

var educationPatterns = []struct {
	level   string
	pattern *regexp.Regexp
}{
	{EducationBachelor, regexp.MustCompile(`(?i)\b(?:bachelor|b\.?s\.?|b\.?a\.?|undergraduate)\b`)},
	{EducationMaster, regexp.MustCompile(`(?i)\b(?:master|m\.?s\.?|m\.?a\.?|mba|graduate)\b`)},
	{EducationPhD, regexp.MustCompile(`(?i)\b(?:phd|ph\.?d\.?|doctorate|doctoral)\b`)},
	{EducationCertification, regexp.MustCompile(`(?i)\b(?:certified|certification|certificate)\b`)},
}

// AnalyzeEducation counts mentions per education level. Levels that are not
// mentioned are absent.
func AnalyzeEducation(text string) map[string]int {
	out := make(map[string]int)
	for _, p := range educationPatterns {
		if n := len(p.pattern.FindAllStringIndex(text, -1)); n > 0 {
			out[p.level] = n
		}
	}
	return out
}

// Coverage is the percentage of the job keywords found as substrings of text.
func Coverage(text string, job keywords.Set) float64 {
	all := job.All()
	if len(all) == 0 {
		return 0
	}

	lower := strings.ToLower(text)
	found := 0
	for _, kw := range all {
		if strings.Contains(lower, kw) {
			found++
		}
	}
	return round2(float64(found) / float64(len(all)) * 100)
}

// Density relates job keyword occurrences in a text to its length.
type Density struct {
	Density      float64 `json:"density"`
	KeywordCount int     `json:"keyword_count"`
	TotalWords   int     `json:"total_words"`
}

// KeywordDensity counts substring occurrences of every job keyword in text
// per hundred words.
func KeywordDensity(text string, job keywords.Set) Density {
	words := utils.WordCount(text)
	if words == 0 {
		return Density{}
	}

	lower := strings.ToLower(text)
	count := 0
	for _, kw := range job.All() {
		count += strings.Count(lower, kw)
	}

	return Density{
		Density:      round2(float64(count) / float64(words) * 100),
		KeywordCount: count,
		TotalWords:   words,
	}
}

// Résumé length bounds outside which ATS parsing tends to suffer.
const (
	minResumeWords = 200
	maxResumeWords = 1000
)

// ATSCompatibility starts at 100 and subtracts penalties for résumé length
// and low coverage of the job keywords.
func ATSCompatibility(resumeText string, job keywords.Set) float64 {
	score := 100.0

	switch words := utils.WordCount(resumeText); {
	case words < minResumeWords:
		score -= 10
	case words > maxResumeWords:
		score -= 5
	}

	if !job.IsEmpty() {
		switch coverage := Coverage(resumeText, job); {
		case coverage < 30:
			score -= 20
		case coverage < 50:
			score -= 10
		}
	}

	return max(score, 0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
