// Package scoring turns a reconciliation into Jaccard similarities per
// category and a weighted overall score, all on a 0..100 scale.
package scoring

import (
	"math"

	"github.com/spigell/resume-matcher/internal/keywords"
	"github.com/spigell/resume-matcher/internal/reconcile"
)

// Category weights of the overall score. They sum to 1.
const (
	TechnicalWeight  = 0.5
	SoftSkillsWeight = 0.2
	OtherWeight      = 0.3
)

// Result is rounded to two decimals.
type Result struct {
	Technical  float64 `json:"technical"`
	SoftSkills float64 `json:"soft_skills"`
	Other      float64 `json:"other"`
	Overall    float64 `json:"overall"`
}

// Of returns the score of a category.
func (r Result) Of(c keywords.Category) float64 {
	switch c {
	case keywords.Technical:
		return r.Technical
	case keywords.SoftSkills:
		return r.SoftSkills
	case keywords.Other:
		return r.Other
	default:
		return 0
	}
}

// Score computes category similarities and the weighted overall score.
func Score(rec reconcile.Result) Result {
	tech := Similarity(rec.Category(keywords.Technical))
	soft := Similarity(rec.Category(keywords.SoftSkills))
	other := Similarity(rec.Category(keywords.Other))

	return Result{
		Technical:  round2(tech),
		SoftSkills: round2(soft),
		Other:      round2(other),
		Overall:    round2(tech*TechnicalWeight + soft*SoftSkillsWeight + other*OtherWeight),
	}
}

// Similarity is matched / (matched + missing + extra) * 100. Two empty sides
// are a full match, one empty side scores zero.
func Similarity(p reconcile.Partition) float64 {
	switch {
	case p.SourceSize == 0 && p.TargetSize == 0:
		return 100
	case p.SourceSize == 0 || p.TargetSize == 0:
		return 0
	}

	union := len(p.Matched) + len(p.Missing) + len(p.Extra)
	if union == 0 {
		return 0
	}
	return float64(len(p.Matched)) / float64(union) * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
