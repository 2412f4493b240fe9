// Package suggestions converts a reconciliation into an ordered list of
// résumé improvements.
package suggestions

import (
	"fmt"
	"strings"
)

// Priority of a suggestion. Lower rank is more urgent.
type Priority string

const (
	Critical Priority = "critical"
	High     Priority = "high"
	Medium   Priority = "medium"
	Low      Priority = "low"
)

// Rank orders priorities from critical (0) to low (3). Unknown values rank last.
func (p Priority) Rank() int {
	switch p {
	case Critical:
		return 0
	case High:
		return 1
	case Medium:
		return 2
	case Low:
		return 3
	default:
		return 4
	}
}

func ParsePriority(name string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(name)))
	if p.Rank() > Low.Rank() {
		return "", fmt.Errorf("unknown suggestion priority %q", name)
	}
	return p, nil
}

// Suggestion categories.
const (
	CategoryTechnical   = "technical_skills"
	CategorySoftSkills  = "soft_skills"
	CategoryIndustry    = "industry_keywords"
	CategoryCompetitive = "competitive_advantage"
	CategoryATS         = "ats_optimization"
	CategoryStructure   = "structure"
)

// Categories lists suggestion categories in emission order.
var Categories = []string{
	CategoryTechnical,
	CategorySoftSkills,
	CategoryIndustry,
	CategoryCompetitive,
	CategoryATS,
	CategoryStructure,
}

// Suggestion is one actionable recommendation.
type Suggestion struct {
	Category    string   `json:"category"`
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Action      string   `json:"action"`
	Example     string   `json:"example,omitempty"`
	Placement   []string `json:"placement,omitempty"`
}
