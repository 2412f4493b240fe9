package suggestions

import (
	"sort"
	"strings"

	"github.com/spigell/resume-matcher/internal/keywords"
	"github.com/spigell/resume-matcher/internal/lexicon"
	"github.com/spigell/resume-matcher/internal/reconcile"
)

const (
	maxImportance = 5
	// leading characters of a job description treated as its title and summary.
	headLength = 500
)

var requirementMarkers = []string{"requirements", "qualifications", "must have"}

// Gap is a missing keyword with the signals used to rank it.
type Gap struct {
	Keyword    string            `json:"keyword"`
	Category   keywords.Category `json:"category"`
	Frequency  int               `json:"frequency"`
	Importance int               `json:"importance"`
	Priority   Priority          `json:"priority"`
	Suggestion string            `json:"suggestion"`
}

// Strength is an extra keyword the résumé can lean on.
type Strength struct {
	Keyword          string            `json:"keyword"`
	Category         keywords.Category `json:"category"`
	Frequency        int               `json:"frequency"`
	CompetitiveValue string            `json:"competitive_value"`
	Suggestion       string            `json:"suggestion"`
}

// Frequency counts case-insensitive, non-overlapping substring
// occurrences of kw in text.
func Frequency(kw, text string) int {
	kw = strings.ToLower(strings.TrimSpace(kw))
	if kw == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), kw)
}

// Importance scores a missing keyword from 1 to 5: frequency in the job
// description, position near its head or inside its requirements, and the
// critical lexicon tier.
func Importance(kw, text string, frequency int, tier lexicon.Priority) int {
	importance := 1

	switch {
	case frequency >= 3:
		importance += 2
	case frequency >= 2:
		importance++
	}

	if inPriorityPosition(strings.ToLower(kw), strings.ToLower(text)) {
		importance++
	}

	if tier == lexicon.PriorityCritical {
		importance++
	}

	return min(importance, maxImportance)
}

func inPriorityPosition(kw, text string) bool {
	if kw == "" {
		return false
	}

	head := text
	if len(head) > headLength {
		head = head[:headLength]
	}
	if strings.Contains(head, kw) {
		return true
	}

	for _, marker := range requirementMarkers {
		if i := strings.Index(text, marker); i >= 0 && strings.Contains(text[i+len(marker):], kw) {
			return true
		}
	}
	return false
}

// priorityOf buckets importance and lifts the result to the lexicon tier.
func priorityOf(importance int, tier lexicon.Priority) Priority {
	p := Medium
	switch {
	case importance >= 3:
		p = Critical
	case importance >= 2:
		p = High
	}

	var floor Priority
	switch tier {
	case lexicon.PriorityCritical:
		floor = Critical
	case lexicon.PriorityHigh:
		floor = High
	default:
		return p
	}
	if floor.Rank() < p.Rank() {
		return floor
	}
	return p
}

// Gaps analyses every missing keyword against the job description. Each
// category is ordered by priority, importance, frequency, then keyword.
func (g *Generator) Gaps(rec reconcile.Result, sourceText string) map[keywords.Category][]Gap {
	out := make(map[keywords.Category][]Gap, len(keywords.Categories))

	for _, c := range keywords.Categories {
		missing := rec.Category(c).Missing
		gaps := make([]Gap, 0, len(missing))
		for _, kw := range missing {
			tier := g.lexicon.PriorityOf(kw)
			frequency := Frequency(kw, sourceText)
			importance := Importance(kw, sourceText, frequency, tier)

			gap := Gap{
				Keyword:    kw,
				Category:   c,
				Frequency:  frequency,
				Importance: importance,
				Priority:   priorityOf(importance, tier),
			}
			switch c {
			case keywords.Technical:
				gap.Suggestion = technicalAction(kw, sourceText)
			case keywords.SoftSkills:
				gap.Suggestion = softSkillAction(kw, sourceText)
			default:
				gap.Suggestion = industryAction(kw)
			}
			gaps = append(gaps, gap)
		}

		sort.SliceStable(gaps, func(i, j int) bool {
			a, b := gaps[i], gaps[j]
			if a.Priority.Rank() != b.Priority.Rank() {
				return a.Priority.Rank() < b.Priority.Rank()
			}
			if a.Importance != b.Importance {
				return a.Importance > b.Importance
			}
			if a.Frequency != b.Frequency {
				return a.Frequency > b.Frequency
			}
			return a.Keyword < b.Keyword
		})
		out[c] = gaps
	}

	return out
}

// Competitive values of extra keywords.
const (
	ValueHigh   = "high"
	ValueMedium = "medium"
	ValueLow    = "low"
)

var competitiveValues = map[string]string{
	"machine learning": ValueHigh,
	"ai":               ValueHigh,
	"blockchain":       ValueHigh,
	"kubernetes":       ValueHigh,
	"microservices":    ValueHigh,
	"llm":              ValueHigh,
	"docker":           ValueMedium,
	"aws":              ValueMedium,
	"azure":            ValueMedium,
	"gcp":              ValueMedium,
	"devops":           ValueMedium,
	"ci/cd":            ValueMedium,
	"terraform":        ValueMedium,
}

// CompetitiveValue rates how much an extra keyword differentiates a résumé.
func CompetitiveValue(kw string) string {
	if v, ok := competitiveValues[keywords.Normalize(kw)]; ok {
		return v
	}
	return ValueLow
}

func valueRank(v string) int {
	switch v {
	case ValueHigh:
		return 0
	case ValueMedium:
		return 1
	default:
		return 2
	}
}

// Strengths analyses every extra keyword against the résumé. Each category
// is ordered by competitive value, then keyword.
func (g *Generator) Strengths(rec reconcile.Result, targetText string) map[keywords.Category][]Strength {
	out := make(map[keywords.Category][]Strength, len(keywords.Categories))

	for _, c := range keywords.Categories {
		extra := rec.Category(c).Extra
		strengths := make([]Strength, 0, len(extra))
		for _, kw := range extra {
			strengths = append(strengths, Strength{
				Keyword:          kw,
				Category:         c,
				Frequency:        Frequency(kw, targetText),
				CompetitiveValue: CompetitiveValue(kw),
				Suggestion:       "Leverage your " + kw + " expertise as a differentiator",
			})
		}

		sort.SliceStable(strengths, func(i, j int) bool {
			a, b := strengths[i], strengths[j]
			if valueRank(a.CompetitiveValue) != valueRank(b.CompetitiveValue) {
				return valueRank(a.CompetitiveValue) < valueRank(b.CompetitiveValue)
			}
			return a.Keyword < b.Keyword
		})
		out[c] = strengths
	}

	return out
}
