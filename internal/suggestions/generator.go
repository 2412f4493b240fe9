package suggestions

import (
	"fmt"
	"strings"

	"github.com/spigell/resume-matcher/internal/keywords"
	"github.com/spigell/resume-matcher/internal/lexicon"
	"github.com/spigell/resume-matcher/internal/reconcile"
	"github.com/spigell/resume-matcher/internal/scoring"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default per-category limits.
const (
	DefaultMaxTechnical  = 8
	DefaultMaxSoftSkills = 4
	DefaultMaxIndustry   = 3
	DefaultMaxAdvantages = 3
	atsKeywordLimit      = 5
)

// Options limits how many missing keywords of each category become
// suggestions. Zero values fall back to the defaults.
type Options struct {
	MaxTechnical  int `mapstructure:"max-technical" validate:"gte=0"`
	MaxSoftSkills int `mapstructure:"max-soft-skills" validate:"gte=0"`
	MaxIndustry   int `mapstructure:"max-industry" validate:"gte=0"`
	MaxAdvantages int `mapstructure:"max-advantages" validate:"gte=0"`
}

func (o Options) withDefaults() Options {
	if o.MaxTechnical <= 0 {
		o.MaxTechnical = DefaultMaxTechnical
	}
	if o.MaxSoftSkills <= 0 {
		o.MaxSoftSkills = DefaultMaxSoftSkills
	}
	if o.MaxIndustry <= 0 {
		o.MaxIndustry = DefaultMaxIndustry
	}
	if o.MaxAdvantages <= 0 {
		o.MaxAdvantages = DefaultMaxAdvantages
	}
	return o
}

// Generator is stateless and safe for concurrent use.
type Generator struct {
	lexicon *lexicon.Lexicon
	opts    Options
}

func NewGenerator(lex *lexicon.Lexicon, opts Options) *Generator {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Generator{lexicon: lex, opts: opts.withDefaults()}
}

// Generate returns suggestions in a fixed order: technical gaps (critical,
// then high, then medium), soft skills, industry terms, competitive
// advantage, the ATS summary and the structural advice that always closes
// the list.
func (g *Generator) Generate(rec reconcile.Result, score scoring.Result, sourceText, targetText string) []Suggestion {
	// cases.Caser is stateful, one per call.
	title := cases.Title(language.English)
	gaps := g.Gaps(rec, sourceText)

	var out []Suggestion

	for _, gap := range head(gaps[keywords.Technical], g.opts.MaxTechnical) {
		out = append(out, Suggestion{
			Category:    CategoryTechnical,
			Priority:    gap.Priority,
			Title:       fmt.Sprintf("Add %s Experience", title.String(gap.Keyword)),
			Description: requiredDescription(gap.Frequency),
			Keywords:    []string{gap.Keyword},
			Action:      gap.Suggestion,
			Example:     technicalExample(gap.Keyword),
			Placement:   []string{"Skills", "Experience", "Projects"},
		})
	}

	for _, gap := range head(gaps[keywords.SoftSkills], g.opts.MaxSoftSkills) {
		out = append(out, Suggestion{
			Category:    CategorySoftSkills,
			Priority:    High,
			Title:       fmt.Sprintf("Demonstrate %s Skills", title.String(gap.Keyword)),
			Description: fmt.Sprintf("Employer values %s; show evidence in your experience", gap.Keyword),
			Keywords:    []string{gap.Keyword},
			Action:      gap.Suggestion,
			Example:     softSkillExample(gap.Keyword),
			Placement:   []string{"Experience", "Summary"},
		})
	}

	for _, gap := range head(gaps[keywords.Other], g.opts.MaxIndustry) {
		out = append(out, Suggestion{
			Category:    CategoryIndustry,
			Priority:    Medium,
			Title:       fmt.Sprintf("Include Industry Keyword: %s", title.String(gap.Keyword)),
			Description: fmt.Sprintf("%s shows domain knowledge but is absent from your resume.", gap.Keyword),
			Keywords:    []string{gap.Keyword},
			Action:      gap.Suggestion,
			Example:     fmt.Sprintf("Demonstrated expertise in %s through practical application.", gap.Keyword),
			Placement:   []string{"Skills", "Experience"},
		})
	}

	if advantage, ok := g.advantage(rec, targetText); ok {
		out = append(out, advantage)
	}

	if ats, ok := atsSummary(gaps, score); ok {
		out = append(out, ats)
	}

	return append(out, structural())
}

func (g *Generator) advantage(rec reconcile.Result, targetText string) (Suggestion, bool) {
	strengths := g.Strengths(rec, targetText)[keywords.Technical]
	if len(strengths) == 0 {
		return Suggestion{}, false
	}

	top := make([]string, 0, g.opts.MaxAdvantages)
	for _, s := range head(strengths, g.opts.MaxAdvantages) {
		top = append(top, s.Keyword)
	}
	list := strings.Join(top, ", ")

	return Suggestion{
		Category:    CategoryCompetitive,
		Priority:    Medium,
		Title:       "Leverage Your Additional Technical Skills",
		Description: fmt.Sprintf("You have %d additional technical skills not required by this job description.", len(strengths)),
		Keywords:    top,
		Action:      fmt.Sprintf("Highlight these additional skills (%s) to differentiate yourself from other candidates.", list),
		Example:     fmt.Sprintf("Additional expertise in %s provides versatility for complex projects.", list),
		Placement:   []string{"Skills", "Summary"},
	}, true
}

func atsSummary(gaps map[keywords.Category][]Gap, score scoring.Result) (Suggestion, bool) {
	var all []Gap
	for _, c := range keywords.Categories {
		all = append(all, gaps[c]...)
	}
	if len(all) == 0 {
		return Suggestion{}, false
	}

	var critical []string
	for _, gap := range all {
		if gap.Priority == Critical && len(critical) < atsKeywordLimit {
			critical = append(critical, gap.Keyword)
		}
	}

	priority := High
	listed := critical
	if len(critical) > 0 {
		priority = Critical
	} else {
		for _, gap := range head(all, atsKeywordLimit) {
			listed = append(listed, gap.Keyword)
		}
	}

	return Suggestion{
		Category: CategoryATS,
		Priority: priority,
		Title:    "ATS Optimization - Missing Keywords",
		Description: fmt.Sprintf("%d missing keywords detected that ATS systems scan for; current overall match is %.2f%%.",
			len(all), score.Overall),
		Keywords:  listed,
		Action:    "Strategically integrate these missing keywords throughout your resume to pass ATS screening.",
		Example:   fmt.Sprintf("Developed applications using %s following industry best practices.", strings.Join(listed, ", ")),
		Placement: []string{"Skills", "Experience", "Summary"},
	}, true
}

func structural() Suggestion {
	return Suggestion{
		Category:    CategoryStructure,
		Priority:    Medium,
		Title:       "Add Quantifiable Metrics",
		Description: "Quantified achievements make your resume more impactful and memorable.",
		Keywords:    []string{"metrics", "results", "impact"},
		Action:      "Convert generic statements to quantified achievements (e.g., 'Improved system performance by 40%' instead of 'Improved system performance').",
		Example:     "Increased application performance by 35% through code optimization and database tuning.",
		Placement:   []string{"Experience"},
	}
}

func head[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func requiredDescription(frequency int) string {
	switch frequency {
	case 0:
		return "Required skill detected in the job description"
	case 1:
		return "Required skill mentioned once in the job description"
	default:
		return fmt.Sprintf("Required skill mentioned %d times in the job description", frequency)
	}
}
