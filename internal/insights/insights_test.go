package insights

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spigell/resume-matcher/internal/keywords"
)

func TestAnalyzeExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect Experience
	}{
		{
			name:   "no mention",
			text:   "Python developer with JavaScript experience.",
			expect: Experience{YearsMentioned: []int{}, Level: LevelEntry},
		},
		{
			name:   "years of experience",
			text:   "5+ years of experience with Go",
			expect: Experience{YearsMentioned: []int{5}, MaxYears: 5, Level: LevelMid},
		},
		{
			name:   "pattern order",
			text:   "3 years in fintech and 1 year of experience with Rust",
			expect: Experience{YearsMentioned: []int{1, 3}, MaxYears: 3, Level: LevelJunior},
		},
		{
			name:   "phrase matched twice",
			text:   "Experience of 12 Years in banking",
			expect: Experience{YearsMentioned: []int{12, 12}, MaxYears: 12, Level: LevelSenior},
		},
		{
			name:   "empty",
			text:   "",
			expect: Experience{YearsMentioned: []int{}, Level: LevelEntry},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, AnalyzeExperience(tt.text))
		})
	}
}

func TestClassifyExperience(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		0:  LevelEntry,
		1:  LevelEntry,
		2:  LevelJunior,
		4:  LevelJunior,
		5:  LevelMid,
		9:  LevelMid,
		10: LevelSenior,
		25: LevelSenior,
	}
	for years, level := range tests {
		assert.Equal(t, level, ClassifyExperience(years), "years=%d", years)
	}
}

func TestAnalyzeEducation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect map[string]int
	}{
		{
			name:   "bachelor and certifications",
			text:   "Bachelor's degree in CS; AWS Certified, certification preferred",
			expect: map[string]int{EducationBachelor: 1, EducationCertification: 2},
		},
		{
			name:   "advanced degrees",
			text:   "PhD or Master of Science, MBA a plus",
			expect: map[string]int{EducationPhD: 1, EducationMaster: 2},
		},
		{
			name:   "undergraduate is not graduate",
			text:   "undergraduate studies",
			expect: map[string]int{EducationBachelor: 1},
		},
		{
			name:   "nothing mentioned",
			text:   "Go developer",
			expect: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, AnalyzeEducation(tt.text))
		})
	}
}

func jobKeywords() keywords.Set {
	return keywords.Of(
		[]string{"python", "react", "sql"},
		[]string{"communication", "leadership"},
		nil,
	)
}

const resume = "Python developer with JavaScript experience. Strong communication skills."

func TestCoverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		job    keywords.Set
		expect float64
	}{
		{name: "partial", text: resume, job: jobKeywords(), expect: 40},
		{name: "rounded", text: "python", job: keywords.Of([]string{"python", "go", "rust"}, nil, nil), expect: 33.33},
		{name: "no job keywords", text: resume, job: keywords.Set{}, expect: 0},
		{name: "empty text", text: "", job: jobKeywords(), expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expect, Coverage(tt.text, tt.job), 1e-9)
		})
	}
}

func TestKeywordDensity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect Density
	}{
		{
			name:   "counts occurrences",
			text:   resume,
			expect: Density{Density: 25, KeywordCount: 2, TotalWords: 8},
		},
		{
			name:   "repeated keyword",
			text:   "SQL and more sql",
			expect: Density{Density: 50, KeywordCount: 2, TotalWords: 4},
		},
		{
			name:   "empty text",
			text:   "  ",
			expect: Density{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, KeywordDensity(tt.text, jobKeywords()))
		})
	}
}

func TestATSCompatibility(t *testing.T) {
	t.Parallel()

	long := func(words int, seed string) string {
		return seed + strings.Repeat(" filler", words)
	}

	tests := []struct {
		name   string
		text   string
		job    keywords.Set
		expect float64
	}{
		{name: "short with medium coverage", text: resume, job: jobKeywords(), expect: 80},
		{name: "short with low coverage", text: "Java developer", job: jobKeywords(), expect: 70},
		{name: "short without job keywords", text: resume, job: keywords.Set{}, expect: 90},
		{name: "good length and coverage", text: long(300, "python react sql"), job: jobKeywords(), expect: 100},
		{name: "too long", text: long(1200, "python react sql communication"), job: jobKeywords(), expect: 95},
		{name: "empty resume", text: "", job: jobKeywords(), expect: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expect, ATSCompatibility(tt.text, tt.job), 1e-9)
		})
	}
}
