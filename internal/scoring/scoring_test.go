package scoring

import (
	"testing"

	"github.com/spigell/resume-matcher/internal/keywords"
	"github.com/spigell/resume-matcher/internal/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, TechnicalWeight+SoftSkillsWeight+OtherWeight, 1e-9)
}

func TestScore(t *testing.T) {
	source := keywords.Of([]string{"python", "react", "sql"}, []string{"leadership", "communication"}, nil)
	target := keywords.Of([]string{"python", "javascript"}, []string{"communication"}, nil)

	got := Score(reconcile.Reconcile(source, target))

	assert.Equal(t, Result{Technical: 25, SoftSkills: 50, Other: 100, Overall: 52.5}, got)
}

func TestScoreVacuousRules(t *testing.T) {
	filled := keywords.Of([]string{"go"}, []string{"teamwork"}, []string{"agile"})

	tests := []struct {
		name           string
		source, target keywords.Set
		want           float64
	}{
		{name: "both empty", source: keywords.Set{}, target: keywords.Set{}, want: 100},
		{name: "source empty", source: keywords.Set{}, target: filled, want: 0},
		{name: "target empty", source: filled, target: keywords.Set{}, want: 0},
		{name: "identical", source: filled, target: filled, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(reconcile.Reconcile(tt.source, tt.target))
			for _, c := range keywords.Categories {
				assert.Equal(t, tt.want, got.Of(c), c)
			}
			assert.Equal(t, tt.want, got.Overall)
		})
	}
}

func TestScoreMatchesJaccardIdentity(t *testing.T) {
	source := keywords.Of([]string{"c#", "docker", "kubernetes", "sql"}, []string{"leadership"}, []string{"agile", "testing"})
	target := keywords.Of([]string{"c#", "python", "ruby"}, []string{"mentoring"}, []string{"agile"})

	rec := reconcile.Reconcile(source, target)
	got := Score(rec)

	for _, c := range keywords.Categories {
		p := rec.Category(c)
		want := float64(len(p.Matched)) / float64(len(p.Matched)+len(p.Missing)+len(p.Extra)) * 100
		assert.InDelta(t, want, got.Of(c), 0.005, c)
		assert.GreaterOrEqual(t, got.Of(c), 0.0)
		assert.LessOrEqual(t, got.Of(c), 100.0)
	}
	assert.GreaterOrEqual(t, got.Overall, 0.0)
	assert.LessOrEqual(t, got.Overall, 100.0)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, round2(100.0/3))
	assert.Equal(t, 66.67, round2(200.0/3))
}
