package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spigell/resume-matcher/internal/keywords"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	l := Default()

	tests := []struct {
		input string
		want  string
	}{
		{input: "JavaScript", want: "javascript"},
		{input: "  JS ", want: "javascript"},
		{input: "CSharp", want: "c#"},
		{input: "c   sharp", want: "c#"},
		{input: "MSSQL", want: "sql server"},
		{input: "Problem-Solving", want: "problem solving"},
		{input: "Visual Studio Code", want: "vs code"},
		{input: "  Quantum Basket Weaving ", want: "quantum basket weaving"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Canonicalize(tt.input))
		})
	}
}

func TestVariationsOf(t *testing.T) {
	l := Default()

	assert.Equal(t, []string{"c#", "csharp", "c sharp"}, l.VariationsOf("C#"))
	assert.Equal(t, []string{"c#", "csharp", "c sharp"}, l.VariationsOf("csharp"))
	assert.Equal(t, []string{"elixir"}, l.VariationsOf("Elixir"))

	got := l.VariationsOf("javascript")
	got[0] = "mutated"
	assert.Equal(t, "javascript", l.VariationsOf("javascript")[0], "returned slice must be a copy")
}

func TestPriorityOf(t *testing.T) {
	l := Default()

	assert.Equal(t, PriorityCritical, l.PriorityOf("python"))
	assert.Equal(t, PriorityHigh, l.PriorityOf("TS"))
	assert.Equal(t, PriorityMedium, l.PriorityOf("docker"))
	assert.Equal(t, PriorityNone, l.PriorityOf("jest"))
	assert.Equal(t, PriorityNone, l.PriorityOf("cobol"))
	assert.Contains(t, l.Critical(), "react")
}

func TestEntriesByCategory(t *testing.T) {
	l := Default()

	for _, e := range l.Entries(keywords.SoftSkills) {
		assert.Equal(t, keywords.SoftSkills, e.Category, e.Canonical)
	}
	assert.Len(t, l.Entries(""), l.Len())
}

func TestNewRejectsDuplicateVariations(t *testing.T) {
	_, err := New([]Entry{
		{Canonical: "javascript", Category: keywords.Technical, Variations: []string{"js"}},
		{Canonical: "json", Category: keywords.Technical, Variations: []string{"JS"}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateVariation))
}

func TestNewRejectsCanonicalReusedAcrossCategories(t *testing.T) {
	_, err := New([]Entry{
		{Canonical: "testing", Category: keywords.Technical},
		{Canonical: "testing", Category: keywords.Other},
	})

	assert.ErrorIs(t, err, ErrDuplicateVariation)
}

func TestNewValidatesEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{name: "short canonical", entry: Entry{Canonical: "r", Category: keywords.Technical}},
		{name: "unknown category", entry: Entry{Canonical: "go", Category: "languages"}},
		{name: "unknown priority", entry: Entry{Canonical: "go", Category: keywords.Technical, Priority: "urgent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]Entry{tt.entry})
			assert.Error(t, err)
		})
	}
}

func TestNewAcceptsCategoryAliases(t *testing.T) {
	l, err := New([]Entry{{Canonical: "Fintech", Category: "industry", Priority: "HIGH"}})
	require.NoError(t, err)

	e, ok := l.Lookup("fintech")
	require.True(t, ok)
	assert.Equal(t, keywords.Other, e.Category)
	assert.Equal(t, PriorityHigh, e.Priority)
}

func TestExtendMergesExistingEntries(t *testing.T) {
	base := Default()

	l, err := base.Extend([]Entry{
		{Canonical: "Python", Category: keywords.Technical, Variations: []string{"py", "python3"}},
		{Canonical: "elixir", Category: keywords.Technical, Priority: PriorityHigh},
	})
	require.NoError(t, err)

	assert.Equal(t, "python", l.Canonicalize("py"))
	assert.Equal(t, PriorityCritical, l.PriorityOf("python"), "priority kept when extension leaves it empty")
	assert.Equal(t, PriorityHigh, l.PriorityOf("elixir"))
	assert.Equal(t, base.Len()+1, l.Len())

	assert.Equal(t, "py", base.Canonicalize("py"), "base lexicon must stay untouched")
}

func TestExtendRejectsConflicts(t *testing.T) {
	_, err := Default().Extend([]Entry{
		{Canonical: "ecmascript", Category: keywords.Technical, Variations: []string{"js"}},
	})

	assert.ErrorIs(t, err, ErrDuplicateVariation)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := `entries:
  - canonical: golang
    category: technical
    variations: go lang, go-lang
    priority: high
  - canonical: fintech
    category: industry
    variations:
      - financial technology
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	entries, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"go lang", " go-lang"}, entries[0].Variations)
	assert.Equal(t, Priority("high"), entries[0].Priority)

	l, err := New(entries)
	require.NoError(t, err)
	assert.Equal(t, "golang", l.Canonicalize("GO-LANG"))
	assert.Equal(t, "fintech", l.Canonicalize("Financial Technology"))
}

func TestLoadFileRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries:\n  - canonical: go\n    synonyms: golang\n"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadWithoutPathReturnsDefault(t *testing.T) {
	l, err := Load("")
	require.NoError(t, err)
	assert.Same(t, Default(), l)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
