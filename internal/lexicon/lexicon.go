// Package lexicon holds the canonical keyword dictionaries and their known
// surface variations. A Lexicon is built once and shared read-only.
package lexicon

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spigell/resume-matcher/internal/keywords"
)

// Priority is the static importance tier of a canonical keyword.
type Priority string

const (
	PriorityNone     Priority = ""
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// ParsePriority accepts the tier names case-insensitively. An empty name is
// PriorityNone.
func ParsePriority(name string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(name))); p {
	case PriorityNone, PriorityMedium, PriorityHigh, PriorityCritical:
		return p, nil
	default:
		return "", fmt.Errorf("unknown priority %q", name)
	}
}

// Entry is a canonical keyword with its variations. The canonical form is
// always treated as one of its own variations.
type Entry struct {
	Canonical  string            `mapstructure:"canonical" json:"canonical"`
	Category   keywords.Category `mapstructure:"category" json:"category"`
	Variations []string          `mapstructure:"variations" json:"variations,omitempty"`
	Priority   Priority          `mapstructure:"priority" json:"priority,omitempty"`
}

// Lexicon maps surface forms onto canonical keywords.
type Lexicon struct {
	entries []Entry
	// variation -> index into entries
	index map[string]int
}

// ErrDuplicateVariation is returned when a surface form would map to more
// than one canonical entry.
var ErrDuplicateVariation = errors.New("variation maps to more than one canonical keyword")

// New validates entries and builds a lexicon. Entries are normalized:
// canonical and variations are lowercased and whitespace-collapsed, the
// category accepts aliases such as "industry" or "soft_skill".
func New(entries []Entry) (*Lexicon, error) {
	l := &Lexicon{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int),
	}

	for i, raw := range entries {
		entry, err := normalizeEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		pos := len(l.entries)
		for _, v := range entry.Variations {
			if owner, taken := l.index[v]; taken {
				return nil, fmt.Errorf("%w: %q claimed by %q and %q",
					ErrDuplicateVariation, v, l.entries[owner].Canonical, entry.Canonical)
			}
			l.index[v] = pos
		}
		l.entries = append(l.entries, entry)
	}

	return l, nil
}

// MustNew is New that panics on invalid entries. Intended for static data.
func MustNew(entries []Entry) *Lexicon {
	l, err := New(entries)
	if err != nil {
		panic(err)
	}
	return l
}

func normalizeEntry(raw Entry) (Entry, error) {
	canonical := keywords.Normalize(raw.Canonical)
	if len([]rune(canonical)) < keywords.MinLength {
		return Entry{}, fmt.Errorf("canonical keyword %q is too short", raw.Canonical)
	}

	category, err := keywords.ParseCategory(string(raw.Category))
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", canonical, err)
	}

	priority, err := ParsePriority(string(raw.Priority))
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", canonical, err)
	}

	seen := map[string]struct{}{canonical: {}}
	variations := []string{canonical}
	for _, v := range raw.Variations {
		v = keywords.Normalize(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		variations = append(variations, v)
	}

	return Entry{
		Canonical:  canonical,
		Category:   category,
		Variations: variations,
		Priority:   priority,
	}, nil
}

// Canonicalize maps a surface form onto its canonical keyword. Unknown input
// is returned lowercased and trimmed.
func (l *Lexicon) Canonicalize(s string) string {
	s = keywords.Normalize(s)
	if l == nil {
		return s
	}
	if i, ok := l.index[s]; ok {
		return l.entries[i].Canonical
	}
	return s
}

// VariationsOf returns every known surface form of the keyword, canonical
// first. Unknown keywords yield a single-element list.
func (l *Lexicon) VariationsOf(kw string) []string {
	entry, ok := l.Lookup(kw)
	if !ok {
		return []string{keywords.Normalize(kw)}
	}
	return append([]string(nil), entry.Variations...)
}

// Lookup finds the entry owning the surface form.
func (l *Lexicon) Lookup(s string) (Entry, bool) {
	if l == nil {
		return Entry{}, false
	}
	i, ok := l.index[keywords.Normalize(s)]
	if !ok {
		return Entry{}, false
	}
	return l.entries[i], true
}

// PriorityOf returns the static tier of the keyword, PriorityNone if it has
// none or is unknown.
func (l *Lexicon) PriorityOf(kw string) Priority {
	entry, ok := l.Lookup(kw)
	if !ok {
		return PriorityNone
	}
	return entry.Priority
}

// Entries returns the entries of a category in declaration order. An empty
// category returns every entry.
func (l *Lexicon) Entries(c keywords.Category) []Entry {
	if l == nil {
		return nil
	}
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if c == "" || e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of canonical entries.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Extend returns a new lexicon with extra entries applied on top of l.
// An extra entry whose canonical form already exists in the same category
// adds its variations to the existing one and overrides its priority when set.
func (l *Lexicon) Extend(extra []Entry) (*Lexicon, error) {
	merged := make([]Entry, 0, l.Len()+len(extra))
	pos := make(map[string]int, l.Len())
	for _, e := range l.Entries("") {
		e.Variations = append([]string(nil), e.Variations...)
		pos[string(e.Category)+"/"+e.Canonical] = len(merged)
		merged = append(merged, e)
	}

	for i, raw := range extra {
		e, err := normalizeEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("extension entry %d: %w", i, err)
		}
		key := string(e.Category) + "/" + e.Canonical
		at, exists := pos[key]
		if !exists {
			pos[key] = len(merged)
			merged = append(merged, e)
			continue
		}
		merged[at].Variations = append(merged[at].Variations, e.Variations...)
		if e.Priority != PriorityNone {
			merged[at].Priority = e.Priority
		}
	}

	return New(merged)
}

// Critical returns the sorted canonical keywords of the critical tier.
func (l *Lexicon) Critical() []string {
	var out []string
	for _, e := range l.Entries("") {
		if e.Priority == PriorityCritical {
			out = append(out, e.Canonical)
		}
	}
	sort.Strings(out)
	return out
}
