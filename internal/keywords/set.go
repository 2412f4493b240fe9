// Package keywords defines the categorized keyword sets produced by extraction
// and consumed by reconciliation.
package keywords

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Category is one of the three disjoint keyword groups.
type Category string

const (
	Technical  Category = "technical_skills"
	SoftSkills Category = "soft_skills"
	Other      Category = "other_keywords"
)

// MinLength is the shortest keyword (in runes) accepted into a set.
const MinLength = 2

// Categories lists every category in display order.
var Categories = []Category{Technical, SoftSkills, Other}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case Technical, SoftSkills, Other:
		return true
	default:
		return false
	}
}

// ParseCategory resolves category names and their common aliases.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "technical", "technical_skills", "technical-skills", "tech":
		return Technical, nil
	case "soft", "soft_skill", "soft_skills", "soft-skills":
		return SoftSkills, nil
	case "other", "other_keywords", "other-keywords", "industry", "industry_keywords":
		return Other, nil
	default:
		return "", fmt.Errorf("unknown keyword category %q", name)
	}
}

// Normalize lowercases, trims and collapses inner whitespace.
func Normalize(kw string) string {
	return strings.Join(strings.Fields(strings.ToLower(kw)), " ")
}

// Set is an immutable result of one extraction. Categories are disjoint.
// The zero value is an empty set.
type Set struct {
	items map[Category]map[string]struct{}
}

// Keywords returns the sorted keywords of the category.
func (s Set) Keywords(c Category) []string {
	bucket := s.items[c]
	out := make([]string, 0, len(bucket))
	for kw := range bucket {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

// Has reports whether kw (normalized) is present in the category.
func (s Set) Has(c Category, kw string) bool {
	_, ok := s.items[c][Normalize(kw)]
	return ok
}

// CategoryOf returns the category holding kw.
func (s Set) CategoryOf(kw string) (Category, bool) {
	kw = Normalize(kw)
	for _, c := range Categories {
		if _, ok := s.items[c][kw]; ok {
			return c, true
		}
	}
	return "", false
}

// Len returns the number of keywords in the category.
func (s Set) Len(c Category) int {
	return len(s.items[c])
}

// Total returns the number of keywords across all categories.
func (s Set) Total() int {
	total := 0
	for _, c := range Categories {
		total += s.Len(c)
	}
	return total
}

// IsEmpty reports whether no category holds a keyword.
func (s Set) IsEmpty() bool {
	return s.Total() == 0
}

// All returns the sorted union of the three categories.
func (s Set) All() []string {
	out := make([]string, 0, s.Total())
	for _, c := range Categories {
		out = append(out, s.Keywords(c)...)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same keywords per category.
func (s Set) Equal(other Set) bool {
	for _, c := range Categories {
		if s.Len(c) != other.Len(c) {
			return false
		}
		for kw := range s.items[c] {
			if _, ok := other.items[c][kw]; !ok {
				return false
			}
		}
	}
	return true
}

// Builder accumulates keywords for a Set. A keyword belongs to the first
// category it was added to.
type Builder struct {
	items map[Category]map[string]struct{}
	owner map[string]Category
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	b := &Builder{
		items: make(map[Category]map[string]struct{}, len(Categories)),
		owner: make(map[string]Category),
	}
	for _, c := range Categories {
		b.items[c] = make(map[string]struct{})
	}
	return b
}

// Add normalizes kw and stores it under c. It returns false when the keyword
// is too short, the category is unknown or the keyword is already present.
func (b *Builder) Add(c Category, kw string) bool {
	if !c.Valid() {
		return false
	}
	kw = Normalize(kw)
	if utf8.RuneCountInString(kw) < MinLength {
		return false
	}
	if _, taken := b.owner[kw]; taken {
		return false
	}
	b.owner[kw] = c
	b.items[c][kw] = struct{}{}
	return true
}

// Merge adds every keyword of s, keeping existing category ownership.
func (b *Builder) Merge(s Set) {
	for _, c := range Categories {
		for kw := range s.items[c] {
			b.Add(c, kw)
		}
	}
}

// Len returns the number of keywords collected so far.
func (b *Builder) Len() int {
	return len(b.owner)
}

// Build returns an immutable copy of the collected keywords.
func (b *Builder) Build() Set {
	items := make(map[Category]map[string]struct{}, len(Categories))
	for _, c := range Categories {
		bucket := make(map[string]struct{}, len(b.items[c]))
		for kw := range b.items[c] {
			bucket[kw] = struct{}{}
		}
		items[c] = bucket
	}
	return Set{items: items}
}

// Of builds a set from plain lists. Invalid entries are skipped.
func Of(technical, softSkills, other []string) Set {
	b := NewBuilder()
	for _, kw := range technical {
		b.Add(Technical, kw)
	}
	for _, kw := range softSkills {
		b.Add(SoftSkills, kw)
	}
	for _, kw := range other {
		b.Add(Other, kw)
	}
	return b.Build()
}
