// Package reconcile partitions the keywords of a job description (source)
// and a résumé (target) into matched, missing and extra groups.
//
// Every source keyword is exactly one of matched or missing. A target
// keyword is extra when it was not picked as the partner of a matched source
// keyword and fails the tiered test against every source keyword; target
// keywords that pass the test without being picked are reported as absorbed.
package reconcile

import (
	"strings"

	"github.com/spigell/resume-matcher/internal/keywords"
)

// Tier says how two keywords were found equivalent.
type Tier int

const (
	TierNone Tier = iota
	// TierExact is case-insensitive equality.
	TierExact
	// TierTokens means every token of the keyword occurs inside the other one.
	TierTokens
	// TierSubstring means one keyword contains the other.
	TierSubstring
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierTokens:
		return "tokens"
	case TierSubstring:
		return "substring"
	default:
		return "none"
	}
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Compare runs the tiered test of kw against other and returns the first
// tier that holds.
func Compare(kw, other string) Tier {
	kw, other = keywords.Normalize(kw), keywords.Normalize(other)
	if kw == "" || other == "" {
		return TierNone
	}

	if kw == other {
		return TierExact
	}

	if tokens := strings.Fields(kw); len(tokens) > 1 {
		all := true
		for _, token := range tokens {
			if !strings.Contains(other, token) {
				all = false
				break
			}
		}
		if all {
			return TierTokens
		}
	}

	if strings.Contains(other, kw) || strings.Contains(kw, other) {
		return TierSubstring
	}

	return TierNone
}

// Pair links a matched source keyword with the target keyword chosen for it.
type Pair struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Tier   Tier   `json:"tier"`
}

// Partition is the reconciliation of one category. All lists are sorted.
type Partition struct {
	Matched  []string `json:"matched"`
	Missing  []string `json:"missing"`
	Extra    []string `json:"extra"`
	Absorbed []string `json:"absorbed,omitempty"`
	Pairs    []Pair   `json:"pairs,omitempty"`

	SourceSize int `json:"source_size"`
	TargetSize int `json:"target_size"`
}

// Result holds a partition per category.
type Result struct {
	categories map[keywords.Category]Partition
}

// Category returns the partition of c. Unknown categories yield an empty one.
func (r Result) Category(c keywords.Category) Partition {
	return r.categories[c]
}

// Missing returns the missing keywords of every category.
func (r Result) Missing() map[keywords.Category][]string {
	return r.collect(func(p Partition) []string { return p.Missing })
}

// Matched returns the matched keywords of every category.
func (r Result) Matched() map[keywords.Category][]string {
	return r.collect(func(p Partition) []string { return p.Matched })
}

// Extra returns the extra keywords of every category.
func (r Result) Extra() map[keywords.Category][]string {
	return r.collect(func(p Partition) []string { return p.Extra })
}

func (r Result) collect(pick func(Partition) []string) map[keywords.Category][]string {
	out := make(map[keywords.Category][]string, len(keywords.Categories))
	for _, c := range keywords.Categories {
		list := pick(r.categories[c])
		if list == nil {
			list = []string{}
		}
		out[c] = list
	}
	return out
}

// TotalMissing counts missing keywords across categories.
func (r Result) TotalMissing() int {
	total := 0
	for _, c := range keywords.Categories {
		total += len(r.categories[c].Missing)
	}
	return total
}

// Reconcile compares source (job description) against target (résumé).
func Reconcile(source, target keywords.Set) Result {
	r := Result{categories: make(map[keywords.Category]Partition, len(keywords.Categories))}
	for _, c := range keywords.Categories {
		r.categories[c] = partition(source.Keywords(c), target.Keywords(c))
	}
	return r
}

// partition expects sorted inputs; iteration order decides ties.
func partition(source, target []string) Partition {
	p := Partition{
		Matched:    []string{},
		Missing:    []string{},
		Extra:      []string{},
		SourceSize: len(source),
		TargetSize: len(target),
	}

	partners := make(map[string]struct{})
	for _, kw := range source {
		partner, tier := bestPartner(kw, target)
		if tier == TierNone {
			p.Missing = append(p.Missing, kw)
			continue
		}
		p.Matched = append(p.Matched, kw)
		p.Pairs = append(p.Pairs, Pair{Source: kw, Target: partner, Tier: tier})
		partners[partner] = struct{}{}
	}

	for _, kw := range target {
		if _, ok := partners[kw]; ok {
			continue
		}
		if _, tier := bestPartner(kw, source); tier == TierNone {
			p.Extra = append(p.Extra, kw)
		} else {
			p.Absorbed = append(p.Absorbed, kw)
		}
	}

	return p
}

// bestPartner returns the first candidate at the lowest tier.
func bestPartner(kw string, candidates []string) (string, Tier) {
	best, bestTier := "", TierNone
	for _, candidate := range candidates {
		tier := Compare(kw, candidate)
		if tier == TierNone {
			continue
		}
		if bestTier == TierNone || tier < bestTier {
			best, bestTier = candidate, tier
			if tier == TierExact {
				break
			}
		}
	}
	return best, bestTier
}
