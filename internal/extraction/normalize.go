package extraction

import (
	"regexp"
	"strings"
)

var (
	// letters, digits, underscore, whitespace and the separators that are part
	// of technology names (node.js, c#, c++, ci-cd) survive normalization.
	disallowed = regexp.MustCompile(`[^\p{L}\p{N}_\s.\-#+]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// NormalizeText lowercases text, replaces punctuation with spaces and
// collapses whitespace.
func NormalizeText(text string) string {
	text = strings.ToLower(text)
	text = disallowed.ReplaceAllString(text, " ")
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

const (
	wordChar = `\p{L}\p{N}_`
	// a variation may not be glued to a preceding word, a #/+ suffix or a dot
	// (so "js" never matches inside "node.js").
	leftBoundary = `(?:^|[^` + wordChar + `#+.])`
	// a trailing dot only counts as a boundary when it ends a sentence.
	rightBoundary = `(?:$|[^` + wordChar + `#+.]|\.(?:$|[^` + wordChar + `]))`
)

// wholeWord compiles a matcher for an already normalized variation.
func wholeWord(variation string) *regexp.Regexp {
	return regexp.MustCompile(leftBoundary + regexp.QuoteMeta(variation) + rightBoundary)
}

// stems folds a fixed list of morphological variants onto the form the
// lexicon knows.
var stems = map[string]string{
	"restful":      "rest",
	"apis":         "api",
	"databases":    "database",
	"frameworks":   "framework",
	"services":     "service",
	"components":   "component",
	"microservice": "microservices",
	"containers":   "container",
	"technologies": "technology",
	"deployments":  "deployment",
	"platforms":    "platform",
	"solutions":    "solution",
	"workflows":    "workflow",
}

var stemPattern = func() *regexp.Regexp {
	words := make([]string, 0, len(stems))
	for w := range stems {
		words = append(words, regexp.QuoteMeta(w))
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(words, "|") + `)\b`)
}()

// Stem rewrites the known variants in normalized text.
func Stem(normalized string) string {
	return stemPattern.ReplaceAllStringFunc(normalized, func(w string) string {
		return stems[w]
	})
}
