// Package extraction turns free-form text into categorized keyword sets using
// a lexicon, a few multi-word phrase patterns and light stemming.
package extraction

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/spigell/resume-matcher/internal/ai"
	"github.com/spigell/resume-matcher/internal/keywords"
	"github.com/spigell/resume-matcher/internal/lexicon"

	"go.uber.org/zap"
)

type entryMatcher struct {
	canonical  string
	category   keywords.Category
	variations []*regexp.Regexp
}

// Extractor is safe for concurrent use once constructed.
type Extractor struct {
	lexicon  *lexicon.Lexicon
	entries  []entryMatcher
	phrases  []phrase
	enricher ai.Enricher
	logger   *zap.Logger
}

// New precompiles matchers for every lexicon entry. enricher may be nil.
func New(lex *lexicon.Lexicon, enricher ai.Enricher, logger *zap.Logger) *Extractor {
	if lex == nil {
		lex = lexicon.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Extractor{
		lexicon:  lex,
		phrases:  phrases,
		enricher: enricher,
		logger:   logger,
	}

	for _, c := range keywords.Categories {
		for _, entry := range lex.Entries(c) {
			m := entryMatcher{canonical: entry.Canonical, category: entry.Category}
			seen := make(map[string]struct{}, len(entry.Variations))
			for _, v := range entry.Variations {
				v = NormalizeText(v)
				if _, dup := seen[v]; dup || v == "" {
					continue
				}
				seen[v] = struct{}{}
				m.variations = append(m.variations, wholeWord(v))
			}
			e.entries = append(e.entries, m)
		}
	}

	return e
}

// Lexicon returns the lexicon the extractor was built from.
func (e *Extractor) Lexicon() *lexicon.Lexicon {
	return e.lexicon
}

// Extract runs the deterministic passes and the enricher (if any) with a
// background context.
func (e *Extractor) Extract(text string) keywords.Set {
	return e.ExtractContext(context.Background(), text)
}

// ExtractContext never fails: malformed input yields fewer keywords and a
// failing enricher is logged and skipped.
func (e *Extractor) ExtractContext(ctx context.Context, text string) keywords.Set {
	normalized := NormalizeText(text)
	if normalized == "" {
		return keywords.Set{}
	}

	b := keywords.NewBuilder()

	e.matchLexicon(b, normalized)
	e.matchPhrases(b, normalized)
	if stemmed := Stem(normalized); stemmed != normalized {
		e.matchLexicon(b, stemmed)
	}

	deterministic := b.Len()

	if e.enricher != nil {
		extra, err := e.enrich(ctx, text)
		if err != nil {
			e.logger.Warn("keyword enrichment skipped", zap.Error(err))
		} else {
			e.merge(b, extra)
		}
	}

	set := b.Build()
	e.logger.Debug("keywords extracted",
		zap.Int("text_length", len(text)),
		zap.Int("lexicon_matches", deterministic),
		zap.Int("technical", set.Len(keywords.Technical)),
		zap.Int("soft_skills", set.Len(keywords.SoftSkills)),
		zap.Int("other", set.Len(keywords.Other)),
	)

	return set
}

// matchLexicon credits the canonical form on the first matching variation.
func (e *Extractor) matchLexicon(b *keywords.Builder, normalized string) {
	for _, m := range e.entries {
		for _, re := range m.variations {
			if re.MatchString(normalized) {
				b.Add(m.category, m.canonical)
				break
			}
		}
	}
}

func (e *Extractor) matchPhrases(b *keywords.Builder, normalized string) {
	for _, p := range e.phrases {
		for _, match := range p.pattern.FindAllString(normalized, -1) {
			canonical := e.lexicon.Canonicalize(match)
			if _, known := e.lexicon.Lookup(canonical); !known {
				canonical = e.lexicon.Canonicalize(strings.ReplaceAll(match, "-", " "))
			}
			b.Add(e.categoryOf(canonical, p.category), canonical)
		}
	}
}

func (e *Extractor) merge(b *keywords.Builder, extra keywords.Set) {
	for _, c := range keywords.Categories {
		for _, kw := range extra.Keywords(c) {
			canonical := e.lexicon.Canonicalize(kw)
			b.Add(e.categoryOf(canonical, c), canonical)
		}
	}
}

// categoryOf prefers the lexicon's category over the caller's guess.
func (e *Extractor) categoryOf(canonical string, fallback keywords.Category) keywords.Category {
	if entry, ok := e.lexicon.Lookup(canonical); ok {
		return entry.Category
	}
	return fallback
}

func (e *Extractor) enrich(ctx context.Context, text string) (set keywords.Set, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("enricher panicked: %v", r)
		}
	}()

	set, err = e.enricher.Enrich(ctx, text)
	if err != nil {
		return keywords.Set{}, fmt.Errorf("enrich: %w", err)
	}
	return set, nil
}
