// Package ai declares the optional model-backed capabilities of the matcher.
package ai

import (
	"context"

	"github.com/spigell/resume-matcher/internal/keywords"
)

// Enricher proposes keywords beyond what the lexicon detects. It is best
// effort: callers log and skip its failures.
type Enricher interface {
	Enrich(ctx context.Context, text string) (keywords.Set, error)
}

// EnricherFunc adapts an ordinary function to Enricher.
type EnricherFunc func(ctx context.Context, text string) (keywords.Set, error)

func (f EnricherFunc) Enrich(ctx context.Context, text string) (keywords.Set, error) {
	return f(ctx, text)
}
