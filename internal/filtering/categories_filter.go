package filtering

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spigell/resume-matcher/internal/suggestions"
)

type categoriesFilter struct {
	toggle
	excluded []string
}

// NewExcludedCategories creates a filter that removes suggestions of the
// given categories.
func NewExcludedCategories(categories []string) Filter {
	return &categoriesFilter{
		excluded: categories,
	}
}

func (f *categoriesFilter) Name() string { return "categories" }

func (f *categoriesFilter) Validate() error {
	for _, c := range f.excluded {
		if !slices.Contains(suggestions.Categories, c) {
			return fmt.Errorf("unknown suggestion category %q", c)
		}
	}
	return nil
}

func (f *categoriesFilter) Apply(_ context.Context, s []suggestions.Suggestion) ([]suggestions.Suggestion, Step, error) {
	if len(f.excluded) == 0 {
		return s, Step{Initial: len(s), Dropped: 0, Left: len(s)}, nil
	}

	out, step := keep(s, func(item suggestions.Suggestion) bool {
		return !slices.Contains(f.excluded, item.Category)
	})
	return out, step, nil
}

func (f *categoriesFilter) Status() Status {
	details := map[string]string{}
	if len(f.excluded) > 0 {
		details["excluded"] = strings.Join(f.excluded, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
