package filtering

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spigell/resume-matcher/internal/suggestions"
)

type topFilter struct {
	toggle
	limit int
}

// NewTop creates a filter keeping the first limit suggestions. Zero keeps
// everything.
func NewTop(limit int) Filter {
	return &topFilter{limit: limit}
}

func (f *topFilter) Name() string { return "top" }

func (f *topFilter) Validate() error {
	if f.limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", f.limit)
	}
	return nil
}

func (f *topFilter) Apply(_ context.Context, s []suggestions.Suggestion) ([]suggestions.Suggestion, Step, error) {
	initial := len(s)
	if f.limit == 0 || initial <= f.limit {
		return s, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	return s[:f.limit], Step{Initial: initial, Dropped: initial - f.limit, Left: f.limit}, nil
}

func (f *topFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: map[string]string{"limit": strconv.Itoa(f.limit)}}
}
