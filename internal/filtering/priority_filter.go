package filtering

import (
	"context"

	"github.com/spigell/resume-matcher/internal/suggestions"
)

type minPriorityFilter struct {
	enabled bool
	reason  string
	raw     string
	min     suggestions.Priority
	err     error
}

// NewMinPriority creates a filter that drops suggestions less urgent than
// minimum. An empty minimum disables the step.
func NewMinPriority(minimum string) Filter {
	f := &minPriorityFilter{enabled: minimum != "", raw: minimum}
	if f.enabled {
		f.min, f.err = suggestions.ParsePriority(minimum)
	}
	return f
}

func (f *minPriorityFilter) Name() string { return "min_priority" }

func (f *minPriorityFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *minPriorityFilter) IsEnabled() bool { return f.enabled }

func (f *minPriorityFilter) Validate() error {
	return f.err
}

func (f *minPriorityFilter) Apply(_ context.Context, s []suggestions.Suggestion) ([]suggestions.Suggestion, Step, error) {
	out, step := keep(s, func(item suggestions.Suggestion) bool {
		return item.Priority.Rank() <= f.min.Rank()
	})
	return out, step, nil
}

func (f *minPriorityFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"minimum": f.raw},
	}
}
