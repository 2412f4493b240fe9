// Package filtering post-processes a generated suggestion list with a chain
// of configurable steps.
package filtering

import (
	"context"
	"fmt"

	"github.com/spigell/resume-matcher/internal/suggestions"

	"go.uber.org/zap"
)

// Filter represents a single filtering step applied to suggestions.
// Steps must keep the relative order of the suggestions they keep.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate() error
	Apply(ctx context.Context, s []suggestions.Suggestion) ([]suggestions.Suggestion, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// toggle holds the enabled state shared by the filters that are on unless
// disabled by name.
type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run validates every enabled step, then applies them sequentially.
func Run(ctx context.Context, logger *zap.Logger, steps []Filter, s []suggestions.Suggestion) ([]suggestions.Suggestion, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			logger.Debug("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		logger.Debug("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		s = next
	}

	return s, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// keep returns the suggestions accepted by fn and the step summary.
func keep(s []suggestions.Suggestion, fn func(suggestions.Suggestion) bool) ([]suggestions.Suggestion, Step) {
	out := make([]suggestions.Suggestion, 0, len(s))
	for _, item := range s {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out, Step{Initial: len(s), Dropped: len(s) - len(out), Left: len(out)}
}

// Config selects the post-processing steps of a suggestion list.
type Config struct {
	MinPriority       string   `mapstructure:"min-priority" json:"min_priority,omitempty" validate:"omitempty,oneof=critical high medium low"`
	ExcludeCategories []string `mapstructure:"exclude-categories" json:"exclude_categories,omitempty"`
	ExcludeFile       string   `mapstructure:"exclude-file" json:"exclude_file,omitempty"`
	Top               int      `mapstructure:"top" json:"top,omitempty" validate:"gte=0"`
	Disable           []string `mapstructure:"disable" json:"disable,omitempty" validate:"dive,oneof=categories exclude_file min_priority top"`
}

// Steps builds the filter chain in its fixed order: exclusions first,
// truncation last. Steps named in cfg.Disable stay in the chain disabled.
func Steps(cfg Config) []Filter {
	steps := []Filter{
		NewExcludedCategories(cfg.ExcludeCategories),
		NewExcludeFile(cfg.ExcludeFile),
		NewMinPriority(cfg.MinPriority),
		NewTop(cfg.Top),
	}
	for _, name := range cfg.Disable {
		DisableByName(steps, name, "disabled in config")
	}
	return steps
}
