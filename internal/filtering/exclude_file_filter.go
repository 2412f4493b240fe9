package filtering

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/spigell/resume-matcher/internal/keywords"
	"github.com/spigell/resume-matcher/internal/suggestions"
)

// excludeFileFilter is shared by concurrent matches; mu guards keywords.
type excludeFileFilter struct {
	toggle
	path string

	mu       sync.Mutex
	keywords map[string]struct{}
}

// NewExcludeFile creates a filter that removes keyword suggestions about
// keywords listed in a file, one per line. Lines starting with # are ignored.
func NewExcludeFile(path string) Filter {
	return &excludeFileFilter{
		path: strings.TrimSpace(path),
	}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Validate() error {
	if f.path == "" {
		return nil
	}
	if _, err := os.Stat(f.path); err != nil {
		return fmt.Errorf("exclude file: %w", err)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, s []suggestions.Suggestion) ([]suggestions.Suggestion, Step, error) {
	if f.path == "" {
		return s, Step{Initial: len(s), Dropped: 0, Left: len(s)}, nil
	}

	excluded, err := readKeywords(f.path)
	if err != nil {
		return s, Step{}, fmt.Errorf("getting excluded keywords from file: %w", err)
	}
	f.mu.Lock()
	f.keywords = excluded
	f.mu.Unlock()

	out, step := keep(s, func(item suggestions.Suggestion) bool {
		if !perKeyword(item.Category) || len(item.Keywords) == 0 {
			return true
		}
		for _, kw := range item.Keywords {
			if _, ok := excluded[keywords.Normalize(kw)]; !ok {
				return true
			}
		}
		return false
	})
	return out, step, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	f.mu.Lock()
	if f.keywords != nil {
		details["keywords"] = fmt.Sprint(len(f.keywords))
	}
	f.mu.Unlock()
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

func perKeyword(category string) bool {
	return slices.Contains([]string{
		suggestions.CategoryTechnical,
		suggestions.CategorySoftSkills,
		suggestions.CategoryIndustry,
	}, category)
}

func readKeywords(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	out := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out[keywords.Normalize(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
