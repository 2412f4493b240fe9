package matching

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds MatchMany when no limit is given.
const DefaultConcurrency = 4

// Job is a job description to compare against a résumé.
type Job struct {
	Source string
	Text   string
}

// MatchMany compares one résumé against every job and returns the results
// ranked by overall score, best first. Ties keep the input order.
func (e *Engine) MatchMany(ctx context.Context, resumeText string, jobs []Job, concurrency int) ([]*Result, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			res, err := e.Match(gctx, Request{
				Source:             job.Source,
				ResumeText:         resumeText,
				JobDescriptionText: job.Text,
			})
			if err != nil {
				return fmt.Errorf("match %q: %w", job.Source, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})

	e.logger.Info("batch matched", zap.Int("jobs", len(jobs)))

	return results, nil
}
