package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-matcher/internal/matching"
)

// ranking is the compact batch output.
type ranking struct {
	Rank         int     `json:"rank"`
	Source       string  `json:"source"`
	ID           string  `json:"id"`
	OverallScore float64 `json:"overall_score"`
	Missing      int     `json:"missing_keywords"`
}

var batchCmd = &cobra.Command{
	Use:   "batch --resume FILE JOB_FILE_OR_DIR...",
	Short: "Rank job descriptions by how well a resume matches them",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		batch(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("resume", "r", "", "resume text file ('-' for stdin)")
	batchCmd.Flags().IntP("concurrency", "c", 0, "parallel matches (default from config)")
	batchCmd.Flags().Bool("full", false, "print full results instead of the ranking")
}

func batch(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, config, engine := setup(ctx)

	resumePath, _ := cmd.Flags().GetString("resume")
	resume, err := readText(resumePath)
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err))
	}

	jobs, err := loadJobs(args)
	if err != nil {
		logger.Fatal("reading job descriptions", zap.Error(err))
	}
	if len(jobs) == 0 {
		logger.Info("exiting", zap.String("reason", "no job descriptions found"))
		return
	}

	concurrency := config.Concurrency
	if c, _ := cmd.Flags().GetInt("concurrency"); c > 0 {
		concurrency = c
	}

	logger.Info("matching job descriptions", zap.Int("count", len(jobs)), zap.Int("concurrency", concurrency))

	results, err := engine.MatchMany(ctx, resume, jobs, concurrency)
	if err != nil {
		logger.Fatal("batch matching", zap.Error(err))
	}

	var out any = rank(results)
	if full, _ := cmd.Flags().GetBool("full"); full {
		out = results
	}

	if err := printJSON(cmd.OutOrStdout(), out); err != nil {
		logger.Fatal("printing result", zap.Error(err))
	}
}

func rank(results []*matching.Result) []ranking {
	out := make([]ranking, 0, len(results))
	for i, res := range results {
		out = append(out, ranking{
			Rank:         i + 1,
			Source:       res.Source,
			ID:           res.ID,
			OverallScore: res.OverallScore,
			Missing:      res.Reconciliation.TotalMissing(),
		})
	}
	return out
}
