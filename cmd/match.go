package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-matcher/internal/keywords"
	"github.com/spigell/resume-matcher/internal/matching"
)

const (
	PromptPrint       = "Print result as JSON"
	PromptSuggestions = "Show suggestions"
	PromptKeywords    = "Report by keyword category"
	PromptGaps        = "Show keyword gaps"
	PromptToFile      = "Dump result to file"
	PromptExit        = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptSuggestions, PromptKeywords, PromptGaps, PromptPrint, PromptToFile, PromptExit},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("resume", "r", "", "resume text file ('-' for stdin)")
	matchCmd.Flags().StringP("job", "J", "", "job description text file ('-' for stdin)")
	matchCmd.Flags().BoolP("yes", "y", false, "do not ask what to do, print the result as JSON")
	matchCmd.Flags().StringP("output", "o", "", "write the JSON result to this file")
}

func match(cmd *cobra.Command) {
	ctx := context.Background()

	logger, _, engine := setup(ctx)

	resumePath, _ := cmd.Flags().GetString("resume")
	jobPath, _ := cmd.Flags().GetString("job")
	if resumePath == "-" && jobPath == "-" {
		logger.Fatal("only one of --resume and --job may be read from stdin")
	}

	resume, err := readText(resumePath)
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err))
	}
	job, err := readText(jobPath)
	if err != nil {
		logger.Fatal("reading job description", zap.Error(err))
	}

	result, err := engine.Match(ctx, matching.Request{
		Source:             jobPath,
		ResumeText:         resume,
		JobDescriptionText: job,
	})
	if err != nil {
		if errors.Is(err, matching.ErrInvalidInput) {
			logger.Fatal("nothing to match", zap.Error(err),
				zap.String("hint", "pass --resume and --job with non-empty files"))
		}
		logger.Fatal("matching", zap.Error(err))
	}

	logger.Info("match finished",
		zap.String("id", result.ID),
		zap.Float64("overall_score", result.OverallScore),
		zap.Int("suggestions", len(result.Suggestions)),
	)

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := writeResult(output, result); err != nil {
			logger.Fatal("writing result", zap.Error(err))
		}
		logger.Info("result written", zap.String("filename", output))
	}

	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		if err := printJSON(cmd.OutOrStdout(), result); err != nil {
			logger.Fatal("printing result", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(cmd.OutOrStdout(), action, logger, result); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(w io.Writer, action string, logger *zap.Logger, result *matching.Result) error {
	switch action {
	case PromptSuggestions:
		return writeSuggestions(w, result)
	case PromptKeywords:
		return writeKeywordReport(w, result)
	case PromptGaps:
		return printJSON(w, result.KeywordGaps)
	case PromptPrint:
		return printJSON(w, result)
	case PromptToFile:
		filename, err := dumpToTmpFile(app+"-*.json", result)
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func writeResult(path string, result *matching.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return printJSON(file, result)
}

func writeSuggestions(w io.Writer, result *matching.Result) error {
	if len(result.Suggestions) == 0 {
		_, err := fmt.Fprintln(w, "No suggestions.")
		return err
	}

	for i, s := range result.Suggestions {
		if _, err := fmt.Fprintf(w, "%d. [%s/%s] %s\n   %s\n", i+1, s.Priority, s.Category, s.Title, s.Action); err != nil {
			return err
		}
		if s.Example != "" {
			if _, err := fmt.Fprintf(w, "   e.g. %s\n", s.Example); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeKeywordReport(w io.Writer, result *matching.Result) error {
	if _, err := fmt.Fprintf(w, "Overall score: %.2f\n", result.OverallScore); err != nil {
		return err
	}

	scores := map[keywords.Category]float64{
		keywords.Technical:  result.CategoryScores.Technical,
		keywords.SoftSkills: result.CategoryScores.SoftSkills,
		keywords.Other:      result.CategoryScores.Other,
	}

	for _, c := range keywords.Categories {
		_, err := fmt.Fprintf(w, "\n%s (%.2f)\n  matched: %s\n  missing: %s\n  extra:   %s\n",
			c, scores[c],
			joinOrDash(result.MatchedKeywords[c]),
			joinOrDash(result.MissingKeywords[c]),
			joinOrDash(result.ExtraKeywords[c]),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func joinOrDash(list []string) string {
	if len(list) == 0 {
		return "-"
	}
	return strings.Join(list, ", ")
}
