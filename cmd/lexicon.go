package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-matcher/internal/keywords"
	"github.com/spigell/resume-matcher/internal/lexicon"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Print the lexicon entries in use",
	Run: func(cmd *cobra.Command, _ []string) {
		listLexicon(cmd)
	},
}

func init() {
	rootCmd.AddCommand(lexiconCmd)

	lexiconCmd.Flags().String("category", "", "only entries of this category (technical, soft, other)")
	lexiconCmd.Flags().String("priority", "", "only entries of this priority tier (critical, high, medium)")
}

func listLexicon(cmd *cobra.Command) {
	logger, err := newLogger()
	if err != nil {
		cmd.PrintErrf("creating a logger: %s\n", err)
		return
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	lex, err := lexicon.Load(config.Lexicon)
	if err != nil {
		logger.Fatal("loading lexicon", zap.Error(err))
	}

	var category keywords.Category
	if raw, _ := cmd.Flags().GetString("category"); raw != "" {
		if category, err = keywords.ParseCategory(raw); err != nil {
			logger.Fatal("parsing category", zap.Error(err))
		}
	}

	var tier lexicon.Priority
	if raw, _ := cmd.Flags().GetString("priority"); raw != "" {
		if tier, err = lexicon.ParsePriority(raw); err != nil {
			logger.Fatal("parsing priority", zap.Error(err))
		}
	}

	entries := filterEntries(lex.Entries(category), tier)
	logger.Debug("lexicon entries", zap.Int("count", len(entries)), zap.Int("total", lex.Len()))

	if err := printJSON(cmd.OutOrStdout(), lexicon.File{Entries: entries}); err != nil {
		logger.Fatal("printing lexicon", zap.Error(err))
	}
}

func filterEntries(entries []lexicon.Entry, tier lexicon.Priority) []lexicon.Entry {
	if tier == "" {
		return entries
	}
	out := make([]lexicon.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Priority == tier {
			out = append(out, e)
		}
	}
	return out
}
