package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-matcher/internal/extraction"
	"github.com/spigell/resume-matcher/internal/lexicon"
)

var extractCmd = &cobra.Command{
	Use:   "extract FILE",
	Short: "Print the keywords found in a document ('-' for stdin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		extract(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func extract(cmd *cobra.Command, path string) {
	ctx := context.Background()

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

	enricher, err := newEnricher(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("skipping keyword enrichment", zap.Error(err))
		enricher = nil
	}

	text, err := readText(path)
	if err != nil {
		logger.Fatal("reading document", zap.Error(err))
	}

	set := extraction.New(lex, enricher, logger).ExtractContext(ctx, text)

	if err := printJSON(cmd.OutOrStdout(), set); err != nil {
		logger.Fatal("printing keywords", zap.Error(err))
	}
}
