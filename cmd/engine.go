package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-matcher/internal/ai"
	"github.com/spigell/resume-matcher/internal/ai/gemini"
	"github.com/spigell/resume-matcher/internal/extraction"
	"github.com/spigell/resume-matcher/internal/filtering"
	"github.com/spigell/resume-matcher/internal/lexicon"
	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/matching"
	"github.com/spigell/resume-matcher/internal/secrets"
	"github.com/spigell/resume-matcher/internal/suggestions"
)

func newLogger() (*zap.Logger, error) {
	return logger.New(logger.Config{
		JSON:  viper.GetBool("json"),
		Debug: viper.GetBool("debug"),
	})
}

// setup builds the logger, reads the config and wires the engine, exiting on
// any failure.
func setup(ctx context.Context) (*zap.Logger, *Config, *matching.Engine) {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating a logger: %s\n", err)
		os.Exit(1)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting with config", zap.Any("config", config))

	engine, err := buildEngine(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the matching engine", zap.Error(err))
	}

	return logger, config, engine
}

func buildEngine(ctx context.Context, config *Config, logger *zap.Logger) (*matching.Engine, error) {
	lex, err := lexicon.Load(config.Lexicon)
	if err != nil {
		return nil, fmt.Errorf("loading lexicon: %w", err)
	}

	enricher, err := newEnricher(ctx, config.AI, logger)
	if err != nil {
		// enrichment is optional, the lexicon path still works
		logger.Warn("skipping keyword enrichment", zap.Error(err))
		enricher = nil
	}

	extractor := extraction.New(lex, enricher, logger.Named("extraction"))
	generator := suggestions.NewGenerator(lex, config.Suggestions)

	steps := filtering.Steps(config.Filters)
	logFilters(logger, steps)

	return matching.New(extractor, generator, steps, logger), nil
}

func logFilters(logger *zap.Logger, steps []filtering.Filter) {
	for _, status := range filtering.Describe(steps) {
		fields := []zap.Field{
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
		}
		if status.Reason != "" {
			fields = append(fields, zap.String("reason", status.Reason))
		}
		if len(status.Details) > 0 {
			fields = append(fields, zap.Any("details", status.Details))
		}
		logger.Debug("filter status", fields...)
	}
}

// newEnricher returns nil without error when AI is disabled.
func newEnricher(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Enricher, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != gemini.Provider {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		Env:   "GEMINI_API_KEY",
		File:  cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries))

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewEnricher(generator, cfg.Gemini.MaxLogLength, logger), nil
}

// readText reads a document, "-" meaning stdin.
func readText(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	return string(data), nil
}

var jobExtensions = map[string]bool{".txt": true, ".md": true, ".text": true}

// loadJobs reads every path; directories contribute their text files in
// name order.
func loadJobs(paths []string) ([]matching.Job, error) {
	var jobs []matching.Job

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		files := []string{path}
		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, err
			}
			files = files[:0]
			for _, entry := range entries {
				if entry.IsDir() || !jobExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
					continue
				}
				files = append(files, filepath.Join(path, entry.Name()))
			}
			sort.Strings(files)
		}

		for _, file := range files {
			text, err := readText(file)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, matching.Job{Source: file, Text: text})
		}
	}

	return jobs, nil
}
