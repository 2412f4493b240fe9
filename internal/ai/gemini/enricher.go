package gemini

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spigell/resume-matcher/internal/ai"
	"github.com/spigell/resume-matcher/internal/keywords"
	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/utils"

	"go.uber.org/zap"
)

const Provider = "gemini"

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

// Enricher asks Gemini for keywords the lexicon does not know about.
type Enricher struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.Enricher = (*Enricher)(nil)

//go:embed prompt.md
var systemPrompt string

const defaultMaxLogLength = 200

func NewEnricher(generator contentGenerator, maxLogLength int, log *zap.Logger) *Enricher {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Enricher{
		generator: generator,
		logger:    logger.WithCommonFields(log, Provider, generator.Model()),
		maxLogLen: maxLogLength,
	}
}

// Enrich returns the keywords found by the model in text.
func (e *Enricher) Enrich(ctx context.Context, text string) (keywords.Set, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return keywords.Set{}, errors.New("text must not be empty")
	}

	e.logger.Debug("gemini generate content request",
		zap.Int("text_length", utf8.RuneCountInString(text)),
		zap.String("text_preview", utils.TruncateForLog(text, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, systemPrompt, text)
	if err != nil {
		return keywords.Set{}, err
	}

	e.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, e.maxLogLen)),
	)

	return parseResponse(raw)
}

func parseResponse(raw string) (keywords.Set, error) {
	var set keywords.Set
	if err := json.Unmarshal([]byte(extractJSON(raw)), &set); err != nil {
		return keywords.Set{}, fmt.Errorf("parse gemini response: %w", err)
	}
	return set, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
