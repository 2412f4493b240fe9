package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/resume-matcher/internal/filtering"
	"github.com/spigell/resume-matcher/internal/matching"
	"github.com/spigell/resume-matcher/internal/suggestions"
)

const (
	app       = "resume-matcher"
	envPrefix = "RESUME_MATCHER"
)

type Config struct {
	// Lexicon is an optional YAML/JSON file extending the built-in lexicon.
	Lexicon     string              `mapstructure:"lexicon" json:"lexicon,omitempty"`
	Concurrency int                 `mapstructure:"concurrency" json:"concurrency" validate:"gte=0,lte=64"`
	Suggestions suggestions.Options `mapstructure:"suggestions" json:"suggestions"`
	Filters     filtering.Config    `mapstructure:"filters" json:"filters"`
	AI          *AIConfig           `mapstructure:"ai" json:"ai,omitempty"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled" json:"enabled"`
	Provider string        `mapstructure:"provider" json:"provider,omitempty" validate:"omitempty,oneof=gemini"`
	Gemini   *GeminiConfig `mapstructure:"gemini" json:"gemini,omitempty" validate:"required_if=Enabled true"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key" json:"-"`
	APIKeyFile   string `mapstructure:"api-key-file" json:"api_key_file,omitempty"`
	Model        string `mapstructure:"model" json:"model,omitempty"`
	MaxRetries   int    `mapstructure:"max-retries" json:"max_retries" validate:"gte=0,lte=10"`
	MaxLogLength int    `mapstructure:"max-log-length" json:"max_log_length" validate:"gte=0"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-matcher compares a resume with job descriptions and suggests improvements",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("lexicon", "", "a lexicon file extending the built-in keywords")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("lexicon", rootCmd.PersistentFlags().Lookup("lexicon"))

	setDefaults(viper.GetViper())
}

// setDefaults registers every key so env variables can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("concurrency", matching.DefaultConcurrency)
	v.SetDefault("suggestions.max-technical", suggestions.DefaultMaxTechnical)
	v.SetDefault("suggestions.max-soft-skills", suggestions.DefaultMaxSoftSkills)
	v.SetDefault("suggestions.max-industry", suggestions.DefaultMaxIndustry)
	v.SetDefault("suggestions.max-advantages", suggestions.DefaultMaxAdvantages)
	v.SetDefault("filters.min-priority", "")
	v.SetDefault("filters.exclude-categories", []string{})
	v.SetDefault("filters.exclude-file", "")
	v.SetDefault("filters.top", 0)
	v.SetDefault("filters.disable", []string{})
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.gemini.model", "")
	v.SetDefault("ai.gemini.api-key", "")
	v.SetDefault("ai.gemini.max-retries", 3)
	v.SetDefault("ai.gemini.max-log-length", 200)
}

func initConfig() {
	// .env is optional.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// A missing default config is fine, a broken or missing explicit one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&config); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &config, nil
}
