// Package config loads conceptswipe settings from defaults, an optional
// YAML file and CONCEPTSWIPE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/conceptswipe/internal/gesture"
	"github.com/abhisek/conceptswipe/internal/ingest"
	"github.com/abhisek/conceptswipe/internal/llm"
)

// Ingestion sources.
const (
	SourceSample = "sample"
	SourceLLM    = "llm"
)

// Config is the root configuration.
type Config struct {
	Gesture GestureConfig `mapstructure:"gesture" yaml:"gesture"`
	Ingest  IngestConfig  `mapstructure:"ingest" yaml:"ingest"`
	LLM     LLMConfig     `mapstructure:"llm" yaml:"llm"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Review  ReviewConfig  `mapstructure:"review" yaml:"review"`
}

// GestureConfig holds the swipe thresholds. ColumnUnits and RowUnits
// convert terminal cells into gesture units.
type GestureConfig struct {
	HorizontalThreshold float64 `mapstructure:"horizontal_threshold" yaml:"horizontal_threshold" validate:"gt=0"`
	VerticalThreshold   float64 `mapstructure:"vertical_threshold" yaml:"vertical_threshold" validate:"gt=0"`
	RotationFactor      float64 `mapstructure:"rotation_factor" yaml:"rotation_factor" validate:"gte=0"`
	ColumnUnits         float64 `mapstructure:"column_units" yaml:"column_units" validate:"gt=0"`
	RowUnits            float64 `mapstructure:"row_units" yaml:"row_units" validate:"gt=0"`
}

type IngestConfig struct {
	Source           string        `mapstructure:"source" yaml:"source" validate:"required,oneof=sample llm"`
	Delay            time.Duration `mapstructure:"delay" yaml:"delay" validate:"gte=0"`
	MaxCards         int           `mapstructure:"max_cards" yaml:"max_cards" validate:"gt=0,lte=50"`
	MaxDocumentBytes int64         `mapstructure:"max_document_bytes" yaml:"max_document_bytes" validate:"gt=0"`
	MaxTokens        int           `mapstructure:"max_tokens" yaml:"max_tokens" validate:"gt=0"`
	Temperature      float64       `mapstructure:"temperature" yaml:"temperature" validate:"gte=0,lte=2"`
}

// LLMConfig mirrors llm.Config. An empty Provider means auto-discover
// from the vendors' standard API key variables.
type LLMConfig struct {
	Provider   string         `mapstructure:"provider" yaml:"provider" validate:"omitempty,oneof=anthropic openai gemini openrouter mock"`
	Anthropic  ProviderConfig `mapstructure:"anthropic" yaml:"anthropic"`
	OpenAI     ProviderConfig `mapstructure:"openai" yaml:"openai"`
	Gemini     ProviderConfig `mapstructure:"gemini" yaml:"gemini"`
	OpenRouter ProviderConfig `mapstructure:"openrouter" yaml:"openrouter"`
	Retry      RetryConfig    `mapstructure:"retry" yaml:"retry"`
	Timeout    time.Duration  `mapstructure:"timeout" yaml:"timeout" validate:"gt=0"`
}

type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key" yaml:"api_key"`
	Model   string `mapstructure:"model" yaml:"model" validate:"required"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url,omitempty" validate:"omitempty,url"`
}

type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" yaml:"max_attempts" validate:"gte=1,lte=10"`
	InitialWait time.Duration `mapstructure:"initial_wait" yaml:"initial_wait" validate:"gte=0"`
	MaxWait     time.Duration `mapstructure:"max_wait" yaml:"max_wait" validate:"gtefield=InitialWait"`
	Multiplier  float64       `mapstructure:"multiplier" yaml:"multiplier" validate:"gte=1"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"required,oneof=debug info warn error off"`
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json"`
	// File is the log path; empty means the default state directory.
	File string `mapstructure:"file" yaml:"file"`
}

type ReviewConfig struct {
	FeedbackDuration time.Duration `mapstructure:"feedback_duration" yaml:"feedback_duration" validate:"gte=0"`
}

// Thresholds returns the classifier thresholds.
func (c *Config) Thresholds() gesture.Thresholds {
	return gesture.Thresholds{
		Horizontal:     c.Gesture.HorizontalThreshold,
		Vertical:       c.Gesture.VerticalThreshold,
		RotationFactor: c.Gesture.RotationFactor,
	}
}

// IngestLLM returns the LLM ingester settings.
func (c *Config) IngestLLM() ingest.LLMConfig {
	ic := ingest.DefaultLLMConfig()
	ic.MaxCards = c.Ingest.MaxCards
	ic.MaxTokens = c.Ingest.MaxTokens
	ic.Temperature = c.Ingest.Temperature
	return ic
}

// LLMConfig converts the llm section into a provider config. With no
// provider set, the first vendor API key found in the environment wins.
func (c *Config) LLMConfig() (llm.Config, error) {
	out := llm.DefaultConfig()
	out.Provider = c.LLM.Provider
	out.Anthropic = llm.AnthropicConfig{APIKey: c.LLM.Anthropic.APIKey, Model: c.LLM.Anthropic.Model}
	out.OpenAI = llm.OpenAIConfig{APIKey: c.LLM.OpenAI.APIKey, Model: c.LLM.OpenAI.Model, BaseURL: c.LLM.OpenAI.BaseURL}
	out.Gemini = llm.GeminiConfig{APIKey: c.LLM.Gemini.APIKey, Model: c.LLM.Gemini.Model}
	out.OpenRouter = llm.OpenRouterConfig{APIKey: c.LLM.OpenRouter.APIKey, Model: c.LLM.OpenRouter.Model, BaseURL: c.LLM.OpenRouter.BaseURL}
	out.Retry = llm.RetryConfig{
		MaxAttempts: c.LLM.Retry.MaxAttempts,
		InitialWait: c.LLM.Retry.InitialWait,
		MaxWait:     c.LLM.Retry.MaxWait,
		Multiplier:  c.LLM.Retry.Multiplier,
	}
	out.Timeout = c.LLM.Timeout

	if out.Provider == "" {
		found, ok := llm.DiscoverConfig()
		if !ok {
			return llm.Config{}, fmt.Errorf("no LLM provider configured: set llm.provider or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY")
		}
		out.Provider = found.Provider
		fillKey(&out, found.APIKey())
	}
	if out.APIKey() == "" {
		fillKey(&out, os.Getenv(vendorKeyEnv[out.Provider]))
	}
	if err := out.Validate(); err != nil {
		return llm.Config{}, err
	}
	return out, nil
}

var vendorKeyEnv = map[string]string{
	llm.ProviderAnthropic:  "ANTHROPIC_API_KEY",
	llm.ProviderOpenAI:     "OPENAI_API_KEY",
	llm.ProviderGemini:     "GEMINI_API_KEY",
	llm.ProviderOpenRouter: "OPENROUTER_API_KEY",
}

func fillKey(c *llm.Config, key string) {
	if key == "" {
		return
	}
	switch c.Provider {
	case llm.ProviderAnthropic:
		c.Anthropic.APIKey = key
	case llm.ProviderOpenAI:
		c.OpenAI.APIKey = key
	case llm.ProviderGemini:
		c.Gemini.APIKey = key
	case llm.ProviderOpenRouter:
		c.OpenRouter.APIKey = key
	}
}

// DefaultDir returns $XDG_CONFIG_HOME/conceptswipe, falling back to
// ~/.config/conceptswipe.
func DefaultDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "conceptswipe"), nil
}
