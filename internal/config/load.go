package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g.
// CONCEPTSWIPE_GESTURE_HORIZONTAL_THRESHOLD.
const EnvPrefix = "CONCEPTSWIPE"

func setDefaults(v *viper.Viper) {
	v.SetDefault("gesture.horizontal_threshold", 100.0)
	v.SetDefault("gesture.vertical_threshold", 100.0)
	v.SetDefault("gesture.rotation_factor", 0.1)
	v.SetDefault("gesture.column_units", 12.0)
	v.SetDefault("gesture.row_units", 25.0)

	v.SetDefault("ingest.source", SourceSample)
	v.SetDefault("ingest.delay", 4500*time.Millisecond)
	v.SetDefault("ingest.max_cards", 12)
	v.SetDefault("ingest.max_document_bytes", int64(2<<20))
	v.SetDefault("ingest.max_tokens", 4096)
	v.SetDefault("ingest.temperature", 0.4)

	v.SetDefault("llm.provider", "")
	for name, model := range map[string]string{
		"anthropic":  "claude-haiku",
		"openai":     "gpt-mini",
		"gemini":     "gemini-flash",
		"openrouter": "google/gemini-2.5-flash",
	} {
		v.SetDefault("llm."+name+".api_key", "")
		v.SetDefault("llm."+name+".model", model)
	}
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.retry.max_attempts", 3)
	v.SetDefault("llm.retry.initial_wait", time.Second)
	v.SetDefault("llm.retry.max_wait", 10*time.Second)
	v.SetDefault("llm.retry.multiplier", 2.0)
	v.SetDefault("llm.timeout", 60*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetDefault("review.feedback_duration", 800*time.Millisecond)
}

// Load reads configuration. When path is empty, config.yaml in DefaultDir
// is used if it exists. Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if dir, err := DefaultDir(); err == nil {
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without reading files or
// the environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: decode defaults: %v", err))
	}
	return &cfg
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Dump writes the effective configuration as YAML with API keys masked.
func (c *Config) Dump(w io.Writer) error {
	red := *c
	for _, p := range []*ProviderConfig{&red.LLM.Anthropic, &red.LLM.OpenAI, &red.LLM.Gemini, &red.LLM.OpenRouter} {
		p.APIKey = redact(p.APIKey)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&red); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

func redact(key string) string {
	switch {
	case key == "":
		return ""
	case len(key) <= 8:
		return "****"
	default:
		return key[:4] + "****"
	}
}
