package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/conceptswipe/internal/llm"
)

// isolate points XDG_CONFIG_HOME at an empty dir and clears vendor keys.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.Gesture.HorizontalThreshold)
	assert.Equal(t, 100.0, cfg.Gesture.VerticalThreshold)
	assert.Equal(t, 0.1, cfg.Gesture.RotationFactor)
	assert.Equal(t, SourceSample, cfg.Ingest.Source)
	assert.Equal(t, 4500*time.Millisecond, cfg.Ingest.Delay)
	assert.Equal(t, 800*time.Millisecond, cfg.Review.FeedbackDuration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "claude-haiku", cfg.LLM.Anthropic.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
}

func TestLoad_FileInDefaultDir(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "conceptswipe", "config.yaml"), `
gesture:
  horizontal_threshold: 80
ingest:
  delay: 1s
log:
  level: DEBUG
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 80.0, cfg.Gesture.HorizontalThreshold)
	assert.Equal(t, 100.0, cfg.Gesture.VerticalThreshold)
	assert.Equal(t, time.Second, cfg.Ingest.Delay)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "c.yaml")
	writeFile(t, path, "gesture:\n  vertical_threshold: 50\ningest:\n  source: sample\n")
	t.Setenv("CONCEPTSWIPE_GESTURE_VERTICAL_THRESHOLD", "140")
	t.Setenv("CONCEPTSWIPE_INGEST_SOURCE", "llm")
	t.Setenv("CONCEPTSWIPE_REVIEW_FEEDBACK_DURATION", "250ms")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 140.0, cfg.Gesture.VerticalThreshold)
	assert.Equal(t, SourceLLM, cfg.Ingest.Source)
	assert.Equal(t, 250*time.Millisecond, cfg.Review.FeedbackDuration)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"zero threshold", "CONCEPTSWIPE_GESTURE_HORIZONTAL_THRESHOLD", "0"},
		{"unknown source", "CONCEPTSWIPE_INGEST_SOURCE", "magic"},
		{"unknown level", "CONCEPTSWIPE_LOG_LEVEL", "loud"},
		{"unknown provider", "CONCEPTSWIPE_LLM_PROVIDER", "acme"},
		{"too many cards", "CONCEPTSWIPE_INGEST_MAX_CARDS", "500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.env, tt.val)
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestConfig_Thresholds(t *testing.T) {
	cfg := Default()
	th := cfg.Thresholds()
	assert.Equal(t, 100.0, th.Horizontal)
	assert.Equal(t, 100.0, th.Vertical)
	assert.Equal(t, 0.1, th.RotationFactor)
}

func TestConfig_LLMConfig(t *testing.T) {
	t.Run("explicit provider with configured key", func(t *testing.T) {
		isolate(t)
		cfg := Default()
		cfg.LLM.Provider = llm.ProviderOpenAI
		cfg.LLM.OpenAI.APIKey = "sk-configured"

		out, err := cfg.LLMConfig()
		require.NoError(t, err)
		assert.Equal(t, llm.ProviderOpenAI, out.Provider)
		assert.Equal(t, "sk-configured", out.APIKey())
		assert.Equal(t, "gpt-mini", out.OpenAI.Model)
	})

	t.Run("explicit provider falls back to vendor env", func(t *testing.T) {
		isolate(t)
		t.Setenv("ANTHROPIC_API_KEY", "sk-ant-env")
		cfg := Default()
		cfg.LLM.Provider = llm.ProviderAnthropic

		out, err := cfg.LLMConfig()
		require.NoError(t, err)
		assert.Equal(t, "sk-ant-env", out.APIKey())
	})

	t.Run("auto discovery keeps configured models", func(t *testing.T) {
		isolate(t)
		t.Setenv("GEMINI_API_KEY", "g-key")
		cfg := Default()
		cfg.LLM.Gemini.Model = "gemini-2.0-flash"

		out, err := cfg.LLMConfig()
		require.NoError(t, err)
		assert.Equal(t, llm.ProviderGemini, out.Provider)
		assert.Equal(t, "g-key", out.APIKey())
		assert.Equal(t, "gemini-2.0-flash", out.Gemini.Model)
	})

	t.Run("nothing configured", func(t *testing.T) {
		isolate(t)
		_, err := Default().LLMConfig()
		assert.Error(t, err)
	})

	t.Run("mock needs no key", func(t *testing.T) {
		isolate(t)
		cfg := Default()
		cfg.LLM.Provider = llm.ProviderMock
		_, err := cfg.LLMConfig()
		assert.NoError(t, err)
	})
}

func TestConfig_DumpRedactsKeys(t *testing.T) {
	cfg := Default()
	cfg.LLM.Anthropic.APIKey = "sk-ant-very-secret"

	var buf bytes.Buffer
	require.NoError(t, cfg.Dump(&buf))

	out := buf.String()
	assert.NotContains(t, out, "very-secret")
	assert.Contains(t, out, "sk-a****")
	assert.Contains(t, out, "horizontal_threshold: 100")
	assert.Contains(t, out, "feedback_duration: 800ms")
	assert.Equal(t, "sk-ant-very-secret", cfg.LLM.Anthropic.APIKey)
}
