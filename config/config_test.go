package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrianliechti/toolify/pkg/action"
	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/pipeline"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY",
		"REMOVEBG_API_KEY", "REPLICATE_API_TOKEN", "EXTRACTOR_URL", "EXTRACTOR",
		"OCR_MODE", "OCR_ENGINE", "MERGE_POLICY", "ACTION_TIMEOUT", "PORT", "ADDRESS",
		"LOG_LEVEL", "MAX_DOCUMENTS", "RATE_LIMIT",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_OPENAI_TOKEN", "sk-test")

	path := writeConfig(t, `
address: ":9000"
log_level: debug

server:
  rate_limit: 2
  max_body_size: 1024

providers:
  - type: openai
    token: ${TEST_OPENAI_TOKEN}
    models:
      gpt:
        id: gpt-4.1-mini

  - type: removebg
    token: rb-test

routers:
  primary:
    type: fallback
    routes:
      - model: gpt

extractors:
  pdf:
    type: completer
    model: primary
    plain_text: true

recognizer:
  engine: none

actions:
  completer: primary
  ocr_mode: model
  merge_policy: abort
  timeout: 30s
  max_documents: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.Address)
	require.Equal(t, "DEBUG", cfg.LogLevel.String())
	require.Equal(t, 2.0, cfg.Server.RateLimit)
	require.Equal(t, int64(1024), cfg.Server.MaxBodySize)

	require.Equal(t, action.OCRModeModel, cfg.Action.OCRMode)
	require.Equal(t, pipeline.Abort, cfg.Action.MergePolicy)
	require.Equal(t, 4, cfg.Action.MaxDocuments)

	_, err = cfg.Completer("primary")
	require.NoError(t, err)

	_, err = cfg.Extractor("")
	require.NoError(t, err)

	_, err = cfg.Segmenter("")
	require.NoError(t, err)

	require.Nil(t, cfg.Recognizer())

	svc, err := cfg.Service(nil)
	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestLoadFileDefaultExtractor(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
providers:
  - type: anthropic
    token: test
    models:
      claude:
        id: claude-sonnet-4-5

recognizer:
  engine: none
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.Extractor("default")
	require.NoError(t, err)
}

func TestLoadFileInvalid(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		content string
	}{
		{"no providers", "recognizer:\n  engine: none\n"},
		{"missing token", "providers:\n  - type: openai\n    models:\n      gpt: {}\n"},
		{"unknown reference", "providers:\n  - type: gemini\n    token: x\n    models:\n      g: {}\nrecognizer:\n  engine: none\nactions:\n  extractor: missing\n"},
		{"invalid merge policy", "providers:\n  - type: gemini\n    token: x\n    models:\n      g: {}\nrecognizer:\n  engine: none\nactions:\n  merge_policy: sometimes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, errdefs.ErrConfig)
		})
	}
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("REMOVEBG_API_KEY", "rb-test")
	t.Setenv("OCR_ENGINE", "none")
	t.Setenv("PORT", "3000")
	t.Setenv("MERGE_POLICY", "abort")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, ":3000", cfg.Address)
	require.Equal(t, pipeline.Abort, cfg.Action.MergePolicy)

	_, err = cfg.Completer("openai")
	require.NoError(t, err)

	_, err = cfg.Extractor("default")
	require.NoError(t, err)

	_, err = cfg.Segmenter("removebg")
	require.NoError(t, err)
}

func TestLoadEnvironmentMissingCredentials(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("OCR_ENGINE", "none")

	_, err := Load("")
	require.ErrorIs(t, err, errdefs.ErrConfig)
}
