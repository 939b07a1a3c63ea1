package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/provider/anthropic"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// registerEnvironment configures providers from well-known variables when no
// configuration file is present.
func (cfg *Config) registerEnvironment() error {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Address = ":" + port
	}

	cfg.Address = getEnv("ADDRESS", cfg.Address)

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("%w: invalid LOG_LEVEL: %w", errdefs.ErrConfig, err)
		}
	}

	actions := actionConfig{
		OCRMode:     os.Getenv("OCR_MODE"),
		OCRLanguage: os.Getenv("OCR_LANGUAGE"),
		MergePolicy: os.Getenv("MERGE_POLICY"),
		Timeout:     os.Getenv("ACTION_TIMEOUT"),
	}

	if v := os.Getenv("MAX_DOCUMENTS"); v != "" {
		n, err := strconv.Atoi(v)

		if err != nil {
			return fmt.Errorf("%w: invalid MAX_DOCUMENTS: %w", errdefs.ErrConfig, err)
		}

		actions.MaxDocuments = n
	}

	if err := cfg.applyActions(actions); err != nil {
		return err
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)

		if err != nil {
			return fmt.Errorf("%w: invalid RATE_LIMIT: %w", errdefs.ErrConfig, err)
		}

		cfg.Server.RateLimit = limit
	}

	providers := []struct {
		kind  string
		token string
		url   string
		model string
	}{
		{"openai", os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_BASE_URL"), getEnv("OPENAI_MODEL", "gpt-4.1-mini")},
		{"anthropic", os.Getenv("ANTHROPIC_API_KEY"), os.Getenv("ANTHROPIC_BASE_URL"), getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5")},
		{"gemini", getEnv("GEMINI_API_KEY", os.Getenv("GOOGLE_API_KEY")), os.Getenv("GEMINI_BASE_URL"), getEnv("GEMINI_MODEL", "gemini-2.5-flash")},
	}

	for _, p := range providers {
		if p.token == "" && !(p.kind == "anthropic" && anthropic.IsBedrock(p.url)) {
			continue
		}

		err := cfg.registerProvider(providerConfig{
			Type: p.kind,

			URL:   p.url,
			Token: p.token,

			Models: map[string]modelConfig{
				p.kind: {ID: p.model},
			},
		})

		if err != nil {
			return err
		}
	}

	if token := os.Getenv("REMOVEBG_API_KEY"); token != "" {
		err := cfg.registerProvider(providerConfig{
			Type: "removebg",

			URL:   os.Getenv("REMOVEBG_URL"),
			Token: token,
		})

		if err != nil {
			return err
		}
	}

	if token := os.Getenv("REPLICATE_API_TOKEN"); token != "" {
		err := cfg.registerProvider(providerConfig{
			Type:  "replicate",
			Token: token,

			Models: map[string]modelConfig{
				"replicate": {ID: getEnv("REPLICATE_BACKGROUND_MODEL", "cjwbw/rembg")},
			},
		})

		if err != nil {
			return err
		}
	}

	if url := os.Getenv("EXTRACTOR_URL"); url != "" {
		if err := cfg.registerExtractor("custom", extractorConfig{Type: "custom", URL: url}); err != nil {
			return err
		}
	}

	if os.Getenv("EXTRACTOR") == "tabula" {
		if err := cfg.registerExtractor("tabula", extractorConfig{Type: "tabula"}); err != nil {
			return err
		}
	}

	recognizer := &recognizerConfig{
		Engine:   os.Getenv("OCR_ENGINE"),
		Policy:   os.Getenv("OCR_POLICY"),
		Tessdata: os.Getenv("TESSDATA_PREFIX"),
	}

	if err := cfg.registerRecognizer(recognizer); err != nil {
		return err
	}

	return cfg.registerDefaults()
}

// registerDefaults adds a model backed extractor when none is configured.
func (cfg *Config) registerDefaults() error {
	if len(cfg.extractors) > 0 || len(cfg.completers) == 0 {
		return nil
	}

	return cfg.registerExtractor("default", extractorConfig{
		Type:      "completer",
		PlainText: true,
	})
}
