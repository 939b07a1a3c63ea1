package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/extractor"
	"github.com/adrianliechti/toolify/pkg/extractor/completer"
	"github.com/adrianliechti/toolify/pkg/extractor/custom"
	"github.com/adrianliechti/toolify/pkg/extractor/tabula"
	"github.com/adrianliechti/toolify/pkg/otel"
)

type extractorConfig struct {
	Type string `yaml:"type"`

	Model  string `yaml:"model"`
	Prompt string `yaml:"prompt"`

	PlainText bool `yaml:"plain_text"`

	URL string `yaml:"url"`

	ExcludeHeaders bool `yaml:"exclude_headers"`
}

func (cfg *Config) registerExtractors(f *configFile) error {
	if f.Extractors.IsZero() {
		return nil
	}

	var configs map[string]extractorConfig

	if err := f.Extractors.Decode(&configs); err != nil {
		return err
	}

	for i := 0; i+1 < len(f.Extractors.Content); i += 2 {
		id := f.Extractors.Content[i].Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		if err := cfg.registerExtractor(id, config); err != nil {
			return err
		}
	}

	return nil
}

func (cfg *Config) registerExtractor(id string, c extractorConfig) error {
	e, err := cfg.createExtractor(c)

	if err != nil {
		return fmt.Errorf("extractor %s: %w", id, err)
	}

	cfg.RegisterExtractor(id, otel.NewExtractor(strings.ToLower(c.Type), extractor.WithTimeout(e, cfg.Action.Timeout)))

	return nil
}

func (cfg *Config) createExtractor(c extractorConfig) (extractor.Provider, error) {
	switch strings.ToLower(c.Type) {
	case "completer", "model":
		p, err := cfg.Completer(c.Model)

		if err != nil {
			return nil, fmt.Errorf("%w: %w", errdefs.ErrConfig, err)
		}

		var options []completer.Option

		if c.Prompt != "" {
			options = append(options, completer.WithPrompt(c.Prompt))
		}

		if c.PlainText {
			options = append(options, completer.WithPlainText())
		}

		return completer.New(p, options...)

	case "tabula":
		var options []tabula.Option

		if c.ExcludeHeaders {
			options = append(options, tabula.WithoutHeadersAndFooters())
		}

		return tabula.New(options...)

	case "custom":
		return custom.New(c.URL)

	default:
		return nil, errors.New("invalid extractor type: " + c.Type)
	}
}
