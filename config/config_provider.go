package config

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/otel"
	"github.com/adrianliechti/toolify/pkg/provider"
	"github.com/adrianliechti/toolify/pkg/provider/anthropic"
	"github.com/adrianliechti/toolify/pkg/provider/gemini"
	"github.com/adrianliechti/toolify/pkg/provider/openai"
	"github.com/adrianliechti/toolify/pkg/segmenter/removebg"
	"github.com/adrianliechti/toolify/pkg/segmenter/replicate"
)

type providerConfig struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Models map[string]modelConfig `yaml:"models"`
}

type modelConfig struct {
	ID string `yaml:"id"`
}

func (cfg *Config) registerProvider(p providerConfig) error {
	t := strings.ToLower(p.Type)

	switch t {
	case "openai", "anthropic", "gemini":
		if len(p.Models) == 0 {
			return fmt.Errorf("%w: provider %s has no models", errdefs.ErrConfig, t)
		}

		for _, id := range slices.Sorted(maps.Keys(p.Models)) {
			model := p.Models[id].ID

			if model == "" {
				model = id
			}

			completer, err := cfg.createCompleter(t, p.URL, p.Token, model)

			if err != nil {
				return err
			}

			if _, ok := completer.(otel.Completer); !ok {
				completer = otel.NewCompleter(t, model, completer)
			}

			cfg.RegisterCompleter(id, completer)
		}

	case "removebg":
		if p.Token == "" && p.URL == "" {
			return fmt.Errorf("%w: removebg provider needs a token", errdefs.ErrConfig)
		}

		s, err := removebg.New(p.URL, removebg.WithToken(p.Token), removebg.WithClient(cfg.httpClient()))

		if err != nil {
			return err
		}

		cfg.RegisterSegmenter(providerName(p, "removebg"), otel.NewSegmenter(t, s))

	case "replicate":
		if p.Token == "" {
			return fmt.Errorf("%w: replicate provider needs a token", errdefs.ErrConfig)
		}

		for _, id := range slices.Sorted(maps.Keys(p.Models)) {
			model := p.Models[id].ID

			if model == "" {
				model = id
			}

			s, err := replicate.New(p.URL, model, replicate.WithToken(p.Token), replicate.WithClient(cfg.httpClient()))

			if err != nil {
				return err
			}

			cfg.RegisterSegmenter(id, otel.NewSegmenter(t, s))
		}

	default:
		return errors.New("invalid provider type: " + p.Type)
	}

	return nil
}

func (cfg *Config) createCompleter(t, url, token, model string) (provider.Completer, error) {
	if token == "" && !(t == "anthropic" && anthropic.IsBedrock(url)) {
		return nil, fmt.Errorf("%w: %s provider needs a token", errdefs.ErrConfig, t)
	}

	switch t {
	case "openai":
		return openai.NewCompleter(url, model, openai.WithToken(token), openai.WithClient(cfg.httpClient()))

	case "anthropic":
		return anthropic.NewCompleter(url, model, anthropic.WithToken(token), anthropic.WithClient(cfg.httpClient()))

	case "gemini":
		return gemini.NewCompleter(url, model, gemini.WithToken(token), gemini.WithClient(cfg.httpClient()))

	default:
		return nil, errors.New("invalid completer type: " + t)
	}
}

func (cfg *Config) httpClient() *http.Client {
	return &http.Client{
		Timeout: cfg.Action.Timeout,
	}
}

func providerName(p providerConfig, fallback string) string {
	if p.Name != "" {
		return p.Name
	}

	return fallback
}
