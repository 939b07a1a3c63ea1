package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/adrianliechti/toolify/pkg/action"
	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/extractor"
	"github.com/adrianliechti/toolify/pkg/pipeline"
	"github.com/adrianliechti/toolify/pkg/provider"
	"github.com/adrianliechti/toolify/pkg/recognizer"
	"github.com/adrianliechti/toolify/pkg/segmenter"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address  string
	LogLevel slog.Level

	Server ServerOptions
	Action ActionOptions

	completers map[string]provider.Completer
	extractors map[string]extractor.Provider
	segmenters map[string]segmenter.Provider

	defaultCompleter string
	defaultExtractor string
	defaultSegmenter string

	recognizer *recognizer.Manager
}

type ServerOptions struct {
	AllowedOrigins []string

	RateLimit float64
	RateBurst int

	MaxBodySize int64
}

type ActionOptions struct {
	Completer string
	Extractor string
	Segmenter string

	OCRMode     action.OCRMode
	OCRLanguage string

	MergePolicy pipeline.FailurePolicy

	Timeout time.Duration

	MaxParaphraseLength int
	MaxDocuments        int
}

// Load reads the configuration file at path. Without a file the configuration
// is derived from environment variables alone. A .env file in the working
// directory is loaded first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}

	if path == "" {
		if err := cfg.registerEnvironment(); err != nil {
			return nil, err
		}

		return cfg, cfg.validate()
	}

	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	if err := cfg.registerFile(data); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func defaultConfig() *Config {
	return &Config{
		Address:  ":8080",
		LogLevel: slog.LevelInfo,

		Server: ServerOptions{
			AllowedOrigins: []string{"*"},

			RateLimit: 5,
			RateBurst: 10,

			MaxBodySize: 50 << 20,
		},

		Action: ActionOptions{
			OCRMode:     action.OCRModeTesseract,
			OCRLanguage: recognizer.DefaultLanguage,

			MergePolicy: pipeline.Skip,

			Timeout: 2 * time.Minute,

			MaxParaphraseLength: action.DefaultMaxParaphraseLength,
			MaxDocuments:        action.DefaultMaxDocuments,
		},

		completers: make(map[string]provider.Completer),
		extractors: make(map[string]extractor.Provider),
		segmenters: make(map[string]segmenter.Provider),
	}
}

type configFile struct {
	Address  string `yaml:"address"`
	LogLevel string `yaml:"log_level"`

	Server *serverConfig `yaml:"server"`

	Providers []providerConfig `yaml:"providers"`

	Routers    yaml.Node `yaml:"routers"`
	Extractors yaml.Node `yaml:"extractors"`

	Recognizer *recognizerConfig `yaml:"recognizer"`

	Actions *actionConfig `yaml:"actions"`
}

type serverConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`

	RateLimit *float64 `yaml:"rate_limit"`
	RateBurst *int     `yaml:"rate_burst"`

	MaxBodySize *int64 `yaml:"max_body_size"`
}

type actionConfig struct {
	Completer string `yaml:"completer"`
	Extractor string `yaml:"extractor"`
	Segmenter string `yaml:"segmenter"`

	OCRMode     string `yaml:"ocr_mode"`
	OCRLanguage string `yaml:"ocr_language"`

	MergePolicy string `yaml:"merge_policy"`

	Timeout string `yaml:"timeout"`

	MaxParaphraseLength int `yaml:"max_paraphrase_length"`
	MaxDocuments        int `yaml:"max_documents"`
}

func parseFile(data []byte) (*configFile, error) {
	data = []byte(os.ExpandEnv(string(data)))

	var file configFile

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return &file, nil
}

func (cfg *Config) registerFile(data []byte) error {
	f, err := parseFile(data)

	if err != nil {
		return err
	}

	if f.Address != "" {
		cfg.Address = f.Address
	}

	if f.LogLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(f.LogLevel)); err != nil {
			return err
		}
	}

	if s := f.Server; s != nil {
		if len(s.AllowedOrigins) > 0 {
			cfg.Server.AllowedOrigins = s.AllowedOrigins
		}

		if s.RateLimit != nil {
			cfg.Server.RateLimit = *s.RateLimit
		}

		if s.RateBurst != nil {
			cfg.Server.RateBurst = *s.RateBurst
		}

		if s.MaxBodySize != nil {
			cfg.Server.MaxBodySize = *s.MaxBodySize
		}
	}

	if a := f.Actions; a != nil {
		if err := cfg.applyActions(*a); err != nil {
			return err
		}
	}

	for _, p := range f.Providers {
		if err := cfg.registerProvider(p); err != nil {
			return err
		}
	}

	if err := cfg.registerRouters(f); err != nil {
		return err
	}

	if err := cfg.registerExtractors(f); err != nil {
		return err
	}

	if err := cfg.registerRecognizer(f.Recognizer); err != nil {
		return err
	}

	return cfg.registerDefaults()
}

func (cfg *Config) applyActions(a actionConfig) error {
	cfg.Action.Completer = a.Completer
	cfg.Action.Extractor = a.Extractor
	cfg.Action.Segmenter = a.Segmenter

	if a.OCRMode != "" {
		cfg.Action.OCRMode = action.OCRMode(strings.ToLower(a.OCRMode))
	}

	if a.OCRLanguage != "" {
		cfg.Action.OCRLanguage = a.OCRLanguage
	}

	if a.MergePolicy != "" {
		cfg.Action.MergePolicy = pipeline.FailurePolicy(strings.ToLower(a.MergePolicy))
	}

	if a.Timeout != "" {
		timeout, err := time.ParseDuration(a.Timeout)

		if err != nil {
			return fmt.Errorf("%w: invalid timeout: %w", errdefs.ErrConfig, err)
		}

		cfg.Action.Timeout = timeout
	}

	if a.MaxParaphraseLength > 0 {
		cfg.Action.MaxParaphraseLength = a.MaxParaphraseLength
	}

	if a.MaxDocuments > 0 {
		cfg.Action.MaxDocuments = a.MaxDocuments
	}

	return nil
}

func (cfg *Config) validate() error {
	switch cfg.Action.OCRMode {
	case action.OCRModeTesseract, action.OCRModeModel:
	default:
		return fmt.Errorf("%w: invalid ocr mode: %s", errdefs.ErrConfig, cfg.Action.OCRMode)
	}

	switch cfg.Action.MergePolicy {
	case pipeline.Skip, pipeline.Abort:
	default:
		return fmt.Errorf("%w: invalid merge policy: %s", errdefs.ErrConfig, cfg.Action.MergePolicy)
	}

	if len(cfg.completers) == 0 {
		return fmt.Errorf("%w: no model provider configured, set OPENAI_API_KEY, ANTHROPIC_API_KEY or GEMINI_API_KEY", errdefs.ErrConfig)
	}

	for _, ref := range []struct {
		kind string
		id   string
		ok   func(string) bool
	}{
		{"completer", cfg.Action.Completer, func(id string) bool { _, ok := cfg.completers[id]; return ok }},
		{"extractor", cfg.Action.Extractor, func(id string) bool { _, ok := cfg.extractors[id]; return ok }},
		{"segmenter", cfg.Action.Segmenter, func(id string) bool { _, ok := cfg.segmenters[id]; return ok }},
	} {
		if ref.id != "" && !ref.ok(ref.id) {
			return fmt.Errorf("%w: %s not found: %s", errdefs.ErrConfig, ref.kind, ref.id)
		}
	}

	return nil
}

// The first registered provider of each kind is the default.

func (cfg *Config) RegisterCompleter(id string, p provider.Completer) {
	if cfg.defaultCompleter == "" {
		cfg.defaultCompleter = id
	}

	cfg.completers[id] = p
}

func (cfg *Config) RegisterExtractor(id string, p extractor.Provider) {
	if cfg.defaultExtractor == "" {
		cfg.defaultExtractor = id
	}

	cfg.extractors[id] = p
}

func (cfg *Config) RegisterSegmenter(id string, p segmenter.Provider) {
	if cfg.defaultSegmenter == "" {
		cfg.defaultSegmenter = id
	}

	cfg.segmenters[id] = p
}

func (cfg *Config) Completer(id string) (provider.Completer, error) {
	if id == "" {
		id = cfg.defaultCompleter
	}

	if c, ok := cfg.completers[id]; ok {
		return c, nil
	}

	return nil, errors.New("completer not found: " + id)
}

func (cfg *Config) Extractor(id string) (extractor.Provider, error) {
	if id == "" {
		id = cfg.defaultExtractor
	}

	if e, ok := cfg.extractors[id]; ok {
		return e, nil
	}

	return nil, errors.New("extractor not found: " + id)
}

func (cfg *Config) Segmenter(id string) (segmenter.Provider, error) {
	if id == "" {
		id = cfg.defaultSegmenter
	}

	if s, ok := cfg.segmenters[id]; ok {
		return s, nil
	}

	return nil, errors.New("segmenter not found: " + id)
}

func (cfg *Config) Recognizer() *recognizer.Manager {
	return cfg.recognizer
}
