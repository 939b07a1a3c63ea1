package config

import (
	"log/slog"

	"github.com/adrianliechti/toolify/pkg/action"
	"github.com/adrianliechti/toolify/pkg/pipeline"
)

// Service assembles the action service from the registered providers.
// Missing optional providers leave the dependent operations failing with a
// configuration error at call time.
func (cfg *Config) Service(logger *slog.Logger, options ...action.Option) (*action.Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	completer, err := cfg.Completer(cfg.Action.Completer)

	if err != nil {
		return nil, err
	}

	opts := []action.Option{
		action.WithCompleter(completer),

		action.WithOCRMode(cfg.Action.OCRMode),
		action.WithOCRLanguage(cfg.Action.OCRLanguage),

		action.WithMaxParaphraseLength(cfg.Action.MaxParaphraseLength),
		action.WithMaxDocuments(cfg.Action.MaxDocuments),

		action.WithLogger(logger),
	}

	if e, err := cfg.Extractor(cfg.Action.Extractor); err == nil {
		merger := pipeline.NewMerger(e,
			pipeline.WithPolicy(cfg.Action.MergePolicy),
			pipeline.WithLogger(logger),
		)

		opts = append(opts, action.WithExtractor(e), action.WithMerger(merger))
	}

	if s, err := cfg.Segmenter(cfg.Action.Segmenter); err == nil {
		opts = append(opts, action.WithSegmenter(s))
	}

	if r := cfg.recognizer; r != nil {
		opts = append(opts, action.WithRecognizer(r))
	}

	opts = append(opts, options...)

	return action.New(opts...), nil
}

// Close releases resources held by registered providers.
func (cfg *Config) Close() error {
	if cfg.recognizer != nil {
		return cfg.recognizer.Close()
	}

	return nil
}
