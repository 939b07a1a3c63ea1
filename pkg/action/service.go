package action

import (
	"log/slog"

	"github.com/adrianliechti/toolify/pkg/extractor"
	"github.com/adrianliechti/toolify/pkg/pipeline"
	"github.com/adrianliechti/toolify/pkg/provider"
	"github.com/adrianliechti/toolify/pkg/recognizer"
	"github.com/adrianliechti/toolify/pkg/segmenter"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type OCRMode string

const (
	// OCRModeTesseract runs images through the local recognition engine.
	OCRModeTesseract OCRMode = "tesseract"

	// OCRModeModel sends images to the document extractor.
	OCRModeModel OCRMode = "model"
)

const (
	DefaultMaxParaphraseLength = 5000
	DefaultMaxDocuments        = 10
)

// Service exposes the conversion pipeline as request/response operations.
// Every operation validates its input before any external call and returns a
// Result instead of an error.
type Service struct {
	extractor  extractor.Provider
	completer  provider.Completer
	segmenter  segmenter.Provider
	recognizer *recognizer.Manager
	merger     *pipeline.Merger

	ocrMode OCRMode
	ocrLang string

	maxParaphraseLength int
	maxDocuments        int

	logger   *slog.Logger
	tracer   trace.Tracer
	observer Observer
}

type Option func(*Service)

func WithExtractor(extractor extractor.Provider) Option {
	return func(s *Service) {
		s.extractor = extractor
	}
}

func WithCompleter(completer provider.Completer) Option {
	return func(s *Service) {
		s.completer = completer
	}
}

func WithSegmenter(segmenter segmenter.Provider) Option {
	return func(s *Service) {
		s.segmenter = segmenter
	}
}

func WithRecognizer(recognizer *recognizer.Manager) Option {
	return func(s *Service) {
		s.recognizer = recognizer
	}
}

// WithMerger overrides the merger built from the extractor.
func WithMerger(merger *pipeline.Merger) Option {
	return func(s *Service) {
		s.merger = merger
	}
}

func WithOCRMode(mode OCRMode) Option {
	return func(s *Service) {
		s.ocrMode = mode
	}
}

func WithOCRLanguage(language string) Option {
	return func(s *Service) {
		s.ocrLang = language
	}
}

func WithMaxParaphraseLength(length int) Option {
	return func(s *Service) {
		s.maxParaphraseLength = length
	}
}

func WithMaxDocuments(count int) Option {
	return func(s *Service) {
		s.maxDocuments = count
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

func WithObserver(observer Observer) Option {
	return func(s *Service) {
		s.observer = observer
	}
}

func New(options ...Option) *Service {
	s := &Service{
		ocrMode: OCRModeTesseract,
		ocrLang: recognizer.DefaultLanguage,

		maxParaphraseLength: DefaultMaxParaphraseLength,
		maxDocuments:        DefaultMaxDocuments,

		logger: slog.Default(),
		tracer: otel.Tracer("github.com/adrianliechti/toolify/pkg/action"),
	}

	for _, option := range options {
		option(s)
	}

	if s.merger == nil && s.extractor != nil {
		s.merger = pipeline.NewMerger(s.extractor, pipeline.WithLogger(s.logger))
	}

	return s
}
