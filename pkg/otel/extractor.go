package otel

import (
	"context"

	"github.com/adrianliechti/toolify/pkg/extractor"
	"github.com/adrianliechti/toolify/pkg/segmenter"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Extractor interface {
	otelExtractor()
	extractor.Provider
}

type observableExtractor struct {
	name     string
	provider string

	extractor extractor.Provider
}

func NewExtractor(provider string, p extractor.Provider) Extractor {
	return &observableExtractor{
		extractor: p,

		name:     "extractor",
		provider: provider,
	}
}

func (e *observableExtractor) otelExtractor() {}

func (e *observableExtractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	ctx, span := otel.Tracer(e.name).Start(ctx, "extract "+e.provider)
	defer span.End()

	span.SetAttributes(
		attribute.String("extractor.provider", e.provider),
		attribute.String("file.content_type", file.ContentType),
		attribute.Int("file.size", len(file.Content)),
	)

	result, err := e.extractor.Extract(ctx, file, options)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("extractor.chars", len(result.Text)))

	return result, nil
}

type Segmenter interface {
	otelSegmenter()
	segmenter.Provider
}

type observableSegmenter struct {
	name     string
	provider string

	segmenter segmenter.Provider
}

func NewSegmenter(provider string, p segmenter.Provider) Segmenter {
	return &observableSegmenter{
		segmenter: p,

		name:     "segmenter",
		provider: provider,
	}
}

func (s *observableSegmenter) otelSegmenter() {}

func (s *observableSegmenter) Segment(ctx context.Context, file segmenter.File, options *segmenter.SegmentOptions) (*segmenter.File, error) {
	ctx, span := otel.Tracer(s.name).Start(ctx, "segment "+s.provider)
	defer span.End()

	span.SetAttributes(
		attribute.String("segmenter.provider", s.provider),
		attribute.Int("file.size", len(file.Content)),
	)

	result, err := s.segmenter.Segment(ctx, file, options)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return result, nil
}
