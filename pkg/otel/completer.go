package otel

import (
	"context"

	"github.com/adrianliechti/toolify/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Completer interface {
	otelCompleter()
	provider.Completer
}

type observableCompleter struct {
	name     string
	provider string

	model string

	completer provider.Completer
}

func NewCompleter(provider, model string, p provider.Completer) Completer {
	return &observableCompleter{
		completer: p,

		name:     "completer",
		provider: provider,

		model: model,
	}
}

func (c *observableCompleter) otelCompleter() {}

func (c *observableCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	ctx, span := otel.Tracer(c.name).Start(ctx, "chat "+c.model)
	defer span.End()

	span.SetAttributes(
		attribute.String("gen_ai.operation.name", "chat"),
		attribute.String("gen_ai.system", c.provider),
		attribute.String("gen_ai.request.model", c.model),
	)

	result, err := c.completer.Complete(ctx, messages, options)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if result.Usage != nil {
		span.SetAttributes(
			attribute.Int("gen_ai.usage.input_tokens", result.Usage.InputTokens),
			attribute.Int("gen_ai.usage.output_tokens", result.Usage.OutputTokens),
		)
	}

	span.SetAttributes(attribute.String("gen_ai.response.finish_reason", string(result.Reason)))

	return result, nil
}
