package completer

import (
	"context"
	"fmt"
	"strings"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/extractor"
	"github.com/adrianliechti/toolify/pkg/provider"
)

var _ extractor.Provider = (*Extractor)(nil)

const defaultPrompt = `Extract all text from the attached document.
Return only the extracted text in reading order and keep the original line breaks.
Do not summarize, translate or comment on the content.`

type Extractor struct {
	completer provider.Completer

	prompt    string
	plainText bool
}

type Option func(*Extractor)

func WithPrompt(prompt string) Option {
	return func(e *Extractor) {
		e.prompt = prompt
	}
}

// WithPlainText strips Markdown formatting the model may add to its answer.
func WithPlainText() Option {
	return func(e *Extractor) {
		e.plainText = true
	}
}

func New(completer provider.Completer, options ...Option) (*Extractor, error) {
	e := &Extractor{
		completer: completer,

		prompt: defaultPrompt,
	}

	for _, option := range options {
		option(e)
	}

	return e, nil
}

func (e *Extractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	if !file.IsPDF() && !file.IsImage() {
		return nil, fmt.Errorf("%w: %w: %s", errdefs.ErrExtraction, extractor.ErrUnsupported, file.ContentType)
	}

	prompt := e.prompt

	if options.Language != "" {
		prompt += "\nThe document language is " + options.Language + "."
	}

	temperature := float32(0)

	completion, err := e.completer.Complete(ctx, []provider.Message{
		provider.SystemMessage(prompt),
		provider.UserMessage("Extract the text of this document.", file),
	}, &provider.CompleteOptions{
		Temperature: &temperature,
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrExtraction, err)
	}

	text := strings.TrimSpace(completion.Text())

	if e.plainText {
		text = strings.TrimSpace(Flatten(text))
	}

	if text == "" {
		return nil, fmt.Errorf("%w: empty response", errdefs.ErrExtraction)
	}

	return &extractor.Document{
		Text: text,
	}, nil
}
