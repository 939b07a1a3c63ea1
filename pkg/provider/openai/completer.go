package openai

import (
	"context"
	"errors"

	"github.com/adrianliechti/toolify/pkg/provider"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	completions openai.ChatCompletionService
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:      cfg,
		completions: openai.NewChatCompletionService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req, err := c.convertCompletionRequest(messages, options)

	if err != nil {
		return nil, err
	}

	resp, err := c.completions.New(ctx, *req)

	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices in response")
	}

	choice := resp.Choices[0]

	result := &provider.Completion{
		ID:    resp.ID,
		Model: resp.Model,

		Reason: toCompletionReason(choice.FinishReason),

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: provider.MessageContent{
				provider.TextContent(choice.Message.Content),
			},
		},

		Usage: &provider.Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
	}

	return result, nil
}

func (c *Completer) convertCompletionRequest(messages []provider.Message, options *provider.CompleteOptions) (*openai.ChatCompletionNewParams, error) {
	req := &openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
	}

	if options.MaxTokens != nil {
		req.MaxCompletionTokens = openai.Int(int64(*options.MaxTokens))
	}

	if options.Temperature != nil {
		req.Temperature = openai.Float(float64(*options.Temperature))
	}

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleSystem:
			req.Messages = append(req.Messages, openai.SystemMessage(m.Content.String()))

		case provider.MessageRoleAssistant:
			req.Messages = append(req.Messages, openai.AssistantMessage(m.Content.String()))

		case provider.MessageRoleUser:
			parts, err := convertContent(m.Content)

			if err != nil {
				return nil, err
			}

			req.Messages = append(req.Messages, openai.UserMessage(parts))

		default:
			return nil, errors.New("unsupported message role: " + string(m.Role))
		}
	}

	return req, nil
}

func convertContent(content provider.MessageContent) ([]openai.ChatCompletionContentPartUnionParam, error) {
	var parts []openai.ChatCompletionContentPartUnionParam

	for _, c := range content {
		if c.Text != "" {
			parts = append(parts, openai.TextContentPart(c.Text))
		}

		if c.File == nil {
			continue
		}

		switch {
		case c.File.IsImage():
			parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: c.File.DataURL(),
			}))

		case c.File.IsPDF():
			name := c.File.Name

			if name == "" {
				name = "document.pdf"
			}

			parts = append(parts, openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
				FileData: openai.String(c.File.DataURL()),
				Filename: openai.String(name),
			}))

		default:
			return nil, errors.New("unsupported file type: " + c.File.ContentType)
		}
	}

	return parts, nil
}

func toCompletionReason(reason string) provider.CompletionReason {
	switch reason {
	case "length":
		return provider.CompletionReasonLength

	case "content_filter":
		return provider.CompletionReasonFilter

	default:
		return provider.CompletionReasonStop
	}
}
