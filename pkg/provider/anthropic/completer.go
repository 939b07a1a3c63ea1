package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adrianliechti/toolify/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	messages anthropic.MessageService
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,

		maxTokens: 8192,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req, err := c.convertMessageRequest(messages, options)

	if err != nil {
		return nil, err
	}

	message, err := c.messages.New(ctx, *req)

	if err != nil {
		return nil, convertError(err)
	}

	var parts []string

	for _, block := range message.Content {
		if block.Type == "text" && block.Text != "" {
			parts = append(parts, block.Text)
		}
	}

	result := &provider.Completion{
		ID:    message.ID,
		Model: c.model,

		Reason: toCompletionReason(message.StopReason),

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: provider.MessageContent{
				provider.TextContent(strings.Join(parts, "")),
			},
		},

		Usage: toUsage(message.Usage),
	}

	return result, nil
}

func (c *Completer) convertMessageRequest(input []provider.Message, options *provider.CompleteOptions) (*anthropic.MessageNewParams, error) {
	req := &anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
	}

	var system []anthropic.TextBlockParam
	var messages []anthropic.MessageParam

	if options.MaxTokens != nil {
		req.MaxTokens = int64(*options.MaxTokens)
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	for _, m := range input {
		switch m.Role {
		case provider.MessageRoleSystem:
			for _, c := range m.Content {
				if c.Text != "" {
					system = append(system, anthropic.TextBlockParam{Text: c.Text})
				}
			}

		case provider.MessageRoleUser:
			var blocks []anthropic.ContentBlockParamUnion

			for _, c := range m.Content {
				if c.File != nil {
					mime := c.File.ContentType
					content := c.File.Base64()

					switch mime {
					case "image/jpeg", "image/png", "image/gif", "image/webp":
						blocks = append(blocks, anthropic.NewImageBlockBase64(mime, content))

					case "application/pdf":
						block := anthropic.DocumentBlockParam{
							Source: anthropic.DocumentBlockParamSourceUnion{
								OfBase64: &anthropic.Base64PDFSourceParam{
									Data: content,
								},
							},
						}

						blocks = append(blocks, anthropic.ContentBlockParamUnion{OfDocument: &block})

					default:
						return nil, errors.New("unsupported content type: " + mime)
					}
				}

				if c.Text != "" {
					blocks = append(blocks, anthropic.NewTextBlock(c.Text))
				}
			}

			messages = append(messages, anthropic.NewUserMessage(blocks...))

		case provider.MessageRoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content.String())))
		}
	}

	if len(system) > 0 {
		req.System = system
	}

	if len(messages) > 0 {
		req.Messages = messages
	}

	return req, nil
}

func toCompletionReason(reason anthropic.StopReason) provider.CompletionReason {
	switch reason {
	case anthropic.StopReasonMaxTokens:
		return provider.CompletionReasonLength

	case anthropic.StopReasonRefusal:
		return provider.CompletionReasonFilter

	default:
		return provider.CompletionReasonStop
	}
}

func toUsage(usage anthropic.Usage) *provider.Usage {
	if usage.InputTokens == 0 && usage.OutputTokens == 0 {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(usage.InputTokens),
		OutputTokens: int(usage.OutputTokens),
	}
}

func convertError(err error) error {
	var apierr *anthropic.Error

	if errors.As(err, &apierr) {
		return fmt.Errorf("anthropic: status %d: %w", apierr.StatusCode, err)
	}

	return err
}
