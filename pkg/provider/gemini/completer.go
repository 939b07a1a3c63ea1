package gemini

import (
	"context"
	"errors"

	"github.com/adrianliechti/toolify/pkg/provider"

	"google.golang.org/genai"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	client *genai.Client
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	client, err := genai.NewClient(context.Background(), cfg.clientConfig())

	if err != nil {
		return nil, err
	}

	return &Completer{
		Config: cfg,
		client: client,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	system, messages := provider.SplitSystem(messages)

	config := &genai.GenerateContentConfig{}

	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	if options.MaxTokens != nil {
		config.MaxOutputTokens = int32(*options.MaxTokens)
	}

	if options.Temperature != nil {
		config.Temperature = genai.Ptr(*options.Temperature)
	}

	contents, err := convertContents(messages)

	if err != nil {
		return nil, err
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)

	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 {
		return nil, errors.New("no candidates in response")
	}

	result := &provider.Completion{
		ID:    resp.ResponseID,
		Model: c.model,

		Reason: toCompletionReason(resp.Candidates[0].FinishReason),

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: provider.MessageContent{
				provider.TextContent(resp.Text()),
			},
		},
	}

	if usage := resp.UsageMetadata; usage != nil {
		result.Usage = &provider.Usage{
			InputTokens:  int(usage.PromptTokenCount),
			OutputTokens: int(usage.CandidatesTokenCount),
		}
	}

	return result, nil
}

func convertContents(messages []provider.Message) ([]*genai.Content, error) {
	var result []*genai.Content

	for _, m := range messages {
		var parts []*genai.Part

		for _, c := range m.Content {
			if c.File != nil {
				if !c.File.IsImage() && !c.File.IsPDF() {
					return nil, errors.New("unsupported content type: " + c.File.ContentType)
				}

				parts = append(parts, genai.NewPartFromBytes(c.File.Content, c.File.ContentType))
			}

			if c.Text != "" {
				parts = append(parts, genai.NewPartFromText(c.Text))
			}
		}

		role := genai.RoleUser

		if m.Role == provider.MessageRoleAssistant {
			role = genai.RoleModel
		}

		result = append(result, genai.NewContentFromParts(parts, genai.Role(role)))
	}

	return result, nil
}

func toCompletionReason(reason genai.FinishReason) provider.CompletionReason {
	switch reason {
	case genai.FinishReasonMaxTokens:
		return provider.CompletionReasonLength

	case genai.FinishReasonSafety, genai.FinishReasonProhibitedContent, genai.FinishReasonBlocklist:
		return provider.CompletionReasonFilter

	default:
		return provider.CompletionReasonStop
	}
}
