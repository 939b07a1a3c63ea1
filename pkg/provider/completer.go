package provider

import (
	"context"
	"strings"
)

type Completer interface {
	Complete(ctx context.Context, messages []Message, options *CompleteOptions) (*Completion, error)
}

type Message struct {
	Role MessageRole

	Content MessageContent
}

func SystemMessage(text string) Message {
	return Message{
		Role: MessageRoleSystem,

		Content: MessageContent{
			TextContent(text),
		},
	}
}

func UserMessage(text string, files ...File) Message {
	content := MessageContent{
		TextContent(text),
	}

	for _, f := range files {
		content = append(content, FileContent(f))
	}

	return Message{
		Role: MessageRoleUser,

		Content: content,
	}
}

type MessageContent []Content

func (c MessageContent) String() string {
	var parts []string

	for _, content := range c {
		if content.Text != "" {
			parts = append(parts, content.Text)
		}
	}

	return strings.Join(parts, "\n\n")
}

func (c MessageContent) Files() []File {
	var files []File

	for _, content := range c {
		if content.File != nil {
			files = append(files, *content.File)
		}
	}

	return files
}

func TextContent(val string) Content {
	return Content{
		Text: val,
	}
}

func FileContent(val File) Content {
	return Content{
		File: &val,
	}
}

type Content struct {
	Text string

	File *File
}

type MessageRole string

const (
	MessageRoleSystem    MessageRole = "system"
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

type CompleteOptions struct {
	MaxTokens   *int
	Temperature *float32
}

type Completion struct {
	ID    string
	Model string

	Reason CompletionReason

	Message *Message

	Usage *Usage
}

// Text returns the concatenated text of the completion message.
func (c *Completion) Text() string {
	if c == nil || c.Message == nil {
		return ""
	}

	return c.Message.Content.String()
}

type CompletionReason string

const (
	CompletionReasonStop   CompletionReason = "stop"
	CompletionReasonLength CompletionReason = "length"
	CompletionReasonFilter CompletionReason = "filter"
)

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// SplitSystem separates system instructions from the conversation, as most
// provider APIs take them as a dedicated parameter.
func SplitSystem(messages []Message) (string, []Message) {
	var system []string
	var result []Message

	for _, m := range messages {
		if m.Role == MessageRoleSystem {
			system = append(system, m.Content.String())
			continue
		}

		result = append(result, m)
	}

	return strings.Join(system, "\n\n"), result
}
