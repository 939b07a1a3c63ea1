package mcp

import (
	"context"
	"net/http"

	"github.com/adrianliechti/toolify/pkg/action"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Handler struct {
	server  *mcp.Server
	handler http.Handler
}

func New(service *action.Service, version string) *Handler {
	s := NewServer(service, version)

	return &Handler{
		server: s,

		handler: mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
			return s
		}, nil),
	}
}

func (h *Handler) Attach(r chi.Router) {
	r.Handle("/mcp", h.handler)
}

// Server returns the underlying MCP server, e.g. to serve it over stdio.
func (h *Handler) Server() *mcp.Server {
	return h.server
}

type ImageInput struct {
	Image string `json:"image" jsonschema:"the image as a data URL"`
}

type OCRInput struct {
	Image    string `json:"image" jsonschema:"the image as a data URL"`
	Language string `json:"language,omitempty" jsonschema:"tesseract language code such as eng or eng+deu"`
}

type ParaphraseInput struct {
	Text  string `json:"text" jsonschema:"the text to rewrite"`
	Style string `json:"style,omitempty" jsonschema:"one of standard, fluent, formal, simple, creative, shorten or expand"`
}

type DocumentInput struct {
	Document string `json:"document" jsonschema:"the PDF as a data URL"`
}

type DocumentsInput struct {
	Documents []string `json:"documents" jsonschema:"the PDFs as data URLs, in merge order"`
}

type Output struct {
	Success bool `json:"success"`

	Data  string `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func NewServer(service *action.Service, version string) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "toolify",
		Version: version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "remove_background",
		Description: "Remove the background of an image and return a PNG data URL.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ImageInput) (*mcp.CallToolResult, Output, error) {
		return toolResult(service.RemoveBackground(ctx, input.Image))
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "extract_text_from_image",
		Description: "Recognize the text in an image.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input OCRInput) (*mcp.CallToolResult, Output, error) {
		return toolResult(service.ExtractTextFromImage(ctx, action.OCRRequest{
			Image:    input.Image,
			Language: input.Language,
		}))
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "paraphrase",
		Description: "Rewrite a text in the requested style.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ParaphraseInput) (*mcp.CallToolResult, Output, error) {
		return toolResult(service.Paraphrase(ctx, action.ParaphraseRequest{
			Text:  input.Text,
			Style: action.Style(input.Style),
		}))
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "convert_document_to_word",
		Description: "Convert a PDF into a Word document and return it as a data URL.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input DocumentInput) (*mcp.CallToolResult, Output, error) {
		return toolResult(service.ConvertDocumentToWord(ctx, input.Document))
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "merge_documents_to_word",
		Description: "Merge several PDFs into one Word document and return it as a data URL.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input DocumentsInput) (*mcp.CallToolResult, Output, error) {
		return toolResult(service.MergeDocumentsToWord(ctx, input.Documents))
	})

	return s
}

func toolResult(result action.Result[string]) (*mcp.CallToolResult, Output, error) {
	if data, ok := result.Get(); ok {
		return nil, Output{Success: true, Data: data}, nil
	}

	return &mcp.CallToolResult{
		IsError: true,

		Content: []mcp.Content{
			&mcp.TextContent{Text: result.Message()},
		},
	}, Output{Error: result.Message()}, nil
}
