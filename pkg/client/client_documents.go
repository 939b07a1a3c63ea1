package client

import (
	"context"
)

type DocumentService struct {
	Options []RequestOption
}

func NewDocumentService(opts ...RequestOption) DocumentService {
	return DocumentService{
		Options: opts,
	}
}

// Convert turns a PDF data URL into a Word document data URL.
func (r *DocumentService) Convert(ctx context.Context, document string, opts ...RequestOption) (string, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	return c.post(ctx, "/v1/convert", map[string]string{
		"document": document,
	})
}

// Merge joins several PDF data URLs into one Word document data URL.
func (r *DocumentService) Merge(ctx context.Context, documents []string, opts ...RequestOption) (string, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	return c.post(ctx, "/v1/merge", map[string][]string{
		"documents": documents,
	})
}
