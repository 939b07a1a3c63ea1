package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/adrianliechti/toolify/pkg/docx"
	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/extractor"
)

// ConvertDocumentToWord extracts the text of a PDF and returns it as a Word
// document data URL.
func (s *Service) ConvertDocumentToWord(ctx context.Context, input string) Result[string] {
	ctx, op := s.begin(ctx, "convert_document_to_word")

	doc, err := parsePDF(input)

	if err != nil {
		return fail[string](op, err)
	}

	op.process()

	if s.extractor == nil {
		return fail[string](op, fmt.Errorf("%w: no extractor configured", errdefs.ErrConfig))
	}

	result, err := s.extractor.Extract(ctx, doc.File("document.pdf"), &extractor.ExtractOptions{})

	if err != nil {
		return fail[string](op, classify(err, errdefs.ErrExtraction))
	}

	if strings.TrimSpace(result.Text) == "" {
		return fail[string](op, fmt.Errorf("%w: empty extraction result", errdefs.ErrExtraction))
	}

	encoded, err := docx.EncodeDocument(result.Text)

	if err != nil {
		return fail[string](op, classify(err, errdefs.ErrEncoding))
	}

	return succeed(op, encoded.String())
}

// MergeDocumentsToWord extracts several PDFs in order and merges their text
// into one Word document data URL. All inputs are validated before the first
// extraction.
func (s *Service) MergeDocumentsToWord(ctx context.Context, inputs []string) Result[string] {
	ctx, op := s.begin(ctx, "merge_documents_to_word")

	docs, err := parsePDFs(inputs, s.maxDocuments)

	if err != nil {
		return fail[string](op, err)
	}

	op.process()

	if s.merger == nil {
		return fail[string](op, fmt.Errorf("%w: no extractor configured", errdefs.ErrConfig))
	}

	result, err := s.merger.Merge(ctx, docs)

	if err != nil {
		return fail[string](op, classify(err, errdefs.ErrExtraction))
	}

	op.logger.Info("action.merge", "sources", result.Sources, "skipped", len(result.Skipped))

	return succeed(op, result.Document.String())
}
