package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adrianliechti/toolify/pkg/document"
	"github.com/adrianliechti/toolify/pkg/docx"
	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/extractor"
)

// Separator follows every merged section so source boundaries stay visible
// in the resulting document.
const Separator = "\n\n---\n\n"

type FailurePolicy string

const (
	// Skip drops sources whose extraction fails and continues.
	Skip FailurePolicy = "skip"

	// Abort stops at the first failing source.
	Abort FailurePolicy = "abort"
)

type Merger struct {
	extractor extractor.Provider
	policy    FailurePolicy
	language  string

	logger *slog.Logger
}

type Option func(*Merger)

func WithPolicy(policy FailurePolicy) Option {
	return func(m *Merger) {
		m.policy = policy
	}
}

func WithLanguage(language string) Option {
	return func(m *Merger) {
		m.language = language
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Merger) {
		m.logger = logger
	}
}

func NewMerger(extractor extractor.Provider, options ...Option) *Merger {
	m := &Merger{
		extractor: extractor,
		policy:    Skip,

		logger: slog.Default(),
	}

	for _, option := range options {
		option(m)
	}

	return m
}

type Result struct {
	Text     string
	Document document.Document

	// Sources is the number of documents that contributed text.
	Sources int

	// Skipped lists the input positions dropped under the Skip policy.
	Skipped []int
}

// Merge extracts every document in order, joins the texts and encodes them as
// one Word document.
func (m *Merger) Merge(ctx context.Context, docs []document.Document) (*Result, error) {
	text, skipped, err := m.Text(ctx, docs)

	if err != nil {
		return nil, err
	}

	encoded, err := docx.EncodeDocument(text)

	if err != nil {
		return nil, err
	}

	return &Result{
		Text:     text,
		Document: encoded,

		Sources: len(docs) - len(skipped),
		Skipped: skipped,
	}, nil
}

// Text runs the extraction loop and returns the accumulated text together
// with the positions of skipped documents.
func (m *Merger) Text(ctx context.Context, docs []document.Document) (string, []int, error) {
	var sb strings.Builder
	var skipped []int

	options := &extractor.ExtractOptions{
		Language: m.language,
	}

	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}

		result, err := m.extractor.Extract(ctx, doc.File(fmt.Sprintf("document-%d.pdf", i+1)), options)

		if err == nil && strings.TrimSpace(result.Text) == "" {
			err = fmt.Errorf("%w: empty text", errdefs.ErrExtraction)
		}

		if err != nil {
			if m.policy == Abort {
				m.logger.Error("merge.source.error", "index", i, "error", err)
				return "", nil, err
			}

			m.logger.Warn("merge.source.skipped", "index", i, "error", err)

			skipped = append(skipped, i)
			continue
		}

		sb.WriteString(result.Text)
		sb.WriteString(Separator)
	}

	if sb.Len() == 0 {
		return "", skipped, errdefs.ErrNoContent
	}

	m.logger.Info("merge.done", "sources", len(docs), "skipped", len(skipped), "chars", sb.Len())

	return sb.String(), skipped, nil
}
