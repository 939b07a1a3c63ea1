package action

import (
	"context"
	"fmt"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/extractor"
)

type OCRRequest struct {
	Image string

	// Language is a Tesseract language code, "eng+deu" for several.
	Language string
}

// ExtractTextFromImage recognizes the text in an image.
func (s *Service) ExtractTextFromImage(ctx context.Context, req OCRRequest) Result[string] {
	ctx, op := s.begin(ctx, "extract_text_from_image")

	doc, err := parseImage(req.Image)

	if err != nil {
		return fail[string](op, err)
	}

	language, err := parseLanguage(req.Language, s.ocrLang)

	if err != nil {
		return fail[string](op, err)
	}

	op.process()

	switch {
	case s.ocrMode == OCRModeTesseract && s.recognizer != nil:
		text, err := s.recognizer.Recognize(ctx, doc.Data, language)

		if err != nil {
			return fail[string](op, err)
		}

		return succeed(op, text)

	case s.extractor != nil:
		result, err := s.extractor.Extract(ctx, doc.File("image"), &extractor.ExtractOptions{
			Language: language,
		})

		if err != nil {
			return fail[string](op, classify(err, errdefs.ErrExtraction))
		}

		return succeed(op, result.Text)

	default:
		return fail[string](op, fmt.Errorf("%w: no recognizer configured", errdefs.ErrConfig))
	}
}
