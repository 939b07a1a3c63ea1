package action

import (
	"bytes"
	"fmt"
	"image"
	"regexp"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/adrianliechti/toolify/pkg/document"
	"github.com/adrianliechti/toolify/pkg/errdefs"
)

var languagePattern = regexp.MustCompile(`^[a-z]{3}(_[a-z]+)?(\+[a-z]{3}(_[a-z]+)?)*$`)

func parseImage(input string) (document.Document, error) {
	if strings.TrimSpace(input) == "" {
		return document.Document{}, errdefs.Validation("please upload an image")
	}

	doc, err := document.Parse(input)

	if err != nil {
		return document.Document{}, err
	}

	if !doc.IsImage() {
		return document.Document{}, errdefs.Validation("the uploaded file must be an image")
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(doc.Data)); err != nil {
		return document.Document{}, fmt.Errorf("%w: %w", errdefs.ErrDecode, err)
	}

	return doc, nil
}

func parsePDF(input string) (document.Document, error) {
	if strings.TrimSpace(input) == "" {
		return document.Document{}, errdefs.Validation("please upload a PDF file")
	}

	doc, err := document.Parse(input)

	if err != nil {
		return document.Document{}, err
	}

	if !doc.IsPDF() {
		return document.Document{}, errdefs.Validation("the uploaded file must be a PDF")
	}

	return doc, nil
}

func parsePDFs(inputs []string, max int) ([]document.Document, error) {
	if len(inputs) < 2 {
		return nil, errdefs.Validation("please upload at least two PDF files")
	}

	if max > 0 && len(inputs) > max {
		return nil, errdefs.Validation(fmt.Sprintf("please upload at most %d PDF files", max))
	}

	docs := make([]document.Document, 0, len(inputs))

	for _, input := range inputs {
		doc, err := parsePDF(input)

		if err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

func parseLanguage(language, fallback string) (string, error) {
	language = strings.ToLower(strings.TrimSpace(language))

	if language == "" {
		return fallback, nil
	}

	if !languagePattern.MatchString(language) {
		return "", errdefs.Validation("unsupported language: " + language)
	}

	return language, nil
}
